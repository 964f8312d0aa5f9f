package web

import (
	"bytes"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pulse-share/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	app.Use(requestid.New(RequestIDConfig()))
	app.Use(RequestIDToContextMiddleware())
	return app
}

// captureLogs installs a buffer-backed default logger for one test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetDefault(log.New(log.Info, &buf))
	t.Cleanup(func() { log.SetDefault(nil) })
	return &buf
}

func TestRequestIDToContext_ExtractsIDFromFiber(t *testing.T) {
	app := setupTestApp()

	var capturedRequestID string
	app.Get("/test", func(c *fiber.Ctx) error {
		capturedRequestID = log.RequestIDFromContext(c.UserContext())
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if capturedRequestID == "" {
		t.Error("request_id should be extracted from Fiber's requestid middleware")
	}

	headerID := resp.Header.Get("X-Request-ID")
	if headerID == "" {
		t.Error("X-Request-ID header should be set in response")
	}
	if headerID != capturedRequestID {
		t.Errorf("response header = %q, context = %q, should match", headerID, capturedRequestID)
	}
	if len(headerID) != 36 {
		t.Errorf("generated id should be a UUID, got %q", headerID)
	}
}

func TestRequestIDToContext_UsesProvidedID(t *testing.T) {
	app := setupTestApp()

	var capturedRequestID string
	app.Get("/test", func(c *fiber.Ctx) error {
		capturedRequestID = log.RequestIDFromContext(c.UserContext())
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "custom-trace-id-123")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if capturedRequestID != "custom-trace-id-123" {
		t.Errorf("request_id = %q, want %q", capturedRequestID, "custom-trace-id-123")
	}
}

func TestRequestLoggerMiddleware_LogsRequest(t *testing.T) {
	buf := captureLogs(t)

	app := setupTestApp()
	app.Use(RequestLoggerMiddleware())
	app.Get("/test-path", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/test-path", nil)
	req.Header.Set("X-Request-ID", "test-req-123")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	output := buf.String()

	if !strings.Contains(output, "request completed") {
		t.Errorf("log should contain 'request completed', got: %s", output)
	}
	if !strings.Contains(output, `"request_id":"test-req-123"`) {
		t.Errorf("log should contain request_id 'test-req-123', got: %s", output)
	}
	if !strings.Contains(output, "/test-path") {
		t.Errorf("log should contain path '/test-path', got: %s", output)
	}
	if !strings.Contains(output, `"status":200`) {
		t.Errorf("log should contain status 200, got: %s", output)
	}
}

func TestRequestLoggerMiddleware_LogsLevelByStatus(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		level  string
	}{
		{name: "4xx as warning", status: 404, level: `"level":"warning"`},
		{name: "5xx as error", status: 500, level: `"level":"error"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := captureLogs(t)
			app := setupTestApp()
			app.Use(RequestLoggerMiddleware())
			app.Get("/status", func(c *fiber.Ctx) error {
				return c.Status(tc.status).SendString("x")
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()
			_, _ = io.Copy(io.Discard, resp.Body)

			if !strings.Contains(buf.String(), tc.level) {
				t.Errorf("expected %s, got: %s", tc.level, buf.String())
			}
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	// Arrange
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Close()

	// Act
	first := rl.Allow("1.2.3.4")
	second := rl.Allow("1.2.3.4")
	third := rl.Allow("1.2.3.4")
	other := rl.Allow("5.6.7.8")

	// Assert
	if !first || !second {
		t.Error("first two requests should be allowed")
	}
	if third {
		t.Error("third request should be rejected")
	}
	if !other {
		t.Error("limits are per IP")
	}
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Close()

	if !rl.Allow("ip") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("ip") {
		t.Fatal("second request inside the window should be rejected")
	}
	time.Sleep(30 * time.Millisecond)

	if !rl.Allow("ip") {
		t.Error("request after the window should be allowed")
	}
}

func TestRateLimiter_Middleware_Returns429(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Close()
	app := fiber.New()
	app.Get("/limited", rl.Middleware(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	codes := make([]int, 2)
	for i := range codes {
		resp, err := app.Test(httptest.NewRequest("GET", "/limited", nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		codes[i] = resp.StatusCode
		resp.Body.Close()
	}

	if codes[0] != fiber.StatusOK || codes[1] != fiber.StatusTooManyRequests {
		t.Errorf("status codes: got %v, want [200 429]", codes)
	}
}
