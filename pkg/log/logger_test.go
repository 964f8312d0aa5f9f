package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func setupTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(level, &buf), &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	return entry
}

func TestLogger_Info_WritesJSON(t *testing.T) {
	logger, buf := setupTestLogger(Info)

	logger.Info("test message", "platform", "twitter")

	entry := lastEntry(t, buf)
	if entry["msg"] != "test message" {
		t.Errorf("msg = %v, want %q", entry["msg"], "test message")
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["platform"] != "twitter" {
		t.Errorf("platform = %v, want twitter", entry["platform"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("timestamp missing")
	}
}

func TestLogger_BelowLevel_IsDropped(t *testing.T) {
	logger, buf := setupTestLogger(Warn)

	logger.Info("quiet")
	logger.Debug("quieter")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestLogger_SetLevel(t *testing.T) {
	logger, buf := setupTestLogger(Error)
	logger.SetLevel(Debug)

	logger.Debug("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("expected debug entry, got %q", buf.String())
	}
}

func TestLogger_Fatal_DoesNotExit(t *testing.T) {
	logger, buf := setupTestLogger(Info)

	logger.Fatal("still running")

	if entry := lastEntry(t, buf); entry["level"] != "fatal" {
		t.Errorf("level = %v, want fatal", entry["level"])
	}
}

func TestLogger_Ctx_AddsRequestIDAndFields(t *testing.T) {
	logger, buf := setupTestLogger(Info)
	ctx := WithRequestID(context.Background(), "req-9")
	ctx = WithFields(ctx, "content_type", "music")

	logger.WarnCtx(ctx, "remote failed")

	entry := lastEntry(t, buf)
	if entry["request_id"] != "req-9" {
		t.Errorf("request_id = %v, want req-9", entry["request_id"])
	}
	if entry["content_type"] != "music" {
		t.Errorf("content_type = %v, want music", entry["content_type"])
	}
}

func TestLogger_With_AddsBaseFields(t *testing.T) {
	logger, buf := setupTestLogger(Info)
	child := logger.With("service", "pulse-share")

	child.Info("hello")

	if entry := lastEntry(t, buf); entry["service"] != "pulse-share" {
		t.Errorf("service = %v, want pulse-share", entry["service"])
	}
}

func TestDefault_WithoutSetDefault_IsSilent(t *testing.T) {
	SetDefault(nil)

	// Must not panic or write anywhere.
	GlobalError("nobody listens")
	GlobalInfoCtx(context.Background(), "nobody listens")
}

func TestSetDefault_RoutesGlobalCalls(t *testing.T) {
	logger, buf := setupTestLogger(Info)
	SetDefault(logger)
	defer SetDefault(nil)

	GlobalInfo("global hello")

	if entry := lastEntry(t, buf); entry["msg"] != "global hello" {
		t.Errorf("msg = %v, want global hello", entry["msg"])
	}
}
