// Package remote calls the hosted universal content generator.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pulse-share/internal/domain"
	"pulse-share/internal/metrics"
	"pulse-share/pkg/log"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
)

// GeneratePath is the remote generation endpoint, relative to the base URL.
const GeneratePath = "/social/generate-universal-content"

const maxResponseBytes = 1 << 20

// isClientError reports a 4xx response. Those describe the caller's request
// or token, not the health of the remote generator.
func isClientError(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code >= 400 && statusErr.Code < 500
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// Config configures the client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client

	// Breaker trips after FailureThreshold failures in the last
	// FailureWindow calls and stays open for OpenDelay.
	FailureThreshold uint
	FailureWindow    uint
	OpenDelay        time.Duration
}

// Client posts generation requests through a circuit breaker.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    circuitbreaker.CircuitBreaker[domain.ShareSet]
}

// Request is the body sent to the remote generator.
type Request struct {
	ContentType string               `json:"content_type"`
	ContentID   string               `json:"content_id"`
	Platforms   []domain.PlatformID  `json:"platforms"`
	CustomData  domain.ContentFields `json:"custom_data"`
}

// Response is the success body of the remote generator.
type Response struct {
	Content domain.ShareSet `json:"content"`
}

// NewClient creates a client for cfg.BaseURL.
func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.FailureWindow < cfg.FailureThreshold {
		cfg.FailureWindow = cfg.FailureThreshold * 2
	}
	if cfg.OpenDelay == 0 {
		cfg.OpenDelay = 30 * time.Second
	}

	breaker := circuitbreaker.NewBuilder[domain.ShareSet]().
		WithFailureThresholdRatio(cfg.FailureThreshold, cfg.FailureWindow).
		WithDelay(cfg.OpenDelay).
		WithSuccessThreshold(1).
		HandleIf(func(_ domain.ShareSet, err error) bool {
			return err != nil && !errors.Is(err, context.Canceled) && !isClientError(err)
		}).
		OnStateChanged(func(event circuitbreaker.StateChangedEvent) {
			log.GlobalWarn("remote generator circuit breaker state change",
				"from_state", stateName(event.OldState),
				"to_state", stateName(event.NewState),
			)
			metrics.RecordCircuitBreakerState("remote_generator", stateValue(event.NewState))
		}).
		Build()

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
		breaker:    breaker,
	}
}

// NewRequest builds the wire body for item.
func NewRequest(ct domain.ContentType, item domain.ContentItem, platforms []domain.PlatformID) Request {
	fields := domain.FieldsOf(item)
	return Request{
		ContentType: string(ct),
		ContentID:   fields.ID,
		Platforms:   platforms,
		CustomData:  fields,
	}
}

// Generate makes one remote attempt for platforms. Every error wraps
// domain.ErrRemoteGeneration. An open breaker fails fast without touching
// the network.
func (c *Client) Generate(ctx context.Context, ct domain.ContentType, item domain.ContentItem, platforms []domain.PlatformID, token string) (domain.ShareSet, error) {
	if c.baseURL == "" || token == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteGeneration, domain.ErrRemoteUnavailable)
	}
	req := NewRequest(ct, item, platforms)

	set, err := failsafe.With(c.breaker).WithContext(ctx).Get(func() (domain.ShareSet, error) {
		return c.post(ctx, req, token)
	})
	if err != nil {
		if errors.Is(err, domain.ErrRemoteGeneration) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteGeneration, err)
	}

	return set, nil
}

// BreakerOpen reports whether remote calls are currently short-circuited.
func (c *Client) BreakerOpen() bool {
	return c.breaker.IsOpen()
}

func (c *Client) post(ctx context.Context, req Request, token string) (domain.ShareSet, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %w", domain.ErrRemoteGeneration, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+GeneratePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrRemoteGeneration, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	if id := log.RequestIDFromContext(ctx); id != "" {
		httpReq.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.ObserveRemoteDuration(time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteGeneration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteGeneration, &StatusError{Code: resp.StatusCode})
	}

	var decoded Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %w: %v", domain.ErrRemoteGeneration, domain.ErrMalformedResponse, err)
	}

	return decoded.Content, nil
}

// Reason classifies a remote error for metrics and logs.
func Reason(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return "unavailable"
	case errors.Is(err, circuitbreaker.ErrOpen):
		return "circuit_open"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	case errors.As(err, &statusErr):
		return "status"
	default:
		return "network"
	}
}

func stateName(state circuitbreaker.State) string {
	switch state {
	case circuitbreaker.OpenState:
		return "open"
	case circuitbreaker.HalfOpenState:
		return "half-open"
	default:
		return "closed"
	}
}

func stateValue(state circuitbreaker.State) int {
	switch state {
	case circuitbreaker.HalfOpenState:
		return 1
	case circuitbreaker.OpenState:
		return 2
	default:
		return 0
	}
}
