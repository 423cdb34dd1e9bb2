package ott

import (
	"context"
	"errors"
	"fmt"
	"io"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/exceptions"
	"login-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxErrorBodyBytes = 64 << 10

// UpstreamError is returned when the token service answers with a non-2xx
// status. Message is safe to show to the user.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

type upstreamErrorBody struct {
	Message string `json:"message"`
}

type Client struct {
	cfg        Config
	endpoint   *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse OTT_BASE_URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("OTT_BASE_URL must be absolute, got %q", cfg.BaseURL)
	}

	limit := rate.Inf
	if cfg.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(cfg.MaxRequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		cfg:        cfg,
		endpoint:   base.JoinPath("users", "ott"),
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		limiter:    rate.NewLimiter(limit, burst),
		Log:        logger,
	}, nil
}

// RequestOneTimeToken asks the upstream service to deliver a one-time token
// to email. It makes exactly one HTTP call.
func (c *Client) RequestOneTimeToken(ctx context.Context, email string) error {
	requestID := utils.GetRequestID(ctx)
	start := time.Now()

	if err := c.limiter.Wait(ctx); err != nil {
		c.Log.Warn("ott.Client.RequestOneTimeToken outbound limiter wait failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrOTTRateLimitWait(err)
	}

	target := *c.endpoint
	target.RawQuery = url.Values{
		"email":  []string{email},
		"client": []string{c.cfg.ClientName},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.Log.Error("ott.Client.RequestOneTimeToken error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamURLKey, c.endpoint.String()),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.Log.Info("ott.Client.RequestOneTimeToken succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	upstreamErr := &UpstreamError{
		StatusCode: resp.StatusCode,
		Message:    upstreamMessage(resp.StatusCode, body),
	}
	c.Log.Warn(fmt.Sprintf(constvars.ErrDevOTTUpstreamStatus, resp.StatusCode),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		zap.String(constvars.LoggingErrorMessageKey, upstreamErr.Message),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	return upstreamErr
}

func upstreamMessage(statusCode int, body []byte) string {
	var parsed upstreamErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if message := strings.TrimSpace(parsed.Message); message != "" {
			return message
		}
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected status %d", statusCode)
}
