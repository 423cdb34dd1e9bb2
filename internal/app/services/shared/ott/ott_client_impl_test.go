package ott

import (
	"context"
	"errors"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*Config)) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := Config{
		BaseURL:     server.URL + "/api",
		ClientName:  "web",
		HTTPTimeout: 2 * time.Second,
		Burst:       1,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	client, err := NewClient(cfg, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestClient_RequestOneTimeToken(t *testing.T) {
	t.Run("Success Sends Expected Query", func(t *testing.T) {
		var calls int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/users/ott", r.URL.Path)
			assert.Equal(t, "a+b@c.com", r.URL.Query().Get("email"))
			assert.Equal(t, "web", r.URL.Query().Get("client"))
			assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
			w.WriteHeader(http.StatusOK)
		}, nil)

		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
		err := client.RequestOneTimeToken(ctx, "a+b@c.com")

		assert.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Upstream Message Is Used", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"user is blocked"}`))
		}, nil)

		err := client.RequestOneTimeToken(context.Background(), "a@b.com")

		var upstreamErr *UpstreamError
		require.True(t, errors.As(err, &upstreamErr))
		assert.Equal(t, http.StatusBadRequest, upstreamErr.StatusCode)
		assert.Equal(t, "user is blocked", upstreamErr.Error())
	})

	t.Run("Falls Back To Status Text", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("<html>oops</html>"))
		}, nil)

		err := client.RequestOneTimeToken(context.Background(), "a@b.com")

		var upstreamErr *UpstreamError
		require.True(t, errors.As(err, &upstreamErr))
		assert.Equal(t, "Internal Server Error", upstreamErr.Message)
	})

	t.Run("Timeout", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}, func(cfg *Config) { cfg.HTTPTimeout = 20 * time.Millisecond })

		err := client.RequestOneTimeToken(context.Background(), "a@b.com")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Error(t, client.RequestOneTimeToken(ctx, "a@b.com"))
	})
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "not a url"}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "/relative"}, zap.NewNop())
	assert.Error(t, err)

	client, err := NewClient(Config{BaseURL: "http://ott.local", MaxRequestsPerSecond: 2, Burst: 0}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, client.limiter.Burst())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OTT_BASE_URL", "https://api.example.com")
	t.Setenv("OTT_HTTP_TIMEOUT", "5s")
	t.Setenv("OTT_MAX_REQUESTS_PER_SECOND", "2.5")

	cfg, err := LoadConfigFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, "web", cfg.ClientName)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 2.5, cfg.MaxRequestsPerSecond)
	assert.Equal(t, 1, cfg.Burst)
}
