package utils

import (
	"context"
	"errors"
	"login-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestEmailDomain(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "Plain Address", email: "a@b.com", expected: "b.com"},
		{name: "Upper Case Domain", email: "Jane@Example.COM", expected: "example.com"},
		{name: "No At Sign", email: "not-an-email", expected: ""},
		{name: "Trailing At Sign", email: "a@", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EmailDomain(tc.email))
		})
	}
}

func TestContextAccessors(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	ctx = context.WithValue(ctx, constvars.CONTEXT_CLIENT_ID_KEY, "client-1")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "client-1", GetClientID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
	assert.Empty(t, GetClientID(context.Background()))
}

func TestLogOperation(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Returns Nil On Success", func(t *testing.T) {
		called := false
		err := LogOperation(logger, "noop", "req-1", func() error {
			called = true
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("Propagates Error", func(t *testing.T) {
		expected := errors.New("boom")
		err := LogOperation(logger, "noop", "req-1", func() error { return expected })
		assert.ErrorIs(t, err, expected)
	})
}
