package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSessionJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("Round Trip", func(t *testing.T) {
		clientID := GenerateClientID()
		token, err := GenerateClientSessionJWT(clientID, secret, time.Hour)
		require.NoError(t, err)

		parsed, err := ParseClientSessionJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, clientID, parsed)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateClientSessionJWT(GenerateClientID(), secret, time.Hour)
		require.NoError(t, err)

		_, err = ParseClientSessionJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := GenerateClientSessionJWT(GenerateClientID(), secret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseClientSessionJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Client ID Is Not A UUID", func(t *testing.T) {
		token, err := GenerateClientSessionJWT("not-a-uuid", secret, time.Hour)
		require.NoError(t, err)

		_, err = ParseClientSessionJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseClientSessionJWT("garbage", secret)
		assert.Error(t, err)
	})
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.Contains(t, first, "LOGIN_SVC_")
	assert.NotEqual(t, first, second)
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, ValidateVar("a@b.com", "required,email"))
	assert.Error(t, ValidateVar("", "required,email"))
	assert.Error(t, ValidateVar("nope", "required,email"))

	assert.NoError(t, ValidateVar("70%", "css_length"))
	assert.NoError(t, ValidateVar("12.5rem", "css_length"))
	assert.Error(t, ValidateVar("wide", "css_length"))
}
