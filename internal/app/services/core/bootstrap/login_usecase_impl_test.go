package bootstrap

import (
	"context"
	"errors"
	"login-service/internal/app/config"
	"login-service/internal/app/contracts"
	"login-service/internal/app/models"
	"login-service/internal/pkg/i18n"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type memoryStorageProvider struct {
	clients map[string]*memoryStorage
}

func (p *memoryStorageProvider) ForClient(clientID string) contracts.ClientStorage {
	if _, ok := p.clients[clientID]; !ok {
		p.clients[clientID] = newMemoryStorage()
	}
	return p.clients[clientID]
}

func TestLoginUsecase(t *testing.T) {
	ctx := context.Background()
	internalConfig := &config.InternalConfig{Login: config.Login{SubmitLockExpiredInSeconds: 60}}

	t.Run("Flows Share Client Storage", func(t *testing.T) {
		provider := &memoryStorageProvider{clients: map[string]*memoryStorage{}}
		issuer := new(MockIssuer)
		issuer.On("RequestOneTimeToken", mock.Anything, "a@b.com").Return(nil)
		uc := NewLoginUsecase(provider, issuer, nil, nil, internalConfig, zap.NewNop())

		navigator := new(MockNavigator)
		navigator.On("NavigateTo", "/verify").Return()
		messages := i18n.NewMessages(language.English)

		first, err := uc.NewFlow(ctx, "client-1", navigator, messages)
		require.NoError(t, err)
		redirected, err := first.Mount(ctx)
		require.NoError(t, err)
		assert.False(t, redirected)
		first.Change("a@b.com")
		require.NoError(t, first.Submit(ctx))

		second, err := uc.NewFlow(ctx, "client-1", navigator, messages)
		require.NoError(t, err)
		redirected, err = second.Mount(ctx)
		require.NoError(t, err)
		assert.True(t, redirected, "next activation goes straight to verification")

		other, err := uc.NewFlow(ctx, "client-2", navigator, messages)
		require.NoError(t, err)
		redirected, err = other.Mount(ctx)
		require.NoError(t, err)
		assert.False(t, redirected)
	})

	t.Run("GetPendingIdentity", func(t *testing.T) {
		provider := &memoryStorageProvider{clients: map[string]*memoryStorage{}}
		uc := NewLoginUsecase(provider, new(MockIssuer), nil, nil, internalConfig, zap.NewNop())

		identity, err := uc.GetPendingIdentity(ctx, "client-1")
		require.NoError(t, err)
		assert.Nil(t, identity)

		require.NoError(t, provider.ForClient("client-1").Set(ctx, "user", models.PendingIdentity{Email: "a@b.com"}))
		identity, err = uc.GetPendingIdentity(ctx, "client-1")
		require.NoError(t, err)
		require.NotNil(t, identity)
		assert.Equal(t, "a@b.com", identity.Email)

		provider.clients["client-1"].getErr = errors.New("redis down")
		_, err = uc.GetPendingIdentity(ctx, "client-1")
		assert.Error(t, err)
	})
}
