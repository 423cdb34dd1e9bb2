package clientstorage

import (
	"context"
	"fmt"
	"login-service/internal/app/contracts"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/exceptions"
	"login-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type redisClientStorageProvider struct {
	redisRepo contracts.RedisRepository
	ttl       time.Duration
	Log       *zap.Logger
}

// NewRedisClientStorageProvider keeps every client's storage in redis under
// client_storage:<clientID>:<key>. Each write renews the TTL of that key.
func NewRedisClientStorageProvider(repo contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.ClientStorageProvider {
	return &redisClientStorageProvider{
		redisRepo: repo,
		ttl:       ttl,
		Log:       logger,
	}
}

func (p *redisClientStorageProvider) ForClient(clientID string) contracts.ClientStorage {
	return &redisClientStorage{provider: p, clientID: clientID}
}

type redisClientStorage struct {
	provider *redisClientStorageProvider
	clientID string
}

func (s *redisClientStorage) redisKey(key string) string {
	return fmt.Sprintf(constvars.ClientStorageRedisKeyFormat, s.clientID, key)
}

func (s *redisClientStorage) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	redisKey := s.redisKey(key)
	raw, err := s.provider.redisRepo.Get(ctx, redisKey)
	if err != nil {
		s.provider.Log.Error("redisClientStorage.Get error calling redisRepo.Get",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return false, err
	}
	if raw == "" {
		return false, nil
	}

	err = json.Unmarshal([]byte(raw), dest)
	if err != nil {
		s.provider.Log.Error("redisClientStorage.Get error unmarshaling stored value",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return false, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return true, nil
}

func (s *redisClientStorage) Set(ctx context.Context, key string, value interface{}) error {
	redisKey := s.redisKey(key)
	err := s.provider.redisRepo.Set(ctx, redisKey, value, s.provider.ttl)
	if err != nil {
		s.provider.Log.Error("redisClientStorage.Set error calling redisRepo.Set",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return err
	}

	s.provider.Log.Debug("redisClientStorage.Set succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingClientIDKey, s.clientID),
		zap.String(constvars.LoggingStorageKey, key),
	)
	return nil
}
