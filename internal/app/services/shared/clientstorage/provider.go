package clientstorage

import (
	"fmt"
	"login-service/internal/app/contracts"
	"login-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// NewProvider builds the provider named by driver.
func NewProvider(driver string, repo contracts.RedisRepository, db *mongo.Database, ttl time.Duration, logger *zap.Logger) (contracts.ClientStorageProvider, error) {
	switch driver {
	case "", constvars.ClientStorageDriverRedis:
		return NewRedisClientStorageProvider(repo, ttl, logger), nil
	case constvars.ClientStorageDriverMongo:
		if db == nil {
			return nil, fmt.Errorf("client storage driver %q requires a mongo database", driver)
		}
		return NewMongoClientStorageProvider(db, logger), nil
	default:
		return nil, fmt.Errorf("unknown client storage driver %q", driver)
	}
}
