package clientstorage

import (
	"context"
	"errors"
	"login-service/internal/app/contracts"
	"login-service/internal/app/models"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/exceptions"
	"login-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoClientStorageProvider struct {
	collection *mongo.Collection
	Log        *zap.Logger
}

func NewMongoClientStorageProvider(db *mongo.Database, logger *zap.Logger) contracts.ClientStorageProvider {
	return &mongoClientStorageProvider{
		collection: db.Collection(constvars.ClientStorageCollection),
		Log:        logger,
	}
}

// EnsureIndexes creates the unique (client_id, key) index the upserts rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) (string, error) {
	return db.Collection(constvars.ClientStorageCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "client_id", Value: 1}, {Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("client_id_key_unique"),
	})
}

func (p *mongoClientStorageProvider) ForClient(clientID string) contracts.ClientStorage {
	return &mongoClientStorage{provider: p, clientID: clientID}
}

type mongoClientStorage struct {
	provider *mongoClientStorageProvider
	clientID string
}

func (s *mongoClientStorage) filter(key string) bson.M {
	return bson.M{"client_id": s.clientID, "key": key}
}

func (s *mongoClientStorage) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	var entry models.ClientStorageEntry
	err := s.provider.collection.FindOne(ctx, s.filter(key)).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		s.provider.Log.Error("mongoClientStorage.Get error finding document",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return false, exceptions.ErrMongoDBFindDocument(err)
	}

	err = json.Unmarshal([]byte(entry.Value), dest)
	if err != nil {
		return false, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return true, nil
}

func (s *mongoClientStorage) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	update := bson.M{"$set": models.ClientStorageEntry{
		ClientID:  s.clientID,
		Key:       key,
		Value:     string(raw),
		UpdatedAt: time.Now().UTC(),
	}}
	_, err = s.provider.collection.UpdateOne(ctx, s.filter(key), update, options.Update().SetUpsert(true))
	if err != nil {
		s.provider.Log.Error("mongoClientStorage.Set error upserting document",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}
