package main

import (
	"context"
	"login-service/internal/app/config"
	"login-service/internal/app/drivers/database"
	"login-service/internal/app/drivers/logger"
	"login-service/internal/app/services/shared/clientstorage"
	"time"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer func() {
		_ = log.Sync()
	}()

	mongoDB := database.NewMongoDB(driverConfig, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer func() {
		if err := mongoDB.Client().Disconnect(ctx); err != nil {
			log.Error("Error disconnecting mongo database", zap.Error(err))
		}
	}()

	name, err := clientstorage.EnsureIndexes(ctx, mongoDB)
	if err != nil {
		log.Error("Error creating client storage indexes", zap.Error(err))
		return
	}

	log.Info("Applied client storage migration", zap.String("index_name", name))
}
