package main

import (
	"context"
	"errors"
	"login-service/internal/app/config"
	"login-service/internal/app/contracts"
	"login-service/internal/app/delivery/http/controllers"
	"login-service/internal/app/delivery/http/middlewares"
	"login-service/internal/app/delivery/http/routers"
	"login-service/internal/app/drivers/database"
	"login-service/internal/app/drivers/logger"
	"login-service/internal/app/drivers/messaging"
	"login-service/internal/app/services/core/bootstrap"
	"login-service/internal/app/services/shared/clientstorage"
	"login-service/internal/app/services/shared/events"
	"login-service/internal/app/services/shared/locker"
	"login-service/internal/app/services/shared/ott"
	"login-service/internal/app/services/shared/redis"
	"login-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(internalConfig)

	log.Info("Starting login service",
		zap.String("build_version", Version),
		zap.String("build_tag", Tag),
	)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig, log)

	app := config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          redisClient,
		Logger:         log,
		AccessLogger:   accessLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.Login.ClientStorageDriver == constvars.ClientStorageDriverMongo {
		app.MongoDB = database.NewMongoDB(driverConfig, log)
	}
	if internalConfig.RabbitMQ.LoginEventsQueue != "" {
		app.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}

	err = bootstrapingTheApp(app)
	if err != nil {
		log.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = app.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error closing app resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(app config.Bootstrap) error {
	// Redis
	redisRepository := redis.NewRedisRepository(app.Redis)

	// Client storage
	storageProvider, err := clientstorage.NewProvider(
		app.InternalConfig.Login.ClientStorageDriver,
		redisRepository,
		app.MongoDB,
		time.Duration(app.InternalConfig.Login.ClientStorageTTLInHours)*time.Hour,
		app.Logger,
	)
	if err != nil {
		return err
	}

	// One-time token issuer
	ottConfig, err := ott.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	ottClient, err := ott.NewClient(ottConfig, app.Logger)
	if err != nil {
		return err
	}

	// Login events
	var eventPublisher contracts.EventPublisher = events.NewNoopPublisher()
	if app.RabbitMQ != nil {
		eventPublisher, err = events.NewRabbitMQPublisher(
			app.RabbitMQ,
			app.InternalConfig.RabbitMQ.LoginEventsQueue,
			app.Logger,
		)
		if err != nil {
			return err
		}
	}

	lockerService := locker.NewLockService(redisRepository, app.Logger)

	loginUsecase := bootstrap.NewLoginUsecase(
		storageProvider,
		ottClient,
		lockerService,
		eventPublisher,
		app.InternalConfig,
		app.Logger,
	)
	loginController := controllers.NewLoginController(app.Logger, loginUsecase)

	middlewares := middlewares.NewMiddlewares(app.Logger, app.InternalConfig)

	routers.SetupRoutes(app.Router, app.InternalConfig, app.AccessLogger, middlewares, loginController)
	return nil
}
