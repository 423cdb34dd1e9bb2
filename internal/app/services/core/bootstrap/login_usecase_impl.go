package bootstrap

import (
	"context"
	"login-service/internal/app/config"
	"login-service/internal/app/contracts"
	"login-service/internal/app/models"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type loginUsecase struct {
	StorageProvider contracts.ClientStorageProvider
	TokenIssuer     contracts.TokenIssuer
	LockerService   contracts.LockerService
	EventPublisher  contracts.EventPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewLoginUsecase(
	storageProvider contracts.ClientStorageProvider,
	tokenIssuer contracts.TokenIssuer,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) LoginUsecase {
	return &loginUsecase{
		StorageProvider: storageProvider,
		TokenIssuer:     tokenIssuer,
		LockerService:   lockerService,
		EventPublisher:  eventPublisher,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *loginUsecase) NewFlow(ctx context.Context, clientID string, navigator contracts.Navigator, messages contracts.Messages) (*Flow, error) {
	uc.Log.Debug("loginUsecase.NewFlow called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingClientIDKey, clientID),
	)

	return NewFlow(Dependencies{
		Storage:   uc.StorageProvider.ForClient(clientID),
		Issuer:    uc.TokenIssuer,
		Navigator: navigator,
		Messages:  messages,
		Locker:    uc.LockerService,
		LockTTL:   time.Duration(uc.InternalConfig.Login.SubmitLockExpiredInSeconds) * time.Second,
		Publisher: uc.EventPublisher,
		ClientID:  clientID,
		Log:       uc.Log,
	})
}

// GetPendingIdentity returns nil when the client has not requested a token.
func (uc *loginUsecase) GetPendingIdentity(ctx context.Context, clientID string) (*models.PendingIdentity, error) {
	requestID := utils.GetRequestID(ctx)

	identity := new(models.PendingIdentity)
	found, err := uc.StorageProvider.ForClient(clientID).Get(ctx, constvars.StorageKeyUser, identity)
	if err != nil {
		uc.Log.Error("loginUsecase.GetPendingIdentity error reading client storage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClientIDKey, clientID),
			zap.Error(err),
		)
		return nil, err
	}
	if !found || !identity.IsPresent() {
		return nil, nil
	}
	return identity, nil
}
