package bootstrap

import (
	"context"
	"login-service/internal/app/contracts"
	"login-service/internal/app/models"
)

type LoginUsecase interface {
	// NewFlow builds the flow for one request of clientID.
	NewFlow(ctx context.Context, clientID string, navigator contracts.Navigator, messages contracts.Messages) (*Flow, error)
	GetPendingIdentity(ctx context.Context, clientID string) (*models.PendingIdentity, error)
}
