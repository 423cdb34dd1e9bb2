package contracts

import (
	"context"
	"login-service/internal/app/models"
)

// TokenIssuer asks the remote authority to deliver a one-time token to email.
type TokenIssuer interface {
	RequestOneTimeToken(ctx context.Context, email string) error
}

type Navigator interface {
	NavigateTo(path string)
}

// Messages looks up localized strings by key.
type Messages interface {
	Get(key string) string
}

type EventPublisher interface {
	Publish(ctx context.Context, event *models.LoginEvent) error
}
