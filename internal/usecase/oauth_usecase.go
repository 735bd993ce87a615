package usecase

import (
	"context"

	"valunds/internal/domain/entity"
)

// OAuthCallbackInput carries the query parameters of the provider redirect.
type OAuthCallbackInput struct {
	Code   string
	State  string
	Error  string // provider error code, set when the user declined consent
	Client entity.ClientSignature
}

// OAuthUsecase defines the federated login flow through an external identity provider.
type OAuthUsecase interface {
	// BeginLogin stores a fresh state value and returns the provider consent URL.
	BeginLogin(ctx context.Context) (string, error)

	// CompleteLogin validates the callback, resolves the local account and issues a token pair.
	CompleteLogin(ctx context.Context, input *OAuthCallbackInput) (*entity.AuthResult, error)
}
