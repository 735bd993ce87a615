package service

import (
	"context"

	"valunds/internal/domain/entity"
)

// OAuthService drives the authorization-code exchange with an external identity provider.
type OAuthService interface {
	// BuildAuthorizationURL returns the provider consent URL carrying the given state.
	BuildAuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for a provider access token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile reads the provider profile with a provider access token.
	FetchProfile(ctx context.Context, accessToken string) (*entity.OAuthProfile, error)
}
