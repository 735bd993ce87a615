package handler

import (
	"net/http"
	"time"

	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthResponse is the body returned by every successful authentication. The refresh token
// travels only in its HttpOnly cookie.
type AuthResponse struct {
	Account         *entity.AccountSummary `json:"account"`
	AccessToken     string                 `json:"access_token"`
	AccessExpiresAt time.Time              `json:"access_expires_at"`
}

// TokenResponse is the body of a token refresh.
type TokenResponse struct {
	AccessToken     string    `json:"access_token"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
}

func newAuthResponse(result *entity.AuthResult) *AuthResponse {
	return &AuthResponse{
		Account:         result.Account.Summary(),
		AccessToken:     result.Tokens.AccessToken,
		AccessExpiresAt: result.Tokens.AccessExpiresAt,
	}
}

func newTokenResponse(pair *entity.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:     pair.AccessToken,
		AccessExpiresAt: pair.AccessExpiresAt,
	}
}

// clientSignature captures the address and agent string used by the login ledger.
func clientSignature(c echo.Context) entity.ClientSignature {
	return entity.ClientSignature{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

// bindAndValidate decodes the body into req and checks its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body could not be parsed")
	}

	return errors.WithStack(c.Validate(req))
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
