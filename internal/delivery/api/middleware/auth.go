package middleware

import (
	"strings"

	deliverycontext "valunds/internal/delivery/context"
	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/errors"
	"valunds/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "
	keyAccount   = "account"
)

// AuthMiddleware authenticates requests by their Bearer access token.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate resolves the access token to an active account and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
		}

		account, err := m.sessions.VerifyAccess(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return err
		}

		c.Set(keyAccount, account)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithAccount(c.Request().Context(), account.ID)))

		return next(c)
	}
}

// GetAccount returns the account stored by Authenticate.
func GetAccount(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(keyAccount).(*entity.Account)

	return account, ok && account != nil
}

// GetAccountID returns the ID of the account stored by Authenticate.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	account, ok := GetAccount(c)
	if !ok {
		return uuid.Nil, false
	}

	return account.ID, true
}
