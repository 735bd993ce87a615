package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "valunds/internal/delivery/context"
	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	mockUC "valunds/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/accounts/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_RejectsMissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Basic abc", "Bearer ", "Bearer    "} {
		t.Run(header, func(t *testing.T) {
			m := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t))
			c, _ := newAuthContext(header)

			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next must not run")

				return nil
			})(c)

			assert.ErrorIs(t, err, domainerrors.ErrAccessTokenInvalid)
		})
	}
}

func TestAuthMiddleware_PropagatesVerificationError(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().VerifyAccess(mock.Anything, "expired").Return(nil, domainerrors.ErrAccessTokenInvalid)
	c, _ := newAuthContext("Bearer expired")

	err := NewAuthMiddleware(sessions).Authenticate(func(echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenInvalid)
}

func TestAuthMiddleware_StoresAccount(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)
	account := &entity.Account{ID: uuid.New(), Email: "astrid@example.se", Active: true}
	sessions.EXPECT().VerifyAccess(mock.Anything, "good-token").Return(account, nil)
	c, _ := newAuthContext("Bearer good-token")

	var reached bool
	err := NewAuthMiddleware(sessions).Authenticate(func(c echo.Context) error {
		reached = true

		got, ok := GetAccount(c)
		assert.True(t, ok)
		assert.Same(t, account, got)

		id, ok := deliverycontext.AccountIDFromContext(c.Request().Context())
		assert.True(t, ok)
		assert.Equal(t, account.ID, id)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, reached)
}

func TestGetAccountID_Unauthenticated(t *testing.T) {
	c, _ := newAuthContext("")

	id, ok := GetAccountID(c)

	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
}
