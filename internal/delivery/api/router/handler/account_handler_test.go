package handler

import (
	"net/http"
	"testing"

	"valunds/internal/delivery/api/middleware"
	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/errors"
	mockUC "valunds/internal/mocks/usecase"
	"valunds/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountHandlerFixtures struct {
	echo     *echo.Echo
	accounts *mockUC.MockAccountUsecase
	sessions *mockUC.MockSessionUsecase
	account  *entity.Account
}

func createTestAccountHandler(t *testing.T) accountHandlerFixtures {
	fx := accountHandlerFixtures{
		echo:     newTestEcho(),
		accounts: mockUC.NewMockAccountUsecase(t),
		sessions: mockUC.NewMockSessionUsecase(t),
		account:  newTestAccount(),
	}

	h := NewAccountHandler(AccountHandlerParams{
		AccountUC: fx.accounts,
		Cookies:   newTestCookies(t),
		Logger:    newDiscardLogger(),
	})

	g := fx.echo.Group("", middleware.NewAuthMiddleware(fx.sessions).Authenticate)
	g.GET("/me", h.Me)
	g.PATCH("/me", h.UpdateProfile)
	g.POST("/change-password", h.ChangePassword)
	g.POST("/change-email", h.ChangeEmail)
	g.POST("/delete", h.DeleteAccount)
	g.GET("/login-history", h.LoginHistory)
	g.GET("/security-events", h.SecurityEvents)

	return fx
}

// authorized attaches a bearer token that resolves to the fixture account.
func (fx accountHandlerFixtures) authorized(req *http.Request) *http.Request {
	req.Header.Set(echo.HeaderAuthorization, "Bearer access-token")
	fx.sessions.EXPECT().VerifyAccess(mock.Anything, "access-token").Return(fx.account, nil)

	return req
}

func TestAccountHandler_RequiresBearerToken(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		fx := createTestAccountHandler(t)

		rec := serve(fx.echo, jsonRequest(http.MethodGet, "/me", ""))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "ACCESS_TOKEN_INVALID", decode(t, rec).Error.Code)
	})

	t.Run("revoked or expired token", func(t *testing.T) {
		fx := createTestAccountHandler(t)

		fx.sessions.EXPECT().VerifyAccess(mock.Anything, "stale").Return(nil, errors.WithStack(domainerrors.ErrAccessTokenInvalid))

		req := jsonRequest(http.MethodGet, "/me", "")
		req.Header.Set(echo.HeaderAuthorization, "Bearer stale")
		rec := serve(fx.echo, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAccountHandler_Me(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.accounts.EXPECT().GetAccount(mock.Anything, fx.account.ID).Return(fx.account, nil)

	rec := serve(fx.echo, fx.authorized(jsonRequest(http.MethodGet, "/me", "")))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, fx.account.ID.String(), body.Data["id"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAccountHandler_UpdateProfile_PassesOnlyPresentFields(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.accounts.EXPECT().
		UpdateProfile(mock.Anything, fx.account.ID, mock.MatchedBy(func(u *entity.ProfileUpdate) bool {
			return u.City != nil && *u.City == "Vimmerby" && u.FirstName == nil && u.Country == nil
		})).
		Return(fx.account, nil)

	rec := serve(fx.echo, fx.authorized(jsonRequest(http.MethodPatch, "/me", `{"city":"Vimmerby"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_ChangePassword_RotatesCookie(t *testing.T) {
	fx := createTestAccountHandler(t)
	pair := newTestTokenPair()
	pair.RefreshToken = "fresh-refresh"

	fx.accounts.EXPECT().
		ChangePassword(mock.Anything, mock.MatchedBy(func(in *usecase.ChangePasswordInput) bool {
			return in.AccountID == fx.account.ID &&
				in.CurrentPassword == "Secret-Password-1" &&
				in.NewPassword == "Brand-New-Password-2" &&
				in.RefreshToken == "old-refresh"
		})).
		Return(pair, nil)

	req := jsonRequest(http.MethodPost, "/change-password", `{"current_password":"Secret-Password-1","new_password":"Brand-New-Password-2"}`)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-refresh"})
	rec := serve(fx.echo, fx.authorized(req))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "access-token", decode(t, rec).Data["access_token"])
	assert.Equal(t, "fresh-refresh", findCookie(rec, "refresh_token").Value)
}

func TestAccountHandler_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.accounts.EXPECT().ChangePassword(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrWrongCurrentPassword))

	rec := serve(fx.echo, fx.authorized(jsonRequest(http.MethodPost, "/change-password",
		`{"current_password":"nope","new_password":"Brand-New-Password-2"}`)))

	assert.Equal(t, domainerrors.ErrWrongCurrentPassword.HTTPCode(), rec.Code)
	assert.Nil(t, findCookie(rec, "refresh_token"))
}

func TestAccountHandler_ChangeEmail_RejectsInvalidAddress(t *testing.T) {
	fx := createTestAccountHandler(t)

	rec := serve(fx.echo, fx.authorized(jsonRequest(http.MethodPost, "/change-email", `{"new_email":"pippi"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestAccountHandler_ChangeEmail(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.accounts.EXPECT().
		ChangeEmail(mock.Anything, mock.MatchedBy(func(in *usecase.ChangeEmailInput) bool {
			return in.AccountID == fx.account.ID && in.NewEmail == "pippi@example.se"
		})).
		Return(nil)

	rec := serve(fx.echo, fx.authorized(jsonRequest(http.MethodPost, "/change-email", `{"new_email":"pippi@example.se"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_DeleteAccount_ClearsCookie(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.accounts.EXPECT().
		DeleteAccount(mock.Anything, &usecase.DeleteAccountInput{
			AccountID:    fx.account.ID,
			Password:     "Secret-Password-1",
			RefreshToken: "refresh",
		}).
		Return(nil)

	req := jsonRequest(http.MethodPost, "/delete", `{"password":"Secret-Password-1"}`)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "refresh"})
	rec := serve(fx.echo, fx.authorized(req))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -1, findCookie(rec, "refresh_token").MaxAge)
}

func TestAccountHandler_LoginHistory(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.accounts.EXPECT().LoginHistory(mock.Anything, fx.account.ID).Return([]*entity.LoginAttempt{
		{ID: uuid.New(), AccountID: fx.account.ID, IPAddress: "203.0.113.7", Succeeded: true},
	}, nil)

	rec := serve(fx.echo, fx.authorized(jsonRequest(http.MethodGet, "/login-history", "")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "203.0.113.7")
}

func TestAccountHandler_SecurityEvents_Failure(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.accounts.EXPECT().SecurityEvents(mock.Anything, fx.account.ID).Return(nil, errors.New("connection reset"))

	rec := serve(fx.echo, fx.authorized(jsonRequest(http.MethodGet, "/security-events", "")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
