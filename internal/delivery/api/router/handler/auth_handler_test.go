package handler

import (
	"net/http"
	"testing"
	"time"

	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/errors"
	mockUC "valunds/internal/mocks/usecase"
	"valunds/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	echo     *echo.Echo
	auth     *mockUC.MockAuthUsecase
	sessions *mockUC.MockSessionUsecase
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	fx := authHandlerFixtures{
		echo:     newTestEcho(),
		auth:     mockUC.NewMockAuthUsecase(t),
		sessions: mockUC.NewMockSessionUsecase(t),
	}

	h := NewAuthHandler(AuthHandlerParams{
		AuthUC:    fx.auth,
		SessionUC: fx.sessions,
		Cookies:   newTestCookies(t),
		Logger:    newDiscardLogger(),
	})

	fx.echo.POST("/register", h.Register)
	fx.echo.POST("/login", h.Login)
	fx.echo.POST("/token/refresh", h.Refresh)
	fx.echo.POST("/logout", h.Logout)
	fx.echo.POST("/verify-email", h.VerifyEmail)
	fx.echo.POST("/resend-verification", h.ResendVerification)
	fx.echo.POST("/password-reset/request", h.RequestPasswordReset)
	fx.echo.POST("/password-reset/confirm", h.ConfirmPasswordReset)

	return fx
}

func TestAuthHandler_Register_Created(t *testing.T) {
	fx := createTestAuthHandler(t)
	account := newTestAccount()
	account.Active = false
	account.EmailVerified = false

	fx.auth.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Email == "astrid@example.se" && in.PasswordConfirm == "Secret-Password-1" && in.UserType == "client"
		})).
		Return(account, nil)

	rec := serve(fx.echo, jsonRequest(http.MethodPost, "/register", `{
		"email": "astrid@example.se",
		"password": "Secret-Password-1",
		"password_confirm": "Secret-Password-1",
		"user_type": "client"
	}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Contains(t, body.Data["detail"], "verify your account")
	assert.Equal(t, "astrid@example.se", body.Data["account"].(map[string]any)["email"])
	assert.Nil(t, findCookie(rec, "refresh_token"))
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	fx := createTestAuthHandler(t)

	rec := serve(fx.echo, jsonRequest(http.MethodPost, "/register", `{"email": "not-an-email", "user_type": "pirate"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)

	fields := map[string]string{}
	for _, raw := range body.Error.Details.([]any) {
		field := raw.(map[string]any)
		fields[field["field"].(string)] = field["rule"].(string)
	}
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "required", fields["password"])
	assert.Equal(t, "oneof", fields["user_type"])
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	fx := createTestAuthHandler(t)

	rec := serve(fx.echo, jsonRequest(http.MethodPost, "/register", `{"email": `))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrEmailAlreadyExists))

	rec := serve(fx.echo, jsonRequest(http.MethodPost, "/register", `{
		"email": "astrid@example.se",
		"password": "Secret-Password-1",
		"password_confirm": "Secret-Password-1"
	}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login_SetsRefreshCookie(t *testing.T) {
	fx := createTestAuthHandler(t)
	pair := newTestTokenPair()

	fx.auth.EXPECT().
		Login(mock.Anything, mock.MatchedBy(func(in *usecase.LoginInput) bool {
			return in.Email == "astrid@example.se" &&
				in.Client.IPAddress == "203.0.113.7" &&
				in.Client.UserAgent != ""
		})).
		Return(&entity.AuthResult{Account: newTestAccount(), Tokens: pair}, nil)

	rec := serve(fx.echo, jsonRequest(http.MethodPost, "/login", `{"email":"astrid@example.se","password":"Secret-Password-1"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "access-token", body.Data["access_token"])
	assert.NotContains(t, rec.Body.String(), "refresh-token")

	cookie := findCookie(rec, "refresh_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int(testRefreshTTL.Seconds()), cookie.MaxAge)
}

func TestAuthHandler_Login_Locked(t *testing.T) {
	fx := createTestAuthHandler(t)
	lockedUntil := fixedNow.Add(15 * time.Minute)

	fx.auth.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.NewAccountLockedError(lockedUntil, fixedNow)))

	rec := serve(fx.echo, jsonRequest(http.MethodPost, "/login", `{"email":"astrid@example.se","password":"nope"}`))

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "ACCOUNT_LOCKED", body.Error.Code)
	details := body.Error.Details.(map[string]any)
	assert.EqualValues(t, 15, details["minutes_remaining"])
	assert.Equal(t, lockedUntil.Format(time.RFC3339), details["locked_until"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec := serve(fx.echo, jsonRequest(http.MethodPost, "/login", `{"email":"astrid@example.se","password":"nope"}`))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
	assert.Nil(t, findCookie(rec, "refresh_token"))
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("rotates the cookie", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		pair := newTestTokenPair()
		pair.RefreshToken = "rotated"

		fx.sessions.EXPECT().Rotate(mock.Anything, "old-refresh").Return(pair, nil)

		req := jsonRequest(http.MethodPost, "/token/refresh", "")
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-refresh"})
		rec := serve(fx.echo, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "access-token", decode(t, rec).Data["access_token"])
		assert.Equal(t, "rotated", findCookie(rec, "refresh_token").Value)
	})

	t.Run("missing cookie", func(t *testing.T) {
		fx := createTestAuthHandler(t)

		rec := serve(fx.echo, jsonRequest(http.MethodPost, "/token/refresh", ""))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "REFRESH_TOKEN_MISSING", decode(t, rec).Error.Code)
	})

	t.Run("replayed token clears the cookie", func(t *testing.T) {
		fx := createTestAuthHandler(t)

		fx.sessions.EXPECT().Rotate(mock.Anything, "old-refresh").Return(nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid))

		req := jsonRequest(http.MethodPost, "/token/refresh", "")
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-refresh"})
		rec := serve(fx.echo, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		cookie := findCookie(rec, "refresh_token")
		require.NotNil(t, cookie)
		assert.Equal(t, -1, cookie.MaxAge)
	})
}

func TestAuthHandler_Logout_AlwaysSucceeds(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.sessions.EXPECT().Revoke(mock.Anything, "refresh").Return(errors.New("redis down"))

	req := jsonRequest(http.MethodPost, "/logout", "")
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "refresh"})
	rec := serve(fx.echo, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decode(t, rec).Data["detail"])
	assert.Equal(t, -1, findCookie(rec, "refresh_token").MaxAge)
}

func TestAuthHandler_Logout_WithoutCookie(t *testing.T) {
	fx := createTestAuthHandler(t)

	rec := serve(fx.echo, jsonRequest(http.MethodPost, "/logout", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	fx.sessions.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}

func TestAuthHandler_VerifyEmail(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.auth.EXPECT().
		VerifyEmail(mock.Anything, "verification-token").
		Return(&entity.AuthResult{Account: newTestAccount(), Tokens: newTestTokenPair()}, nil)

	rec := serve(fx.echo, jsonRequest(http.MethodPost, "/verify-email", `{"token":"verification-token"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "refresh-token", findCookie(rec, "refresh_token").Value)
}

func TestAuthHandler_EnumerationSafeReplies(t *testing.T) {
	t.Run("resend verification", func(t *testing.T) {
		fx := createTestAuthHandler(t)

		fx.auth.EXPECT().ResendVerification(mock.Anything, "nobody@example.se").Return(nil)

		rec := serve(fx.echo, jsonRequest(http.MethodPost, "/resend-verification", `{"email":"nobody@example.se"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, resendVerificationReply, decode(t, rec).Data["detail"])
	})

	t.Run("password reset request", func(t *testing.T) {
		fx := createTestAuthHandler(t)

		fx.auth.EXPECT().RequestPasswordReset(mock.Anything, "nobody@example.se", mock.Anything).Return(nil)

		rec := serve(fx.echo, jsonRequest(http.MethodPost, "/password-reset/request", `{"email":"nobody@example.se"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, passwordResetReply, decode(t, rec).Data["detail"])
	})
}

func TestAuthHandler_ConfirmPasswordReset_ExpiredToken(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.auth.EXPECT().
		ResetPassword(mock.Anything, mock.MatchedBy(func(in *usecase.ResetPasswordInput) bool {
			return in.Token == "reset-token" && in.Password == "Brand-New-Password-2"
		})).
		Return(errors.WithStack(domainerrors.ErrResetTokenExpired))

	rec := serve(fx.echo, jsonRequest(http.MethodPost, "/password-reset/confirm", `{"token":"reset-token","password":"Brand-New-Password-2"}`))

	assert.Equal(t, domainerrors.ErrResetTokenExpired.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrResetTokenExpired.ErrorCode(), decode(t, rec).Error.Code)
}
