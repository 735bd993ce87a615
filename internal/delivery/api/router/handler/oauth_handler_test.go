package handler

import (
	"net/http"
	"testing"

	"valunds/internal/domain/constants"
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

func createTestOAuthHandler(t *testing.T) (*echo.Echo, *mockUC.MockOAuthUsecase) {
	e := newTestEcho()
	oauthUC := mockUC.NewMockOAuthUsecase(t)

	h := NewOAuthHandler(OAuthHandlerParams{
		OAuthUC: oauthUC,
		Cookies: newTestCookies(t),
		Config:  newTestConfig(),
		Logger:  newDiscardLogger(),
	})
	e.GET("/oauth/google/login", h.GoogleLogin)
	e.GET("/oauth/google/callback", h.GoogleCallback)

	return e, oauthUC
}

func TestOAuthHandler_GoogleLogin_Redirects(t *testing.T) {
	e, oauthUC := createTestOAuthHandler(t)

	oauthUC.EXPECT().BeginLogin(mock.Anything).Return("https://accounts.google.com/o/oauth2/auth?state=abc", nil)

	rec := serve(e, jsonRequest(http.MethodGet, "/oauth/google/login", ""))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=abc", rec.Header().Get(echo.HeaderLocation))
}

func TestOAuthHandler_GoogleCallback_Success(t *testing.T) {
	e, oauthUC := createTestOAuthHandler(t)

	oauthUC.EXPECT().
		CompleteLogin(mock.Anything, mock.MatchedBy(func(in *usecase.OAuthCallbackInput) bool {
			return in.Code == "auth-code" && in.State == "state-123" && in.Error == ""
		})).
		Return(&entity.AuthResult{Account: newTestAccount(), Tokens: newTestTokenPair()}, nil)

	rec := serve(e, jsonRequest(http.MethodGet, "/oauth/google/callback?code=auth-code&state=state-123", ""))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://valunds.test/oauth/callback", rec.Header().Get(echo.HeaderLocation))

	refresh := findCookie(rec, "refresh_token")
	require.NotNil(t, refresh)
	assert.True(t, refresh.HttpOnly)

	handoff := findCookie(rec, constants.CookieAccessToken)
	require.NotNil(t, handoff)
	assert.Equal(t, "access-token", handoff.Value)
	assert.False(t, handoff.HttpOnly)
	assert.Equal(t, 60, handoff.MaxAge)
}

func TestOAuthHandler_GoogleCallback_FailuresRedirectToLogin(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "consent declined", err: domainerrors.ErrOAuthCancelled, want: "oauth_cancelled"},
		{name: "state rejected", err: domainerrors.ErrOAuthStateInvalid, want: "oauth_failed"},
		{name: "exchange failed", err: domainerrors.ErrOAuthFailed, want: "oauth_failed"},
		{name: "no email", err: domainerrors.ErrOAuthNoEmail, want: "no_email"},
		{name: "deactivated account", err: domainerrors.ErrAccountInactive, want: "account_inactive"},
		{name: "unexpected", err: errors.New("boom"), want: "oauth_failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, oauthUC := createTestOAuthHandler(t)

			oauthUC.EXPECT().CompleteLogin(mock.Anything, mock.Anything).Return(nil, errors.WithStack(tt.err))

			rec := serve(e, jsonRequest(http.MethodGet, "/oauth/google/callback?error=access_denied", ""))

			require.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "https://valunds.test/login?error="+tt.want, rec.Header().Get(echo.HeaderLocation))
			assert.Nil(t, findCookie(rec, "refresh_token"))
		})
	}
}
