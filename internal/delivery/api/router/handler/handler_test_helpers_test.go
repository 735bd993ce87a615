package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"valunds/config"
	"valunds/internal/delivery/api/middleware"
	"valunds/internal/delivery/api/validator"
	"valunds/internal/domain/constants"
	"valunds/internal/domain/entity"
	mockSvc "valunds/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Cookie: &config.CookieConfig{
			Name: "refresh_token",
			Path: "/",
		},
		Frontend: &config.FrontendConfig{URL: "https://valunds.test/"},
		BankID:   &config.BankIDConfig{SessionTTL: 5 * time.Minute},
	}
	cfg.Env.Env = constants.EnvProduction

	return cfg
}

// testRefreshTTL is the refresh token lifetime reported by newTestCookies.
const testRefreshTTL = 30 * 24 * time.Hour

func newTestCookies(t *testing.T) *Cookies {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().RefreshTokenDuration().Return(testRefreshTTL)

	return NewCookies(newTestConfig(), tokens)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho returns an engine with the production error handler and validator.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func newTestAccount() *entity.Account {
	return &entity.Account{
		ID:            uuid.MustParse("6f1c2d9e-3b4a-4f6e-9a7b-1c2d3e4f5a6b"),
		Email:         "astrid@example.se",
		Username:      "astrid@example.se",
		FirstName:     "Astrid",
		LastName:      "Lindgren",
		UserType:      entity.UserTypeFreelancer,
		Country:       "Sweden",
		EmailVerified: true,
		Active:        true,
	}
}

func newTestTokenPair() *entity.TokenPair {
	return &entity.TokenPair{
		AccessToken:      "access-token",
		RefreshToken:     "refresh-token",
		AccessExpiresAt:  fixedNow.Add(15 * time.Minute),
		RefreshExpiresAt: fixedNow.Add(7 * 24 * time.Hour),
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	req.RemoteAddr = "203.0.113.7:54321"

	return req
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// envelope is the decoded form of every JSON reply.
type envelope struct {
	Data  map[string]any `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}
