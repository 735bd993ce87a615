package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"valunds/config"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/errors"
	"valunds/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Error codes handed to the frontend login page after a failed federated login.
const (
	oauthErrorCancelled       = "oauth_cancelled"
	oauthErrorFailed          = "oauth_failed"
	oauthErrorNoEmail         = "no_email"
	oauthErrorAccountInactive = "account_inactive"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	OAuthUC usecase.OAuthUsecase
	Cookies *Cookies
	Config  *config.Config
	Logger  *slog.Logger
}

// OAuthHandler drives the Google sign-in redirects.
type OAuthHandler struct {
	oauthUC     usecase.OAuthUsecase
	cookies     *Cookies
	frontendURL string
	logger      *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		oauthUC:     params.OAuthUC,
		cookies:     params.Cookies,
		frontendURL: strings.TrimRight(params.Config.Frontend.URL, "/"),
		logger:      params.Logger,
	}
}

// GoogleLogin redirects the browser to the Google consent screen.
func (h *OAuthHandler) GoogleLogin(c echo.Context) error {
	consentURL, err := h.oauthUC.BeginLogin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, consentURL)
}

// GoogleCallback finishes the login and hands the session to the frontend.
func (h *OAuthHandler) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.oauthUC.CompleteLogin(ctx, &usecase.OAuthCallbackInput{
		Code:   c.QueryParam("code"),
		State:  c.QueryParam("state"),
		Error:  c.QueryParam("error"),
		Client: clientSignature(c),
	})
	if err != nil {
		code := oauthErrorCode(err)
		h.logger.InfoContext(ctx, "Google sign-in rejected",
			slog.String("reason", code),
			slog.Any("error", err),
		)

		return c.Redirect(http.StatusFound, h.frontendURL+"/login?error="+url.QueryEscape(code))
	}

	h.cookies.SetRefresh(c, result.Tokens)
	h.cookies.SetAccessHandoff(c, result.Tokens)

	return c.Redirect(http.StatusFound, h.frontendURL+"/oauth/callback")
}

func oauthErrorCode(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrOAuthCancelled):
		return oauthErrorCancelled
	case errors.Is(err, domainerrors.ErrOAuthNoEmail):
		return oauthErrorNoEmail
	case errors.Is(err, domainerrors.ErrAccountInactive):
		return oauthErrorAccountInactive
	default:
		return oauthErrorFailed
	}
}
