package handler

import (
	"net/http"
	"time"

	"valunds/config"
	"valunds/internal/domain/constants"
	"valunds/internal/domain/entity"
	"valunds/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// accessHandoffMaxAge is how long the federated flow leaves the access token readable by
// the frontend after redirecting to it.
const accessHandoffMaxAge = 60 * time.Second

// Cookies writes the authentication cookies of the API.
type Cookies struct {
	refreshName   string
	refreshMaxAge time.Duration
	bankIDMaxAge  time.Duration
	domain        string
	path          string
	secure        bool
}

// NewCookies is the constructor for Cookies. Cookies are Secure outside local development.
// The refresh cookie lives exactly as long as the refresh token it carries.
func NewCookies(cfg *config.Config, tokens service.TokenService) *Cookies {
	return &Cookies{
		refreshName:   cfg.Cookie.Name,
		refreshMaxAge: tokens.RefreshTokenDuration(),
		bankIDMaxAge:  cfg.BankID.SessionTTL,
		domain:        cfg.Cookie.Domain,
		path:          cfg.Cookie.Path,
		secure:        cfg.Env.Env != constants.EnvDevelop,
	}
}

// SetRefresh stores the refresh token of pair in the HttpOnly refresh cookie.
func (k *Cookies) SetRefresh(c echo.Context, pair *entity.TokenPair) {
	c.SetCookie(k.build(k.refreshName, pair.RefreshToken, k.refreshMaxAge, true))
}

// ClearRefresh expires the refresh cookie.
func (k *Cookies) ClearRefresh(c echo.Context) {
	c.SetCookie(k.expired(k.refreshName))
}

// RefreshToken returns the refresh token presented by the client, or "".
func (k *Cookies) RefreshToken(c echo.Context) string {
	return cookieValue(c, k.refreshName)
}

// SetAccessHandoff leaves a short-lived, script-readable copy of the access token for the
// frontend to pick up after an OAuth redirect.
func (k *Cookies) SetAccessHandoff(c echo.Context, pair *entity.TokenPair) {
	c.SetCookie(k.build(constants.CookieAccessToken, pair.AccessToken, accessHandoffMaxAge, false))
}

// SetBankIDSession stores the opaque key of a pending BankID order.
func (k *Cookies) SetBankIDSession(c echo.Context, key string) {
	c.SetCookie(k.build(constants.CookieBankIDSession, key, k.bankIDMaxAge, true))
}

// ClearBankIDSession expires the BankID session cookie.
func (k *Cookies) ClearBankIDSession(c echo.Context) {
	c.SetCookie(k.expired(constants.CookieBankIDSession))
}

// BankIDSession returns the BankID session key presented by the client, or "".
func (k *Cookies) BankIDSession(c echo.Context) string {
	return cookieValue(c, constants.CookieBankIDSession)
}

func (k *Cookies) build(name, value string, maxAge time.Duration, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     k.path,
		Domain:   k.domain,
		MaxAge:   int(maxAge / time.Second),
		Secure:   k.secure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
	}
}

func (k *Cookies) expired(name string) *http.Cookie {
	cookie := k.build(name, "", 0, true)
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)

	return cookie
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
