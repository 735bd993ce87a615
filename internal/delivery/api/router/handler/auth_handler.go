// Package handler holds the echo handlers of the account API.
package handler

import (
	"log/slog"
	"net/http"

	"valunds/internal/delivery/api/response"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/errors"
	"valunds/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Generic replies of enumeration-safe endpoints. They never depend on whether the
// address belongs to an account.
const (
	resendVerificationReply = "If an unverified account exists with this email, a new verification link has been sent."
	passwordResetReply      = "If an account exists with this email, you will receive a password reset link."
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	SessionUC usecase.SessionUsecase
	Cookies   *Cookies
	Logger    *slog.Logger
}

// AuthHandler serves registration, login and the token lifecycle.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	sessionUC usecase.SessionUsecase
	cookies   *Cookies
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		sessionUC: params.SessionUC,
		cookies:   params.Cookies,
		logger:    params.Logger,
	}
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	FirstName       string `json:"first_name" validate:"max=150"`
	LastName        string `json:"last_name" validate:"max=150"`
	UserType        string `json:"user_type" validate:"omitempty,oneof=freelancer client admin"`
	PhoneNumber     string `json:"phone_number" validate:"max=32"`
	Address         string `json:"address" validate:"max=255"`
	City            string `json:"city" validate:"max=100"`
	Postcode        string `json:"postcode" validate:"max=20"`
	Country         string `json:"country" validate:"max=100"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenRequest carries a single-use verification token.
type TokenRequest struct {
	Token string `json:"token"`
}

// EmailRequest carries an email address.
type EmailRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest is the body of POST /password-reset/confirm.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Register creates an inactive account and queues its verification mail.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		UserType:        req.UserType,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
		City:            req.City,
		Postcode:        req.Postcode,
		Country:         req.Country,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"account": account.Summary(),
		"detail":  "Registration successful. Please check your email to verify your account.",
	})
}

// Login authenticates with email and password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Client:   clientSignature(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetRefresh(c, result.Tokens)

	return response.Success(c, http.StatusOK, newAuthResponse(result))
}

// Refresh rotates the refresh token held in the cookie.
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := h.cookies.RefreshToken(c)
	if refreshToken == "" {
		return errors.WithStack(domainerrors.ErrRefreshTokenMissing)
	}

	pair, err := h.sessionUC.Rotate(c.Request().Context(), refreshToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrRefreshTokenInvalid) {
			h.cookies.ClearRefresh(c)
		}

		return errors.WithStack(err)
	}

	h.cookies.SetRefresh(c, pair)

	return response.Success(c, http.StatusOK, newTokenResponse(pair))
}

// Logout revokes the refresh token, if any, and clears the cookie. It always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if refreshToken := h.cookies.RefreshToken(c); refreshToken != "" {
		if err := h.sessionUC.Revoke(ctx, refreshToken); err != nil {
			h.logger.WarnContext(ctx, "Failed to revoke refresh token on logout", slog.Any("error", err))
		}
	}

	h.cookies.ClearRefresh(c)

	return response.Message(c, "Logged out successfully")
}

// VerifyEmail consumes a verification token and logs the account in.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.authUC.VerifyEmail(c.Request().Context(), req.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetRefresh(c, result.Tokens)

	return response.Success(c, http.StatusOK, newAuthResponse(result))
}

// ResendVerification sends a fresh verification link.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var req EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ResendVerification(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, resendVerificationReply)
}

// RequestPasswordReset sends a reset link.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), req.Email, clientSignature(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, passwordResetReply)
}

// ConfirmPasswordReset sets a new password from a reset token.
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.authUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:    req.Token,
		Password: req.Password,
		Client:   clientSignature(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Password has been reset successfully. You can now log in with your new password.")
}
