package handler

import (
	"log/slog"
	"net/http"

	"valunds/internal/delivery/api/middleware"
	"valunds/internal/delivery/api/response"
	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/errors"
	"valunds/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Cookies   *Cookies
	Logger    *slog.Logger
}

// AccountHandler serves the authenticated account settings.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	cookies   *Cookies
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		cookies:   params.Cookies,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is the body of PATCH /me. Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=150"`
	LastName    *string `json:"last_name" validate:"omitempty,max=150"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=32"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Postcode    *string `json:"postcode" validate:"omitempty,max=20"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
}

// ChangePasswordRequest is the body of POST /change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ChangeEmailRequest is the body of POST /change-email.
type ChangeEmailRequest struct {
	NewEmail string `json:"new_email" validate:"required,email,max=254"`
}

// DeleteAccountRequest is the body of POST /delete.
type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

// Me returns the authenticated account.
func (h *AccountHandler) Me(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account.Summary())
}

// UpdateProfile edits the profile fields present in the body.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.accountUC.UpdateProfile(c.Request().Context(), accountID, &entity.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		Postcode:    req.Postcode,
		Country:     req.Country,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account.Summary())
}

// ChangePassword replaces the password and rotates the session.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pair, err := h.accountUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		AccountID:       accountID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		RefreshToken:    h.cookies.RefreshToken(c),
		Client:          clientSignature(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetRefresh(c, pair)

	return response.Success(c, http.StatusOK, newTokenResponse(pair))
}

// ChangeEmail starts the move to a new address.
func (h *AccountHandler) ChangeEmail(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	var req ChangeEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.accountUC.ChangeEmail(c.Request().Context(), &usecase.ChangeEmailInput{
		AccountID: accountID,
		NewEmail:  req.NewEmail,
		Client:    clientSignature(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Email updated. Please check your new address for a verification link.")
}

// DeleteAccount deactivates the account and ends the session.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	var req DeleteAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.accountUC.DeleteAccount(c.Request().Context(), &usecase.DeleteAccountInput{
		AccountID:    accountID,
		Password:     req.Password,
		RefreshToken: h.cookies.RefreshToken(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.ClearRefresh(c)

	return response.Message(c, "Account deleted")
}

// LoginHistory lists the most recent login attempts.
func (h *AccountHandler) LoginHistory(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	attempts, err := h.accountUC.LoginHistory(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, attempts)
}

// SecurityEvents lists the most recent security events.
func (h *AccountHandler) SecurityEvents(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	events, err := h.accountUC.SecurityEvents(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events)
}
