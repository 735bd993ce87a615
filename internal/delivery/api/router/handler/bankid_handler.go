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

// BankIDHandlerParams holds dependencies for BankIDHandler, injected by Fx.
type BankIDHandlerParams struct {
	fx.In

	BankIDUC usecase.BankIDUsecase
	Cookies  *Cookies
	Logger   *slog.Logger
}

// BankIDHandler serves the BankID polling flow. The pending order is tracked through the
// BankID session cookie.
type BankIDHandler struct {
	bankIDUC usecase.BankIDUsecase
	cookies  *Cookies
	logger   *slog.Logger
}

// NewBankIDHandler is the constructor for BankIDHandler
func NewBankIDHandler(params BankIDHandlerParams) *BankIDHandler {
	return &BankIDHandler{
		bankIDUC: params.BankIDUC,
		cookies:  params.Cookies,
		logger:   params.Logger,
	}
}

// BankIDInitiateRequest is the body of POST /bankid/initiate.
type BankIDInitiateRequest struct {
	PersonalNumber string `json:"personal_number" validate:"omitempty,numeric,len=12"`
}

// BankIDInitiateResponse tells the client how to launch the BankID app.
type BankIDInitiateResponse struct {
	OrderRef       string `json:"order_ref"`
	AutoStartToken string `json:"auto_start_token"`
}

// Initiate starts a BankID order.
func (h *BankIDHandler) Initiate(c echo.Context) error {
	var req BankIDInitiateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.bankIDUC.Initiate(c.Request().Context(), &usecase.BankIDInitiateInput{
		PersonalNumber: req.PersonalNumber,
		Client:         clientSignature(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetBankIDSession(c, out.SessionKey)

	return response.Success(c, http.StatusOK, &BankIDInitiateResponse{
		OrderRef:       out.OrderRef,
		AutoStartToken: out.AutoStartToken,
	})
}

// Collect polls the pending order. A finished order signs the account in.
func (h *BankIDHandler) Collect(c echo.Context) error {
	out, err := h.bankIDUC.Collect(c.Request().Context(), h.cookies.BankIDSession(c), clientSignature(c))
	if err != nil {
		if bankIDOrderFinished(err) {
			h.cookies.ClearBankIDSession(c)
		}

		return errors.WithStack(err)
	}

	if out.Result == nil {
		return response.Success(c, http.StatusOK, out.Progress)
	}

	h.cookies.ClearBankIDSession(c)
	h.cookies.SetRefresh(c, out.Result.Tokens)

	return response.Success(c, http.StatusOK, newAuthResponse(out.Result))
}

// Cancel aborts the pending order.
func (h *BankIDHandler) Cancel(c echo.Context) error {
	err := h.bankIDUC.Cancel(c.Request().Context(), h.cookies.BankIDSession(c))
	h.cookies.ClearBankIDSession(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "BankID authentication cancelled")
}

// QRCode renders the current animated QR code frame.
func (h *BankIDHandler) QRCode(c echo.Context) error {
	png, err := h.bankIDUC.QRCode(c.Request().Context(), h.cookies.BankIDSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// bankIDOrderFinished reports whether err ends the order, so the client must start over.
func bankIDOrderFinished(err error) bool {
	return errors.Is(err, domainerrors.ErrBankIDNoSession) ||
		errors.Is(err, domainerrors.ErrBankIDFailed) ||
		errors.Is(err, domainerrors.ErrBankIDCancelled) ||
		errors.Is(err, domainerrors.ErrBankIDIdentityConflict) ||
		errors.Is(err, domainerrors.ErrAccountInactive)
}
