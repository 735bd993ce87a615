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

func createTestBankIDHandler(t *testing.T) (*echo.Echo, *mockUC.MockBankIDUsecase) {
	e := newTestEcho()
	bankIDUC := mockUC.NewMockBankIDUsecase(t)

	h := NewBankIDHandler(BankIDHandlerParams{
		BankIDUC: bankIDUC,
		Cookies:  newTestCookies(t),
		Logger:   newDiscardLogger(),
	})
	e.POST("/bankid/initiate", h.Initiate)
	e.POST("/bankid/collect", h.Collect)
	e.POST("/bankid/cancel", h.Cancel)
	e.GET("/bankid/qr", h.QRCode)

	return e, bankIDUC
}

func withBankIDSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: constants.CookieBankIDSession, Value: "session-key"})

	return req
}

func TestBankIDHandler_Initiate_SetsSessionCookie(t *testing.T) {
	e, bankIDUC := createTestBankIDHandler(t)

	bankIDUC.EXPECT().
		Initiate(mock.Anything, mock.MatchedBy(func(in *usecase.BankIDInitiateInput) bool {
			return in.PersonalNumber == "199001011234" && in.Client.IPAddress == "203.0.113.7"
		})).
		Return(&usecase.BankIDInitiateOutput{
			SessionKey:     "session-key",
			OrderRef:       "order-ref",
			AutoStartToken: "auto-start",
			QRStartToken:   "qr-start",
		}, nil)

	rec := serve(e, jsonRequest(http.MethodPost, "/bankid/initiate", `{"personal_number":"199001011234"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "order-ref", body.Data["order_ref"])
	assert.Equal(t, "auto-start", body.Data["auto_start_token"])
	assert.NotContains(t, rec.Body.String(), "qr-start")
	assert.NotContains(t, rec.Body.String(), "session-key")

	cookie := findCookie(rec, constants.CookieBankIDSession)
	require.NotNil(t, cookie)
	assert.Equal(t, "session-key", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 300, cookie.MaxAge)
}

func TestBankIDHandler_Initiate_RejectsMalformedPersonalNumber(t *testing.T) {
	e, _ := createTestBankIDHandler(t)

	rec := serve(e, jsonRequest(http.MethodPost, "/bankid/initiate", `{"personal_number":"19900101-1234"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestBankIDHandler_Collect_Pending(t *testing.T) {
	e, bankIDUC := createTestBankIDHandler(t)

	bankIDUC.EXPECT().Collect(mock.Anything, "session-key", mock.Anything).Return(&usecase.BankIDCollectOutput{
		Progress: &entity.BankIDProgress{Status: entity.BankIDStatusPending, HintCode: "userSign", Message: "Enter your security code"},
	}, nil)

	rec := serve(e, withBankIDSession(jsonRequest(http.MethodPost, "/bankid/collect", "")))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "pending", body.Data["status"])
	assert.Equal(t, "userSign", body.Data["hint_code"])
	assert.Nil(t, findCookie(rec, constants.CookieBankIDSession))
}

func TestBankIDHandler_Collect_CompleteSignsIn(t *testing.T) {
	e, bankIDUC := createTestBankIDHandler(t)

	bankIDUC.EXPECT().Collect(mock.Anything, "session-key", mock.Anything).Return(&usecase.BankIDCollectOutput{
		Result: &entity.AuthResult{Account: newTestAccount(), Tokens: newTestTokenPair()},
	}, nil)

	rec := serve(e, withBankIDSession(jsonRequest(http.MethodPost, "/bankid/collect", "")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "access-token", decode(t, rec).Data["access_token"])
	assert.Equal(t, "refresh-token", findCookie(rec, "refresh_token").Value)
	assert.Equal(t, -1, findCookie(rec, constants.CookieBankIDSession).MaxAge)
}

func TestBankIDHandler_Collect_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCleared bool
	}{
		{name: "order failed", err: domainerrors.ErrBankIDFailed, wantStatus: http.StatusBadRequest, wantCleared: true},
		{name: "user cancelled", err: domainerrors.ErrBankIDCancelled, wantStatus: http.StatusBadRequest, wantCleared: true},
		{name: "no session", err: domainerrors.ErrBankIDNoSession, wantStatus: http.StatusBadRequest, wantCleared: true},
		{name: "provider down", err: domainerrors.ErrProviderUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, bankIDUC := createTestBankIDHandler(t)

			bankIDUC.EXPECT().Collect(mock.Anything, "session-key", mock.Anything).Return(nil, errors.WithStack(tt.err))

			rec := serve(e, withBankIDSession(jsonRequest(http.MethodPost, "/bankid/collect", "")))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCleared, findCookie(rec, constants.CookieBankIDSession) != nil)
		})
	}
}

func TestBankIDHandler_Cancel_ClearsCookie(t *testing.T) {
	e, bankIDUC := createTestBankIDHandler(t)

	bankIDUC.EXPECT().Cancel(mock.Anything, "session-key").Return(nil)

	rec := serve(e, withBankIDSession(jsonRequest(http.MethodPost, "/bankid/cancel", "")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -1, findCookie(rec, constants.CookieBankIDSession).MaxAge)
}

func TestBankIDHandler_QRCode(t *testing.T) {
	t.Run("renders png", func(t *testing.T) {
		e, bankIDUC := createTestBankIDHandler(t)
		png := []byte{0x89, 'P', 'N', 'G'}

		bankIDUC.EXPECT().QRCode(mock.Anything, "session-key").Return(png, nil)

		rec := serve(e, withBankIDSession(jsonRequest(http.MethodGet, "/bankid/qr", "")))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("without session", func(t *testing.T) {
		e, bankIDUC := createTestBankIDHandler(t)

		bankIDUC.EXPECT().QRCode(mock.Anything, "").Return(nil, errors.WithStack(domainerrors.ErrBankIDNoSession))

		rec := serve(e, jsonRequest(http.MethodGet, "/bankid/qr", ""))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "BANKID_NO_SESSION", decode(t, rec).Error.Code)
	})
}
