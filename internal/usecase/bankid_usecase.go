package usecase

import (
	"context"

	"valunds/internal/domain/entity"
)

// BankIDInitiateInput defines the data required to start a BankID order.
type BankIDInitiateInput struct {
	PersonalNumber string // optional
	Client         entity.ClientSignature
}

// BankIDInitiateOutput is handed back to the caller after an order was started.
// SessionKey is the correlation key for later collect, cancel and QR calls.
type BankIDInitiateOutput struct {
	SessionKey     string
	OrderRef       string
	AutoStartToken string
	QRStartToken   string
}

// BankIDCollectOutput holds either the progress of a pending order or the completed login.
type BankIDCollectOutput struct {
	Progress *entity.BankIDProgress
	Result   *entity.AuthResult
}

// BankIDUsecase defines the BankID polling flow.
type BankIDUsecase interface {
	Initiate(ctx context.Context, input *BankIDInitiateInput) (*BankIDInitiateOutput, error)
	Collect(ctx context.Context, sessionKey string, client entity.ClientSignature) (*BankIDCollectOutput, error)
	Cancel(ctx context.Context, sessionKey string) error
	QRCode(ctx context.Context, sessionKey string) ([]byte, error)
}
