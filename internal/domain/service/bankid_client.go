package service

import (
	"context"

	"valunds/internal/domain/entity"
	"valunds/internal/errors"
)

// Errors reported by BankIDClient.
var (
	// ErrBankIDUnavailable is returned when the provider cannot be reached or answers 5xx.
	ErrBankIDUnavailable = errors.New("bankid provider unavailable")
	// ErrBankIDRejected is returned when the provider answers 4xx.
	ErrBankIDRejected = errors.New("bankid provider rejected the request")
)

// BankIDClient talks to the BankID relying party API.
type BankIDClient interface {
	// Auth starts an order. personalNumber may be empty.
	Auth(ctx context.Context, endUserIP, personalNumber string) (*entity.BankIDOrder, error)

	// Collect polls an order once.
	Collect(ctx context.Context, orderRef string) (*entity.BankIDCollectResult, error)

	// Cancel aborts an order.
	Cancel(ctx context.Context, orderRef string) error
}
