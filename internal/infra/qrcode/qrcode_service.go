// Package qrcode renders BankID animated QR frames as PNG images.
package qrcode

import (
	"strings"

	"valunds/config"
	"valunds/internal/domain/service"
	"valunds/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:  size,
		level: recoveryLevel(level),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePNG encodes data as a square PNG of the configured size.
func (s *qrcodeService) GeneratePNG(data string) ([]byte, error) {
	if data == "" {
		return nil, errors.New("qr code data is empty")
	}

	code, err := qrcode.New(data, s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}
