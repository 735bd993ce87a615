package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePNG encodes data as a PNG QR code
	GeneratePNG(data string) ([]byte, error)
}
