package impl

import (
	"strings"

	"valunds/config"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/domain/security"
)

const minPhoneDigits = 8

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validatePhoneNumber accepts digits separated by spaces or dashes, optionally with a
// leading '+'. An empty number is allowed.
func validatePhoneNumber(phone string) error {
	if phone == "" {
		return nil
	}

	digits := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(phone)
	if len(digits) < minPhoneDigits {
		return domainerrors.ErrInvalidPhoneNumber
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return domainerrors.ErrInvalidPhoneNumber
		}
	}

	return nil
}

func newLockoutEngine(cfg *config.Config) *security.LockoutEngine {
	return security.NewLockoutEngine(security.LockoutPolicy{
		Threshold: cfg.Auth.Lockout.Threshold,
		Window:    cfg.Auth.Lockout.Window,
		Duration:  cfg.Auth.Lockout.Duration,
	})
}
