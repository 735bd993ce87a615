package auth

import (
	"crypto/rand"
	"strings"
	"unicode"

	"valunds/config"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes.
const bcryptMaxPasswordBytes = 72

var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"sunshine":    {},
	"welcome1":    {},
	"letmein123":  {},
	"football":    {},
	"baseball":    {},
	"abc12345":    {},
	"admin123":    {},
	"valunds123":  {},
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
	// dummyHash is minted at the configured cost from a random secret that is discarded.
	dummyHash []byte
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{MinLength: 8, MaxLength: bcryptMaxPasswordBytes}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}
	if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxPasswordBytes {
		policy.MaxLength = bcryptMaxPasswordBytes
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte(rand.Text()), cost)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return &bcryptHasher{cost: cost, policy: policy, dummyHash: dummyHash}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// DummyCheck runs one comparison against the decoy hash and discards the result.
func (h *bcryptHasher) DummyCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}

// ValidatePasswordStrength applies the configured password policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}
	if len(password) > h.policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	allDigits := true
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r):
			hasSpecial = true
		}
		if !unicode.IsDigit(r) {
			allDigits = false
		}
	}

	if allDigits {
		return domainerrors.ErrPasswordStrength.WithDetails("password is entirely numeric")
	}
	if _, common := commonPasswords[strings.ToLower(password)]; common {
		return domainerrors.ErrPasswordForbiddenWords
	}

	switch {
	case h.policy.RequireUppercase && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithDetails("password needs an uppercase letter")
	case h.policy.RequireLowercase && !hasLower:
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a lowercase letter")
	case h.policy.RequireNumbers && !hasNumber:
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a number")
	case h.policy.RequireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a special character")
	}

	return nil
}
