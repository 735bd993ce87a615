package security

import (
	"crypto/rand"
	"time"

	"valunds/internal/errors"
)

const (
	// OneTimeTokenLength is the length of verification and reset tokens.
	OneTimeTokenLength = 64

	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// largest multiple of len(tokenAlphabet) that fits in a byte
	tokenRejectAbove = 248
)

// GenerateOneTimeToken returns a uniformly random alphanumeric token of OneTimeTokenLength.
func GenerateOneTimeToken() (string, error) {
	return randomString(OneTimeTokenLength)
}

// GenerateOpaqueKey returns a random alphanumeric key of the given length, used for
// OAuth state values and BankID session keys.
func GenerateOpaqueKey(length int) (string, error) {
	return randomString(length)
}

func randomString(length int) (string, error) {
	out := make([]byte, 0, length)
	buf := make([]byte, length+length/4)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Wrap(err, "read random bytes")
		}

		for _, b := range buf {
			if b >= tokenRejectAbove {
				continue
			}
			out = append(out, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}

// TokenExpired reports whether a token issued at issuedAt is past ttl at now.
// A missing issue time counts as expired.
func TokenExpired(issuedAt *time.Time, ttl time.Duration, now time.Time) bool {
	if issuedAt == nil {
		return true
	}

	return now.Sub(*issuedAt) > ttl
}
