package security

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashIdentifier returns hex(SHA-256(salt || identifier)). It is used for national identity
// numbers so the raw value never reaches storage or logs.
func HashIdentifier(salt, identifier string) string {
	sum := sha256.Sum256([]byte(salt + identifier))

	return hex.EncodeToString(sum[:])
}
