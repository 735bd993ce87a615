package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOneTimeToken(t *testing.T) {
	seen := make(map[string]struct{})

	for range 50 {
		token, err := GenerateOneTimeToken()
		require.NoError(t, err)
		assert.Len(t, token, OneTimeTokenLength)
		assert.Regexp(t, "^[a-zA-Z0-9]+$", token)

		_, dup := seen[token]
		assert.False(t, dup)
		seen[token] = struct{}{}
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	fresh := now.Add(-59 * time.Minute)
	stale := now.Add(-61 * time.Minute)

	assert.False(t, TokenExpired(&fresh, time.Hour, now))
	assert.True(t, TokenExpired(&stale, time.Hour, now))
	assert.True(t, TokenExpired(nil, time.Hour, now))
}

func TestHashIdentifier(t *testing.T) {
	a := HashIdentifier("salt-a", "199001011234")

	assert.Equal(t, a, HashIdentifier("salt-a", "199001011234"))
	assert.NotEqual(t, a, HashIdentifier("salt-b", "199001011234"))
	assert.Len(t, a, 64)
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", HashIdentifier("a", "bc"))
}
