package auth

import (
	"testing"
	"time"

	"valunds/config"
	"valunds/internal/domain/entity"
	"valunds/internal/domain/service"
	"valunds/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		JWT: &config.JWTConfig{
			AccessTTL:  30 * time.Minute,
			RefreshTTL: 30 * 24 * time.Hour,
			Issuer:     "valunds-test",
		},
	}
}

func TestJWTService_GenerateAndParseTokens(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	accountID := uuid.New()

	pair, err := tokenService.GenerateTokenPair(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), pair.AccessExpiresAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), pair.RefreshExpiresAt, 5*time.Second)

	accessClaims, err := tokenService.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, accessClaims.AccountID)
	assert.Equal(t, entity.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := tokenService.ParseRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, refreshClaims.AccountID)
	assert.Equal(t, entity.TokenTypeRefresh, refreshClaims.Type)
	assert.NotEmpty(t, refreshClaims.TokenID)
	assert.NotEqual(t, accessClaims.TokenID, refreshClaims.TokenID)
}

func TestJWTService_RefreshTokenDurationMatchesIssuedTokens(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.RefreshTTL = 7 * 24 * time.Hour
	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	pair, err := tokenService.GenerateTokenPair(uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, tokenService.RefreshTokenDuration())
	assert.WithinDuration(t, time.Now().Add(tokenService.RefreshTokenDuration()), pair.RefreshExpiresAt, 5*time.Second)
}

func TestJWTService_RejectsCrossedTokenTypes(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	pair, err := tokenService.GenerateTokenPair(uuid.New())
	require.NoError(t, err)

	_, err = tokenService.ParseAccessToken(pair.RefreshToken)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))

	_, err = tokenService.ParseRefreshToken(pair.AccessToken)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	for _, raw := range []string{"", "invalid.token.here", "not-a-jwt"} {
		_, err := tokenService.ParseAccessToken(raw)
		assert.True(t, errors.Is(err, service.ErrInvalidToken), raw)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-31 * time.Minute) }
	pair, err := impl.GenerateTokenPair(uuid.New())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ParseAccessToken(pair.AccessToken)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))

	_, err = impl.ParseRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims := &service.Claims{
		AccountID: uuid.New(),
		Type:      entity.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "valunds-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(unsigned)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.SecretKey.Refresh = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
