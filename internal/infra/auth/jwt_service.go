// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"valunds/config"
	"valunds/internal/domain/entity"
	"valunds/internal/domain/service"
	"valunds/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	issuer        string
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.JWT == nil {
		return nil, errors.New("jwt lifetimes must be configured")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.JWT.AccessTTL,
		refreshTTL:    cfg.JWT.RefreshTTL,
		issuer:        cfg.JWT.Issuer,
		now:           time.Now,
	}, nil
}

// GenerateTokenPair creates a new access token and refresh token for an account.
func (s *jwtService) GenerateTokenPair(accountID uuid.UUID) (*entity.TokenPair, error) {
	now := s.now()

	accessToken, accessExp, err := s.generateToken(accountID, entity.TokenTypeAccess, now, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExp, err := s.generateToken(accountID, entity.TokenTypeRefresh, now, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// ParseAccessToken validates an access token.
func (s *jwtService) ParseAccessToken(tokenString string) (*entity.TokenClaims, error) {
	return s.parse(tokenString, s.accessSecret, entity.TokenTypeAccess)
}

// ParseRefreshToken validates a refresh token.
func (s *jwtService) ParseRefreshToken(tokenString string) (*entity.TokenClaims, error) {
	return s.parse(tokenString, s.refreshSecret, entity.TokenTypeRefresh)
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) parse(tokenString string, secret []byte, want entity.TokenType) (*entity.TokenClaims, error) {
	if tokenString == "" {
		return nil, service.ErrInvalidToken
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return secret, nil
	}, options...)
	if err != nil || !token.Valid {
		return nil, errors.Wrap(service.ErrInvalidToken, errorText(err))
	}

	if claims.Type != want || claims.AccountID == uuid.Nil || claims.ID == "" {
		return nil, service.ErrInvalidToken
	}

	result := &entity.TokenClaims{
		AccountID: claims.AccountID,
		TokenID:   claims.ID,
		Type:      claims.Type,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(
	accountID uuid.UUID,
	tokenType entity.TokenType,
	now time.Time,
	ttl time.Duration,
	secret []byte,
) (string, time.Time, error) {
	expiresAt := now.Add(ttl)
	claims := &service.Claims{
		AccountID: accountID,
		Type:      tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, errors.Wrapf(err, "sign %s token", tokenType)
	}

	return signed, expiresAt, nil
}

func errorText(err error) string {
	if err == nil {
		return "token not valid"
	}

	return err.Error()
}
