// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "valunds/internal/delivery/context"
	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/domain/repository"
	"valunds/internal/domain/service"
	"valunds/internal/errors"
	"valunds/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accountRepo  repository.AccountRepository
	blacklist    repository.TokenBlacklist
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Blacklist    repository.TokenBlacklist
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		accountRepo:  params.AccountRepo,
		blacklist:    params.Blacklist,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue mints a fresh token pair for the account.
func (srv *sessionService) Issue(ctx context.Context, account *entity.Account) (*entity.TokenPair, error) {
	pair, err := srv.tokenService.GenerateTokenPair(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token pair", slog.Any("account_id", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return pair, nil
}

// Rotate revokes the presented refresh token before minting its replacement, so a crash
// in between leaves no valid refresh token behind.
func (srv *sessionService) Rotate(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	claims, err := srv.tokenService.ParseRefreshToken(refreshToken)
	if err != nil || claims.TokenID == "" {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	revoked, err := srv.blacklist.Revoke(ctx, claims.TokenID, claims.ExpiresAt.Sub(srv.now()))
	if err != nil {
		srv.log(ctx).Error("Failed to revoke refresh token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "revocation list unavailable")
	}
	if !revoked {
		srv.log(ctx).Warn("Refresh token replayed", slog.Any("account_id", claims.AccountID))

		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}
	if !account.Active {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	return srv.Issue(ctx, account)
}

// Revoke is idempotent. Tokens that fail verification are already unusable and are ignored.
func (srv *sessionService) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := srv.tokenService.ParseRefreshToken(refreshToken)
	if err != nil || claims.TokenID == "" {
		srv.log(ctx).Debug("Ignoring revocation of invalid refresh token")

		return nil
	}

	if _, err := srv.blacklist.Revoke(ctx, claims.TokenID, claims.ExpiresAt.Sub(srv.now())); err != nil {
		return errors.Wrap(domainerrors.ErrInternalError, "revocation list unavailable")
	}

	return nil
}

// VerifyAccess resolves an access token to its account. Deactivated accounts are rejected
// even while their access tokens have not expired.
func (srv *sessionService) VerifyAccess(ctx context.Context, accessToken string) (*entity.Account, error) {
	claims, err := srv.tokenService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}
	if !account.Active {
		return nil, errors.WithStack(domainerrors.ErrAccountInactive)
	}

	return account, nil
}
