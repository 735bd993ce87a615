package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"valunds/config"
	deliverycontext "valunds/internal/delivery/context"
	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/domain/repository"
	"valunds/internal/domain/security"
	"valunds/internal/domain/service"
	"valunds/internal/errors"
	"valunds/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const oauthStateLength = 32

// oauthService implements the OAuthUsecase interface.
type oauthService struct {
	txManager  repository.TransactionManager
	stateStore repository.OAuthStateStore
	provider   service.OAuthService
	sessions   usecase.SessionUsecase
	recorder   *loginRecorder
	notifier   *notifier
	stateTTL   time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

// OAuthServiceParams holds dependencies for OAuthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	StateStore  repository.OAuthStateStore
	AttemptRepo repository.LoginAttemptRepository
	EventRepo   repository.SecurityEventRepository
	Provider    service.OAuthService
	Sessions    usecase.SessionUsecase
	Publisher   service.MailPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	return &oauthService{
		txManager:  params.TxManager,
		stateStore: params.StateStore,
		provider:   params.Provider,
		sessions:   params.Sessions,
		recorder: &loginRecorder{
			lockout:  newLockoutEngine(params.Config),
			lookback: params.Config.Auth.NewDeviceLookback,
		},
		notifier: newNotifier(params.Config, params.Publisher, params.AttemptRepo, params.EventRepo, params.Logger),
		stateTTL: params.Config.GoogleOAuth.StateTTL,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLogin stores a single-use state value and returns the consent URL carrying it.
func (srv *oauthService) BeginLogin(ctx context.Context) (string, error) {
	state, err := security.GenerateOpaqueKey(oauthStateLength)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	if err := srv.stateStore.Save(ctx, state, srv.stateTTL); err != nil {
		srv.log(ctx).Error("Failed to store OAuth state", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrInternalError, "failed to store oauth state")
	}

	return srv.provider.BuildAuthorizationURL(state), nil
}

// CompleteLogin walks the callback through state check, code exchange, profile fetch and
// account resolution. Provider error detail is logged, never returned.
func (srv *oauthService) CompleteLogin(ctx context.Context, input *usecase.OAuthCallbackInput) (*entity.AuthResult, error) {
	if input.Error != "" {
		srv.log(ctx).Info("OAuth consent declined", slog.String("provider_error", input.Error))

		return nil, errors.WithStack(domainerrors.ErrOAuthCancelled)
	}
	if input.State == "" || input.Code == "" {
		return nil, errors.WithStack(domainerrors.ErrOAuthStateInvalid)
	}

	consumed, err := srv.stateStore.Consume(ctx, input.State)
	if err != nil {
		srv.log(ctx).Error("Failed to consume OAuth state", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrOAuthFailed)
	}
	if !consumed {
		return nil, errors.WithStack(domainerrors.ErrOAuthStateInvalid)
	}

	providerToken, err := srv.provider.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrOAuthFailed)
	}

	profile, err := srv.provider.FetchProfile(ctx, providerToken)
	if err != nil {
		srv.log(ctx).Warn("OAuth profile fetch failed", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrOAuthFailed)
	}

	email := normalizeEmail(profile.Email)
	if email == "" {
		return nil, errors.WithStack(domainerrors.ErrOAuthNoEmail)
	}

	now := srv.now()
	var (
		account *entity.Account
		notices []notice
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.resolveAccount(ctx, repoFactory.NewAccountRepository(), email, profile, now)
		if err != nil {
			return err
		}

		notices, err = srv.recorder.recordSuccess(ctx, repoFactory, found, input.Client, now)
		if err != nil {
			return err
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifier.dispatch(ctx, notices...)

	tokens, err := srv.sessions.Issue(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("OAuth login succeeded", slog.Any("account_id", account.ID))

	return &entity.AuthResult{Account: account, Tokens: tokens}, nil
}

// resolveAccount finds the account by email or creates a verified one. Any inactive
// account is refused, whether it is a registration still waiting for its link or a
// deleted one. An active account with an unconfirmed address change is confirmed,
// since the provider vouches for the address.
func (srv *oauthService) resolveAccount(ctx context.Context, accounts repository.AccountRepository, email string,
	profile *entity.OAuthProfile, now time.Time,
) (*entity.Account, error) {
	found, err := accounts.FindByEmailForUpdate(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		created := &entity.Account{
			ID:            uuid.New(),
			Email:         email,
			Username:      email,
			FirstName:     strings.TrimSpace(profile.GivenName),
			LastName:      strings.TrimSpace(profile.FamilyName),
			UserType:      entity.UserTypeFreelancer,
			Country:       defaultCountry,
			EmailVerified: true,
			Active:        true,
			CreatedAt:     now,
		}
		if err := accounts.Create(ctx, created); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return nil, errors.WithStack(domainerrors.ErrEmailAlreadyExists)
			}

			return nil, errors.Wrap(err, "failed to create account")
		}

		srv.log(ctx).Info("Account created from OAuth profile", slog.Any("account_id", created.ID))

		return created, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	if !found.Active {
		return nil, errors.WithStack(domainerrors.ErrAccountInactive)
	}
	if !found.EmailVerified {
		// Active but unverified means a pending address change the provider has now confirmed.
		found.EmailVerified = true
		found.VerificationToken = nil
		found.VerificationTokenIssuedAt = nil
	}

	return found, nil
}
