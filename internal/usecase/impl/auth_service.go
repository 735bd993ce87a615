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

const defaultCountry = "Sweden"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager       repository.TransactionManager
	accountRepo     repository.AccountRepository
	hasher          service.PasswordHasher
	sessions        usecase.SessionUsecase
	lockout         *security.LockoutEngine
	recorder        *loginRecorder
	notifier        *notifier
	verificationTTL time.Duration
	resetTTL        time.Duration
	logger          *slog.Logger
	now             func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	AttemptRepo repository.LoginAttemptRepository
	EventRepo   repository.SecurityEventRepository
	Hasher      service.PasswordHasher
	Sessions    usecase.SessionUsecase
	Publisher   service.MailPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	lockout := newLockoutEngine(params.Config)

	return &authService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		sessions:    params.Sessions,
		lockout:     lockout,
		recorder: &loginRecorder{
			lockout:  lockout,
			lookback: params.Config.Auth.NewDeviceLookback,
		},
		notifier:        newNotifier(params.Config, params.Publisher, params.AttemptRepo, params.EventRepo, params.Logger),
		verificationTTL: params.Config.Auth.VerificationTTL,
		resetTTL:        params.Config.Auth.ResetTTL,
		logger:          params.Logger,
		now:             time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive, unverified account and queues its verification mail.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if input.Password != input.PasswordConfirm {
		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}
	userType, ok := entity.ParseUserType(input.UserType)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown user_type")
	}
	if err := validatePhoneNumber(input.PhoneNumber); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	token, err := security.GenerateOneTimeToken()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	now := srv.now()
	country := strings.TrimSpace(input.Country)
	if country == "" {
		country = defaultCountry
	}

	account := &entity.Account{
		ID:                        uuid.New(),
		Email:                     email,
		Username:                  email,
		PasswordHash:              hash,
		FirstName:                 strings.TrimSpace(input.FirstName),
		LastName:                  strings.TrimSpace(input.LastName),
		UserType:                  userType,
		PhoneNumber:               input.PhoneNumber,
		Address:                   input.Address,
		City:                      input.City,
		Postcode:                  input.Postcode,
		Country:                   country,
		VerificationToken:         &token,
		VerificationTokenIssuedAt: &now,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.WithStack(domainerrors.ErrEmailAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered", slog.Any("account_id", account.ID), slog.String("user_type", userType.String()))
	srv.notifier.dispatch(ctx, srv.notifier.verifyEmailNotice(account, token, srv.verificationTTL))

	return account, nil
}

// Login authenticates with email and password. Failure accounting is committed even
// though the call itself fails, so the transaction body reports the outcome separately.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.AuthResult, error) {
	email := normalizeEmail(input.Email)
	now := srv.now()

	var (
		account *entity.Account
		outcome error
		notices []notice
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts := repoFactory.NewAccountRepository()

		found, err := accounts.FindByEmailForUpdate(ctx, email)
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.hasher.DummyCheck(input.Password)
			outcome = errors.WithStack(domainerrors.ErrInvalidCredentials)

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}

		changed, err := srv.lockout.CheckLocked(found, now)
		if err != nil {
			outcome = err

			return nil
		}
		if changed {
			if err := accounts.Update(ctx, found); err != nil {
				return errors.Wrap(err, "failed to clear expired lock")
			}
		}

		if !srv.checkPassword(input.Password, found.PasswordHash) {
			notices, err = srv.recorder.recordFailure(ctx, repoFactory, found, input.Client, now)
			if err != nil {
				return err
			}
			outcome = errors.WithStack(domainerrors.ErrInvalidCredentials)

			return nil
		}

		if !found.EmailVerified {
			outcome = errors.WithStack(domainerrors.ErrEmailNotVerified)

			return nil
		}
		if !found.Active {
			outcome = errors.WithStack(domainerrors.ErrAccountInactive)

			return nil
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

	if outcome != nil {
		srv.log(ctx).Info("Login rejected", slog.String("reason", outcome.Error()))

		return nil, outcome
	}

	tokens, err := srv.sessions.Issue(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("account_id", account.ID))

	return &entity.AuthResult{Account: account, Tokens: tokens}, nil
}

// checkPassword always pays one bcrypt comparison, also for federated accounts without a password.
func (srv *authService) checkPassword(password, hash string) bool {
	if hash == "" {
		srv.hasher.DummyCheck(password)

		return false
	}

	return srv.hasher.Check(password, hash)
}

// VerifyEmail consumes a verification token. The token is cleared in the same write
// that activates the account, so a replay finds nothing.
func (srv *authService) VerifyEmail(ctx context.Context, token string) (*entity.AuthResult, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingToken)
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts := repoFactory.NewAccountRepository()

		found, err := accounts.FindByVerificationToken(ctx, token)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.WithStack(domainerrors.ErrInvalidVerificationToken)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}

		if found.EmailVerified {
			return errors.WithStack(domainerrors.ErrEmailAlreadyVerified)
		}
		if found.DeactivatedAt != nil {
			return errors.WithStack(domainerrors.ErrAccountInactive)
		}
		if security.TokenExpired(found.VerificationTokenIssuedAt, srv.verificationTTL, srv.now()) {
			return errors.WithStack(domainerrors.ErrVerificationExpired)
		}

		found.EmailVerified = true
		found.Active = true
		found.VerificationToken = nil
		found.VerificationTokenIssuedAt = nil
		if err := accounts.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to activate account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Email verified", slog.Any("account_id", account.ID))

	tokens, err := srv.sessions.Issue(ctx, account)
	if err != nil {
		return nil, err
	}

	return &entity.AuthResult{Account: account, Tokens: tokens}, nil
}

// ResendVerification replaces any outstanding verification token. The result never
// reveals whether the email belongs to an account.
func (srv *authService) ResendVerification(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	var pending []notice
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts := repoFactory.NewAccountRepository()

		found, err := accounts.FindByEmailForUpdate(ctx, email)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}
		if found.EmailVerified || found.DeactivatedAt != nil {
			return nil
		}

		token, err := security.GenerateOneTimeToken()
		if err != nil {
			return errors.Wrap(domainerrors.ErrInternalError, err.Error())
		}
		now := srv.now()
		found.VerificationToken = &token
		found.VerificationTokenIssuedAt = &now
		if err := accounts.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to store verification token")
		}

		pending = append(pending, srv.notifier.verifyEmailNotice(found, token, srv.verificationTTL))

		return nil
	})
	if err != nil {
		return err
	}

	srv.notifier.dispatch(ctx, pending...)

	return nil
}

// RequestPasswordReset issues a reset token, records RECOVERY_ATTEMPTED and notifies the
// owner. Unknown emails succeed silently.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string, client entity.ClientSignature) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	var pending []notice
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts := repoFactory.NewAccountRepository()

		found, err := accounts.FindByEmailForUpdate(ctx, email)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}

		token, err := security.GenerateOneTimeToken()
		if err != nil {
			return errors.Wrap(domainerrors.ErrInternalError, err.Error())
		}
		now := srv.now()
		found.PasswordResetToken = &token
		found.PasswordResetTokenIssued = &now
		if err := accounts.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to store reset token")
		}

		event := newSecurityEvent(found.ID, entity.SecurityEventRecoveryAttempted, client, now, nil)
		if err := repoFactory.NewSecurityEventRepository().Create(ctx, event); err != nil {
			return errors.Wrap(err, "failed to record security event")
		}

		pending = append(pending,
			srv.notifier.resetPasswordNotice(found, token, srv.resetTTL),
			eventNotice(entity.MailPasswordResetRequested, found.Email, found, event, nil),
		)

		return nil
	})
	if err != nil {
		return err
	}

	srv.notifier.dispatch(ctx, pending...)

	return nil
}

// ResetPassword consumes a reset token, sets the new password and lifts any lockout.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if input.Token == "" || input.Password == "" {
		return errors.WithStack(domainerrors.ErrTokenAndPasswordRequired)
	}

	var pending []notice
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts := repoFactory.NewAccountRepository()

		found, err := accounts.FindByPasswordResetToken(ctx, input.Token)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.WithStack(domainerrors.ErrInvalidResetToken)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}

		now := srv.now()
		if security.TokenExpired(found.PasswordResetTokenIssued, srv.resetTTL, now) {
			return errors.WithStack(domainerrors.ErrResetTokenExpired)
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return err
		}

		found.PasswordHash = hash
		found.PasswordResetToken = nil
		found.PasswordResetTokenIssued = nil
		srv.lockout.Reset(found)
		if err := accounts.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		event := newSecurityEvent(found.ID, entity.SecurityEventPasswordChanged, input.Client, now, map[string]any{
			"method": "reset",
		})
		if err := repoFactory.NewSecurityEventRepository().Create(ctx, event); err != nil {
			return errors.Wrap(err, "failed to record security event")
		}

		pending = append(pending, eventNotice(entity.MailPasswordChanged, found.Email, found, event, nil))

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset completed")
	srv.notifier.dispatch(ctx, pending...)

	return nil
}
