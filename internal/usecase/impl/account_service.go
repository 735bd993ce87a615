package impl

import (
	"context"
	"log/slog"
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager       repository.TransactionManager
	accountRepo     repository.AccountRepository
	attemptRepo     repository.LoginAttemptRepository
	eventRepo       repository.SecurityEventRepository
	hasher          service.PasswordHasher
	sessions        usecase.SessionUsecase
	notifier        *notifier
	verificationTTL time.Duration
	historyLimit    int
	logger          *slog.Logger
	now             func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
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

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:       params.TxManager,
		accountRepo:     params.AccountRepo,
		attemptRepo:     params.AttemptRepo,
		eventRepo:       params.EventRepo,
		hasher:          params.Hasher,
		sessions:        params.Sessions,
		notifier:        newNotifier(params.Config, params.Publisher, params.AttemptRepo, params.EventRepo, params.Logger),
		verificationTTL: params.Config.Auth.VerificationTTL,
		historyLimit:    params.Config.Auth.HistoryLimit,
		logger:          params.Logger,
		now:             time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAccount returns the account or ErrAccountNotFound.
func (srv *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.WithStack(domainerrors.ErrAccountNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// UpdateProfile applies the non-nil profile fields.
func (srv *accountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, update *entity.ProfileUpdate) (*entity.Account, error) {
	if update.PhoneNumber != nil {
		if err := validatePhoneNumber(*update.PhoneNumber); err != nil {
			return nil, err
		}
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts := repoFactory.NewAccountRepository()

		found, err := lockAccount(ctx, accounts, accountID)
		if err != nil {
			return err
		}

		update.Apply(found)
		if err := accounts.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// ChangePassword replaces the password after checking the current one, revokes the
// caller's refresh token and hands back a fresh pair.
func (srv *accountService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*entity.TokenPair, error) {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return nil, err
	}

	var (
		account *entity.Account
		pending []notice
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts := repoFactory.NewAccountRepository()

		found, err := lockAccount(ctx, accounts, input.AccountID)
		if err != nil {
			return err
		}
		if found.PasswordHash == "" || !srv.hasher.Check(input.CurrentPassword, found.PasswordHash) {
			return errors.WithStack(domainerrors.ErrWrongCurrentPassword)
		}

		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return err
		}
		found.PasswordHash = hash
		if err := accounts.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		event := newSecurityEvent(found.ID, entity.SecurityEventPasswordChanged, input.Client, srv.now(), map[string]any{
			"method": "change",
		})
		if err := repoFactory.NewSecurityEventRepository().Create(ctx, event); err != nil {
			return errors.Wrap(err, "failed to record security event")
		}

		pending = append(pending, eventNotice(entity.MailPasswordChanged, found.Email, found, event, nil))
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifier.dispatch(ctx, pending...)

	if input.RefreshToken != "" {
		if err := srv.sessions.Revoke(ctx, input.RefreshToken); err != nil {
			srv.log(ctx).Warn("Failed to revoke refresh token after password change", slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Password changed", slog.Any("account_id", account.ID))

	return srv.sessions.Issue(ctx, account)
}

// ChangeEmail moves the account to a new address that must be verified again. The old
// address is told about the change.
func (srv *accountService) ChangeEmail(ctx context.Context, input *usecase.ChangeEmailInput) error {
	newEmail := normalizeEmail(input.NewEmail)
	if newEmail == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	var pending []notice
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts := repoFactory.NewAccountRepository()

		found, err := lockAccount(ctx, accounts, input.AccountID)
		if err != nil {
			return err
		}
		if found.Email == newEmail {
			return nil
		}

		token, err := security.GenerateOneTimeToken()
		if err != nil {
			return errors.Wrap(domainerrors.ErrInternalError, err.Error())
		}

		now := srv.now()
		oldEmail := found.Email
		found.Email = newEmail
		if found.Username == oldEmail {
			found.Username = newEmail
		}
		found.EmailVerified = false
		found.VerificationToken = &token
		found.VerificationTokenIssuedAt = &now
		if err := accounts.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.WithStack(domainerrors.ErrEmailAlreadyExists)
			}

			return errors.Wrap(err, "failed to update email")
		}

		event := newSecurityEvent(found.ID, entity.SecurityEventEmailChanged, input.Client, now, map[string]any{
			"old_email": oldEmail,
			"new_email": newEmail,
		})
		if err := repoFactory.NewSecurityEventRepository().Create(ctx, event); err != nil {
			return errors.Wrap(err, "failed to record security event")
		}

		pending = append(pending,
			srv.notifier.verifyEmailNotice(found, token, srv.verificationTTL),
			eventNotice(entity.MailEmailChanged, oldEmail, found, event, map[string]string{
				"old_email": oldEmail,
				"new_email": newEmail,
			}),
		)

		return nil
	})
	if err != nil {
		return err
	}

	srv.notifier.dispatch(ctx, pending...)

	return nil
}

// DeleteAccount deactivates the account after a password check and revokes the caller's
// refresh token. Outstanding verification and reset links die with it, so neither can
// bring the account back. Login history and security events are kept.
func (srv *accountService) DeleteAccount(ctx context.Context, input *usecase.DeleteAccountInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts := repoFactory.NewAccountRepository()

		found, err := lockAccount(ctx, accounts, input.AccountID)
		if err != nil {
			return err
		}
		if found.PasswordHash == "" || !srv.hasher.Check(input.Password, found.PasswordHash) {
			return errors.WithStack(domainerrors.ErrPasswordIncorrect)
		}

		now := srv.now()
		found.Active = false
		found.DeactivatedAt = &now
		found.VerificationToken = nil
		found.VerificationTokenIssuedAt = nil
		found.PasswordResetToken = nil
		found.PasswordResetTokenIssued = nil
		if err := accounts.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to deactivate account")
		}

		return nil
	})
	if err != nil {
		return err
	}

	if input.RefreshToken != "" {
		if err := srv.sessions.Revoke(ctx, input.RefreshToken); err != nil {
			srv.log(ctx).Warn("Failed to revoke refresh token after account deletion", slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Account deactivated", slog.Any("account_id", input.AccountID))

	return nil
}

// LoginHistory returns the most recent login attempts, newest first.
func (srv *accountService) LoginHistory(ctx context.Context, accountID uuid.UUID) ([]*entity.LoginAttempt, error) {
	attempts, err := srv.attemptRepo.ListRecent(ctx, accountID, srv.historyLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list login attempts")
	}

	return attempts, nil
}

// SecurityEvents returns the most recent security events, newest first.
func (srv *accountService) SecurityEvents(ctx context.Context, accountID uuid.UUID) ([]*entity.SecurityEvent, error) {
	events, err := srv.eventRepo.ListRecent(ctx, accountID, srv.historyLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list security events")
	}

	return events, nil
}

func lockAccount(ctx context.Context, accounts repository.AccountRepository, accountID uuid.UUID) (*entity.Account, error) {
	found, err := accounts.FindByIDForUpdate(ctx, accountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.WithStack(domainerrors.ErrAccountNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return found, nil
}
