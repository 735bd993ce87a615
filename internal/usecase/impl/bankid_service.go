package impl

import (
	"context"
	"fmt"
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

const (
	bankIDSessionKeyLength = 48
	// visible prefix of the identifier hash in synthesized usernames
	bankIDHandleLength = 16
)

// bankIDService implements the BankIDUsecase interface.
type bankIDService struct {
	txManager   repository.TransactionManager
	sessions    repository.BankIDSessionStore
	client      service.BankIDClient
	qrCodes     service.QRCodeService
	tokens      usecase.SessionUsecase
	recorder    *loginRecorder
	notifier    *notifier
	salt        string
	emailDomain string
	sessionTTL  time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// BankIDServiceParams holds dependencies for BankIDService, injected by Fx.
type BankIDServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	Sessions    repository.BankIDSessionStore
	AttemptRepo repository.LoginAttemptRepository
	EventRepo   repository.SecurityEventRepository
	Client      service.BankIDClient
	QRCodes     service.QRCodeService
	Tokens      usecase.SessionUsecase
	Publisher   service.MailPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewBankIDService is the constructor for bankIDService.
func NewBankIDService(params BankIDServiceParams) usecase.BankIDUsecase {
	return &bankIDService{
		txManager: params.TxManager,
		sessions:  params.Sessions,
		client:    params.Client,
		qrCodes:   params.QRCodes,
		tokens:    params.Tokens,
		recorder: &loginRecorder{
			lockout:  newLockoutEngine(params.Config),
			lookback: params.Config.Auth.NewDeviceLookback,
		},
		notifier:    newNotifier(params.Config, params.Publisher, params.AttemptRepo, params.EventRepo, params.Logger),
		salt:        params.Config.BankID.Salt,
		emailDomain: params.Config.BankID.EmailDomain,
		sessionTTL:  params.Config.BankID.SessionTTL,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bankIDService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initiate starts an order and stores its correlation record under a fresh session key.
func (srv *bankIDService) Initiate(ctx context.Context, input *usecase.BankIDInitiateInput) (*usecase.BankIDInitiateOutput, error) {
	order, err := srv.client.Auth(ctx, input.Client.IPAddress, input.PersonalNumber)
	if err != nil {
		return nil, srv.providerError(ctx, "auth", err)
	}

	key, err := security.GenerateOpaqueKey(bankIDSessionKeyLength)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	session := &entity.BankIDSession{
		OrderRef:       order.OrderRef,
		AutoStartToken: order.AutoStartToken,
		QRStartToken:   order.QRStartToken,
		QRStartSecret:  order.QRStartSecret,
		EndUserIP:      input.Client.IPAddress,
		StartedAt:      srv.now(),
	}
	if err := srv.sessions.Save(ctx, key, session, srv.sessionTTL); err != nil {
		srv.log(ctx).Error("Failed to store BankID session", slog.Any("error", err))
		srv.cancelOrder(ctx, order.OrderRef)

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to store bankid session")
	}

	srv.log(ctx).Info("BankID order started", slog.String("order_ref", order.OrderRef))

	return &usecase.BankIDInitiateOutput{
		SessionKey:     key,
		OrderRef:       order.OrderRef,
		AutoStartToken: order.AutoStartToken,
		QRStartToken:   order.QRStartToken,
	}, nil
}

// Collect polls the order once. A pending order yields progress, a failed one clears the
// correlation record, and a complete one is consumed and turned into a login.
func (srv *bankIDService) Collect(ctx context.Context, sessionKey string, client entity.ClientSignature) (*usecase.BankIDCollectOutput, error) {
	session, err := srv.loadSession(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	result, err := srv.client.Collect(ctx, session.OrderRef)
	if err != nil {
		return nil, srv.providerError(ctx, "collect", err)
	}

	switch result.Status {
	case entity.BankIDStatusPending:
		return &usecase.BankIDCollectOutput{Progress: &entity.BankIDProgress{
			Status:   entity.BankIDStatusPending,
			HintCode: result.HintCode,
			Message:  security.BankIDHintMessage(result.HintCode),
		}}, nil

	case entity.BankIDStatusFailed:
		srv.forget(ctx, sessionKey)
		srv.log(ctx).Info("BankID order failed", slog.String("hint_code", result.HintCode))
		if security.BankIDCancelledHint(result.HintCode) {
			return nil, errors.WithStack(domainerrors.ErrBankIDCancelled)
		}

		return nil, errors.WithStack(domainerrors.ErrBankIDFailed)

	case entity.BankIDStatusComplete:
		if _, err := srv.sessions.Take(ctx, sessionKey); err != nil {
			// a concurrent collect already completed this order
			if errors.Is(err, repository.ErrBankIDSessionNotFound) {
				return nil, errors.WithStack(domainerrors.ErrBankIDNoSession)
			}

			return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to clear bankid session")
		}

		authResult, err := srv.completeLogin(ctx, result.CompletionUser, client)
		if err != nil {
			return nil, err
		}

		return &usecase.BankIDCollectOutput{Result: authResult}, nil

	default:
		srv.log(ctx).Error("BankID returned unknown status", slog.String("status", string(result.Status)))

		return nil, errors.WithStack(domainerrors.ErrProviderUnavailable)
	}
}

// Cancel aborts the order best-effort and always drops the correlation record.
func (srv *bankIDService) Cancel(ctx context.Context, sessionKey string) error {
	if sessionKey == "" {
		return nil
	}

	session, err := srv.sessions.Get(ctx, sessionKey)
	switch {
	case err == nil:
		srv.cancelOrder(ctx, session.OrderRef)
	case !errors.Is(err, repository.ErrBankIDSessionNotFound):
		srv.log(ctx).Warn("Failed to read BankID session on cancel", slog.Any("error", err))
	}

	srv.forget(ctx, sessionKey)

	return nil
}

// QRCode renders the animated QR frame for the current second of the order.
func (srv *bankIDService) QRCode(ctx context.Context, sessionKey string) ([]byte, error) {
	session, err := srv.loadSession(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if session.QRStartToken == "" || session.QRStartSecret == "" {
		return nil, errors.WithStack(domainerrors.ErrBankIDNoSession)
	}

	seconds := int64(srv.now().Sub(session.StartedAt) / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	png, err := srv.qrCodes.GeneratePNG(security.BankIDQRData(session.QRStartToken, session.QRStartSecret, seconds))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func (srv *bankIDService) loadSession(ctx context.Context, sessionKey string) (*entity.BankIDSession, error) {
	if sessionKey == "" {
		return nil, errors.WithStack(domainerrors.ErrBankIDNoSession)
	}

	session, err := srv.sessions.Get(ctx, sessionKey)
	if errors.Is(err, repository.ErrBankIDSessionNotFound) {
		return nil, errors.WithStack(domainerrors.ErrBankIDNoSession)
	}
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to read bankid session")
	}

	return session, nil
}

// completeLogin links the verified identity to an account by its salted hash. The raw
// personal number is never logged or stored.
func (srv *bankIDService) completeLogin(ctx context.Context, user *entity.BankIDUser, client entity.ClientSignature) (*entity.AuthResult, error) {
	hash := security.HashIdentifier(srv.salt, user.PersonalNumber)
	now := srv.now()

	var (
		account *entity.Account
		notices []notice
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts := repoFactory.NewAccountRepository()

		found, err := accounts.FindByBankIDHash(ctx, hash)
		switch {
		case errors.Is(err, repository.ErrAccountNotFound):
			found, err = srv.createAccount(ctx, accounts, hash, user, now)
			if err != nil {
				return err
			}
		case err != nil:
			return errors.Wrap(err, "failed to find account")
		default:
			found.FirstName = user.GivenName
			found.LastName = user.Surname
			found.BankIDVerified = true
			found.BankIDVerifiedAt = &now
			found.EmailVerified = true
			found.Active = true
			found.DeactivatedAt = nil
		}

		notices, err = srv.recorder.recordSuccess(ctx, repoFactory, found, client, now)
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

	tokens, err := srv.tokens.Issue(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("BankID login succeeded", slog.Any("account_id", account.ID))

	return &entity.AuthResult{Account: account, Tokens: tokens}, nil
}

func (srv *bankIDService) createAccount(ctx context.Context, accounts repository.AccountRepository, hash string,
	user *entity.BankIDUser, now time.Time,
) (*entity.Account, error) {
	handle := "bankid_" + hash[:bankIDHandleLength]
	stored := hash

	account := &entity.Account{
		ID:                   uuid.New(),
		Email:                fmt.Sprintf("%s@%s", handle, srv.emailDomain),
		Username:             handle,
		FirstName:            user.GivenName,
		LastName:             user.Surname,
		UserType:             entity.UserTypeFreelancer,
		Country:              defaultCountry,
		EmailVerified:        true,
		Active:               true,
		BankIDVerified:       true,
		BankIDIdentifierHash: &stored,
		BankIDVerifiedAt:     &now,
		CreatedAt:            now,
	}

	if err := accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateBankIDIdentity) || errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.WithStack(domainerrors.ErrBankIDIdentityConflict)
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created from BankID identity", slog.Any("account_id", account.ID))

	return account, nil
}

func (srv *bankIDService) cancelOrder(ctx context.Context, orderRef string) {
	if err := srv.client.Cancel(ctx, orderRef); err != nil {
		srv.log(ctx).Warn("BankID cancel failed", slog.String("order_ref", orderRef), slog.Any("error", err))
	}
}

func (srv *bankIDService) forget(ctx context.Context, sessionKey string) {
	if err := srv.sessions.Delete(ctx, sessionKey); err != nil {
		srv.log(ctx).Warn("Failed to delete BankID session", slog.Any("error", err))
	}
}

// providerError maps client failures to caller-facing outcomes. Detail stays in the log.
func (srv *bankIDService) providerError(ctx context.Context, call string, err error) error {
	srv.log(ctx).Error("BankID call failed", slog.String("call", call), slog.Any("error", err))

	if errors.Is(err, service.ErrBankIDRejected) {
		return errors.WithStack(domainerrors.ErrBankIDFailed)
	}

	return errors.WithStack(domainerrors.ErrProviderUnavailable)
}
