package impl

import (
	"context"
	"testing"
	"time"

	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/domain/repository"
	"valunds/internal/errors"
	mockRepo "valunds/internal/mocks/repository"
	mockSvc "valunds/internal/mocks/service"
	mockUC "valunds/internal/mocks/usecase"
	"valunds/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service   *accountService
	txManager *mockRepo.MockTransactionManager
	accounts  *mockRepo.MockAccountRepository
	attempts  *mockRepo.MockLoginAttemptRepository
	events    *mockRepo.MockSecurityEventRepository
	hasher    *mockSvc.MockPasswordHasher
	sessions  *mockUC.MockSessionUsecase
	publisher *mockSvc.MockMailPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		accounts:  mockRepo.NewMockAccountRepository(t),
		attempts:  mockRepo.NewMockLoginAttemptRepository(t),
		events:    mockRepo.NewMockSecurityEventRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		sessions:  mockUC.NewMockSessionUsecase(t),
		publisher: mockSvc.NewMockMailPublisher(t),
	}

	fx.service = NewAccountService(AccountServiceParams{
		TxManager:   fx.txManager,
		AccountRepo: fx.accounts,
		AttemptRepo: fx.attempts,
		EventRepo:   fx.events,
		Hasher:      fx.hasher,
		Sessions:    fx.sessions,
		Publisher:   fx.publisher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*accountService)
	fx.service.now = func() time.Time { return fixedNow }

	return fx
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.accounts.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.GetAccount(ctx, accountID)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_UpdateProfile_AppliesOnlyProvidedFields(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount()
	account.City = "Vimmerby"

	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	repos.accounts.EXPECT().Update(ctx, account).Return(nil)

	got, err := fx.service.UpdateProfile(ctx, account.ID, &entity.ProfileUpdate{
		FirstName:   strPtr("Karin"),
		PhoneNumber: strPtr("+46701234567"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Karin", got.FirstName)
	assert.Equal(t, "Lindgren", got.LastName)
	assert.Equal(t, "Vimmerby", got.City)
	assert.Equal(t, "+46701234567", got.PhoneNumber)
}

func TestAccountService_UpdateProfile_RejectsShortPhoneNumber(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &entity.ProfileUpdate{
		PhoneNumber: strPtr("12345"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhoneNumber)
}

func TestAccountService_ChangePassword_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount()
	pair := newTestTokenPair()

	fx.hasher.EXPECT().ValidatePasswordStrength("Brand-New-Password-2").Return(nil)
	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("Secret-Password-1", "hashed").Return(true)
	fx.hasher.EXPECT().Hash("Brand-New-Password-2").Return("new-hash", nil)
	repos.accounts.EXPECT().Update(ctx, account).Return(nil)
	repos.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(event *entity.SecurityEvent) bool {
			return event.Kind == entity.SecurityEventPasswordChanged && event.Details["method"] == "change"
		})).
		Return(nil)
	fx.events.EXPECT().MarkNotified(ctx, mock.Anything).Return(true, nil)
	fx.publisher.EXPECT().PublishMail(ctx, mailWithTemplate(entity.MailPasswordChanged)).Return(nil)
	fx.sessions.EXPECT().Revoke(ctx, "old-refresh").Return(nil)
	fx.sessions.EXPECT().Issue(ctx, account).Return(pair, nil)

	got, err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       account.ID,
		CurrentPassword: "Secret-Password-1",
		NewPassword:     "Brand-New-Password-2",
		RefreshToken:    "old-refresh",
		Client:          testClient,
	})

	require.NoError(t, err)
	assert.Equal(t, pair, got)
	assert.Equal(t, "new-hash", account.PasswordHash)
}

func TestAccountService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount()

	fx.hasher.EXPECT().ValidatePasswordStrength("Brand-New-Password-2").Return(nil)
	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

	_, err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       account.ID,
		CurrentPassword: "nope",
		NewPassword:     "Brand-New-Password-2",
	})

	assert.ErrorIs(t, err, domainerrors.ErrWrongCurrentPassword)
	assert.Equal(t, "hashed", account.PasswordHash)
}

func TestAccountService_ChangeEmail_NotifiesBothAddresses(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount()

	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	repos.accounts.EXPECT().Update(ctx, account).Return(nil)
	repos.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(event *entity.SecurityEvent) bool {
			return event.Kind == entity.SecurityEventEmailChanged && event.Details["old_email"] == "astrid@example.se"
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMail(ctx, mailWithTemplate(entity.MailVerifyEmail)).
		Run(func(_ context.Context, msg *entity.MailMessage) {
			assert.Equal(t, "pippi@example.se", msg.Recipient)
		}).
		Return(nil)
	fx.events.EXPECT().MarkNotified(ctx, mock.Anything).Return(true, nil)
	fx.publisher.EXPECT().
		PublishMail(ctx, mailWithTemplate(entity.MailEmailChanged)).
		Run(func(_ context.Context, msg *entity.MailMessage) {
			assert.Equal(t, "astrid@example.se", msg.Recipient)
			assert.Equal(t, "pippi@example.se", msg.Data["new_email"])
		}).
		Return(nil)

	err := fx.service.ChangeEmail(ctx, &usecase.ChangeEmailInput{
		AccountID: account.ID,
		NewEmail:  "Pippi@Example.se",
		Client:    testClient,
	})

	require.NoError(t, err)
	assert.Equal(t, "pippi@example.se", account.Email)
	assert.Equal(t, "pippi@example.se", account.Username)
	assert.False(t, account.EmailVerified)
	require.NotNil(t, account.VerificationToken)
	assert.Equal(t, fixedNow, *account.VerificationTokenIssuedAt)
}

func TestAccountService_ChangeEmail_SameAddressIsNoop(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount()

	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)

	err := fx.service.ChangeEmail(ctx, &usecase.ChangeEmailInput{AccountID: account.ID, NewEmail: account.Email})

	require.NoError(t, err)
	assert.True(t, account.EmailVerified)
}

func TestAccountService_ChangeEmail_AddressTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount()

	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	repos.accounts.EXPECT().Update(ctx, account).Return(errors.WithStack(repository.ErrDuplicateEmail))

	err := fx.service.ChangeEmail(ctx, &usecase.ChangeEmailInput{AccountID: account.ID, NewEmail: "taken@example.se"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	fx.publisher.AssertNotCalled(t, "PublishMail", mock.Anything, mock.Anything)
}

func TestAccountService_DeleteAccount_Deactivates(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount()
	account.EmailVerified = false
	account.VerificationToken = strPtr("change-email-link")
	account.VerificationTokenIssuedAt = timePtr(fixedNow.Add(-time.Minute))
	account.PasswordResetToken = strPtr("reset-link")
	account.PasswordResetTokenIssued = timePtr(fixedNow.Add(-time.Minute))

	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("Secret-Password-1", "hashed").Return(true)
	repos.accounts.EXPECT().Update(ctx, account).Return(nil)
	fx.sessions.EXPECT().Revoke(ctx, "refresh").Return(nil)

	err := fx.service.DeleteAccount(ctx, &usecase.DeleteAccountInput{
		AccountID:    account.ID,
		Password:     "Secret-Password-1",
		RefreshToken: "refresh",
	})

	require.NoError(t, err)
	assert.False(t, account.Active)
	assert.NotNil(t, account.DeactivatedAt)
	assert.Nil(t, account.VerificationToken)
	assert.Nil(t, account.VerificationTokenIssuedAt)
	assert.Nil(t, account.PasswordResetToken)
	assert.Nil(t, account.PasswordResetTokenIssued)
}

func TestAccountService_DeleteAccount_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount()

	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

	err := fx.service.DeleteAccount(ctx, &usecase.DeleteAccountInput{AccountID: account.ID, Password: "nope"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordIncorrect)
	assert.True(t, account.Active)
}

func TestAccountService_LoginHistory_UsesConfiguredLimit(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()
	attempts := []*entity.LoginAttempt{{ID: uuid.New(), AccountID: accountID}}

	fx.attempts.EXPECT().ListRecent(ctx, accountID, 20).Return(attempts, nil)

	got, err := fx.service.LoginHistory(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, attempts, got)
}

func TestAccountService_SecurityEvents_RepositoryError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.events.EXPECT().ListRecent(ctx, accountID, 20).Return(nil, errors.New("connection reset"))

	_, err := fx.service.SecurityEvents(ctx, accountID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list security events")
}
