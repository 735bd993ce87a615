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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type oauthServiceFixtures struct {
	service    *oauthService
	txManager  *mockRepo.MockTransactionManager
	stateStore *mockRepo.MockOAuthStateStore
	attempts   *mockRepo.MockLoginAttemptRepository
	events     *mockRepo.MockSecurityEventRepository
	provider   *mockSvc.MockOAuthService
	sessions   *mockUC.MockSessionUsecase
	publisher  *mockSvc.MockMailPublisher
}

func createTestOAuthService(t *testing.T) oauthServiceFixtures {
	fx := oauthServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		stateStore: mockRepo.NewMockOAuthStateStore(t),
		attempts:   mockRepo.NewMockLoginAttemptRepository(t),
		events:     mockRepo.NewMockSecurityEventRepository(t),
		provider:   mockSvc.NewMockOAuthService(t),
		sessions:   mockUC.NewMockSessionUsecase(t),
		publisher:  mockSvc.NewMockMailPublisher(t),
	}

	fx.service = NewOAuthService(OAuthServiceParams{
		TxManager:   fx.txManager,
		StateStore:  fx.stateStore,
		AttemptRepo: fx.attempts,
		EventRepo:   fx.events,
		Provider:    fx.provider,
		Sessions:    fx.sessions,
		Publisher:   fx.publisher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*oauthService)
	fx.service.now = func() time.Time { return fixedNow }

	return fx
}

func googleProfile() *entity.OAuthProfile {
	return &entity.OAuthProfile{
		Subject:       "1098765",
		Email:         "Astrid@Example.se",
		EmailVerified: true,
		GivenName:     "Astrid",
		FamilyName:    "Lindgren",
	}
}

func callbackInput() *usecase.OAuthCallbackInput {
	return &usecase.OAuthCallbackInput{Code: "auth-code", State: "state-123", Client: testClient}
}

// expectProviderRoundTrip primes a valid state and a successful exchange.
func (fx oauthServiceFixtures) expectProviderRoundTrip(ctx context.Context, profile *entity.OAuthProfile) {
	fx.stateStore.EXPECT().Consume(ctx, "state-123").Return(true, nil)
	fx.provider.EXPECT().ExchangeCode(ctx, "auth-code").Return("provider-token", nil)
	fx.provider.EXPECT().FetchProfile(ctx, "provider-token").Return(profile, nil)
}

// expectKnownDeviceLogin primes the ledger writes of a login from a recognised device.
func expectKnownDeviceLogin(ctx context.Context, repos *txRepos) {
	repos.attempts.EXPECT().ListSuccessfulSince(ctx, mock.Anything, mock.Anything).Return([]*entity.LoginAttempt{
		{Succeeded: true, IPAddress: testClient.IPAddress},
	}, nil)
	repos.attempts.EXPECT().Create(ctx, mock.Anything).Return(nil)
	repos.accounts.EXPECT().Update(ctx, mock.Anything).Return(nil)
}

func TestOAuthService_BeginLogin_StoresState(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	var saved string
	fx.stateStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), 10*time.Minute).
		Run(func(_ context.Context, state string, _ time.Duration) { saved = state }).
		Return(nil)
	fx.provider.EXPECT().
		BuildAuthorizationURL(mock.AnythingOfType("string")).
		RunAndReturn(func(state string) string { return "https://accounts.google.com/o/oauth2/auth?state=" + state })

	url, err := fx.service.BeginLogin(ctx)

	require.NoError(t, err)
	assert.Len(t, saved, 32)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state="+saved, url)
}

func TestOAuthService_BeginLogin_StoreFailure(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	fx.stateStore.EXPECT().Save(ctx, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	_, err := fx.service.BeginLogin(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestOAuthService_CompleteLogin_Rejections(t *testing.T) {
	t.Run("consent declined", func(t *testing.T) {
		fx := createTestOAuthService(t)

		_, err := fx.service.CompleteLogin(context.Background(), &usecase.OAuthCallbackInput{Error: "access_denied"})

		assert.ErrorIs(t, err, domainerrors.ErrOAuthCancelled)
	})

	t.Run("missing state", func(t *testing.T) {
		fx := createTestOAuthService(t)

		_, err := fx.service.CompleteLogin(context.Background(), &usecase.OAuthCallbackInput{Code: "auth-code"})

		assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
	})

	t.Run("unknown or reused state", func(t *testing.T) {
		fx := createTestOAuthService(t)
		ctx := context.Background()

		fx.stateStore.EXPECT().Consume(ctx, "state-123").Return(false, nil)

		_, err := fx.service.CompleteLogin(ctx, callbackInput())

		assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
	})

	t.Run("code exchange fails", func(t *testing.T) {
		fx := createTestOAuthService(t)
		ctx := context.Background()

		fx.stateStore.EXPECT().Consume(ctx, "state-123").Return(true, nil)
		fx.provider.EXPECT().ExchangeCode(ctx, "auth-code").Return("", errors.New("invalid_grant"))

		_, err := fx.service.CompleteLogin(ctx, callbackInput())

		assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
		assert.NotContains(t, err.Error(), "invalid_grant")
	})

	t.Run("profile without email", func(t *testing.T) {
		fx := createTestOAuthService(t)
		ctx := context.Background()
		profile := googleProfile()
		profile.Email = ""

		fx.expectProviderRoundTrip(ctx, profile)

		_, err := fx.service.CompleteLogin(ctx, callbackInput())

		assert.ErrorIs(t, err, domainerrors.ErrOAuthNoEmail)
	})
}

func TestOAuthService_CompleteLogin_CreatesVerifiedAccount(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	fx.expectProviderRoundTrip(ctx, googleProfile())
	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByEmailForUpdate(ctx, "astrid@example.se").Return(nil, repository.ErrAccountNotFound)
	repos.accounts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	expectKnownDeviceLogin(ctx, repos)
	fx.sessions.EXPECT().Issue(ctx, mock.AnythingOfType("*entity.Account")).Return(newTestTokenPair(), nil)

	result, err := fx.service.CompleteLogin(ctx, callbackInput())

	require.NoError(t, err)
	assert.Equal(t, "astrid@example.se", result.Account.Email)
	assert.True(t, result.Account.EmailVerified)
	assert.True(t, result.Account.Active)
	assert.Empty(t, result.Account.PasswordHash)
	assert.Equal(t, "Astrid", result.Account.FirstName)
}

func TestOAuthService_CompleteLogin_ConfirmsPendingEmailChange(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()
	account := newTestAccount()
	account.EmailVerified = false
	account.VerificationToken = strPtr("pending")

	fx.expectProviderRoundTrip(ctx, googleProfile())
	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByEmailForUpdate(ctx, account.Email).Return(account, nil)
	expectKnownDeviceLogin(ctx, repos)
	fx.sessions.EXPECT().Issue(ctx, account).Return(newTestTokenPair(), nil)

	_, err := fx.service.CompleteLogin(ctx, callbackInput())

	require.NoError(t, err)
	assert.True(t, account.EmailVerified)
	assert.True(t, account.Active)
	assert.Nil(t, account.VerificationToken)
}

func TestOAuthService_CompleteLogin_InactiveAccountsAreRefused(t *testing.T) {
	tests := map[string]func(*entity.Account){
		"pending registration": func(a *entity.Account) {
			a.EmailVerified = false
			a.Active = false
			a.VerificationToken = strPtr("pending")
		},
		"deleted after an email change": func(a *entity.Account) {
			a.EmailVerified = false
			a.Active = false
			a.DeactivatedAt = timePtr(fixedNow.Add(-time.Hour))
		},
	}

	for name, prepare := range tests {
		t.Run(name, func(t *testing.T) {
			fx := createTestOAuthService(t)
			ctx := context.Background()
			account := newTestAccount()
			prepare(account)

			fx.expectProviderRoundTrip(ctx, googleProfile())
			repos := expectTx(t, fx.txManager)
			repos.accounts.EXPECT().FindByEmailForUpdate(ctx, account.Email).Return(account, nil)

			_, err := fx.service.CompleteLogin(ctx, callbackInput())

			assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
			assert.False(t, account.Active)
			assert.False(t, account.EmailVerified)
			fx.sessions.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
		})
	}
}

func TestOAuthService_CompleteLogin_DeactivatedAccount(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()
	account := newTestAccount()
	account.Active = false

	fx.expectProviderRoundTrip(ctx, googleProfile())
	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByEmailForUpdate(ctx, account.Email).Return(account, nil)

	_, err := fx.service.CompleteLogin(ctx, callbackInput())

	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	fx.sessions.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}
