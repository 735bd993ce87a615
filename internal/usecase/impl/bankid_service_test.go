package impl

import (
	"context"
	"testing"
	"time"

	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/domain/repository"
	"valunds/internal/domain/security"
	"valunds/internal/domain/service"
	"valunds/internal/errors"
	mockRepo "valunds/internal/mocks/repository"
	mockSvc "valunds/internal/mocks/service"
	mockUC "valunds/internal/mocks/usecase"
	"valunds/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPersonalNumber = "199001011234"

type bankIDServiceFixtures struct {
	service   *bankIDService
	txManager *mockRepo.MockTransactionManager
	sessions  *mockRepo.MockBankIDSessionStore
	attempts  *mockRepo.MockLoginAttemptRepository
	events    *mockRepo.MockSecurityEventRepository
	client    *mockSvc.MockBankIDClient
	qrCodes   *mockSvc.MockQRCodeService
	tokens    *mockUC.MockSessionUsecase
	publisher *mockSvc.MockMailPublisher
}

func createTestBankIDService(t *testing.T) bankIDServiceFixtures {
	fx := bankIDServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		sessions:  mockRepo.NewMockBankIDSessionStore(t),
		attempts:  mockRepo.NewMockLoginAttemptRepository(t),
		events:    mockRepo.NewMockSecurityEventRepository(t),
		client:    mockSvc.NewMockBankIDClient(t),
		qrCodes:   mockSvc.NewMockQRCodeService(t),
		tokens:    mockUC.NewMockSessionUsecase(t),
		publisher: mockSvc.NewMockMailPublisher(t),
	}

	fx.service = NewBankIDService(BankIDServiceParams{
		TxManager:   fx.txManager,
		Sessions:    fx.sessions,
		AttemptRepo: fx.attempts,
		EventRepo:   fx.events,
		Client:      fx.client,
		QRCodes:     fx.qrCodes,
		Tokens:      fx.tokens,
		Publisher:   fx.publisher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*bankIDService)
	fx.service.now = func() time.Time { return fixedNow }

	return fx
}

func pendingSession() *entity.BankIDSession {
	return &entity.BankIDSession{
		OrderRef:      "order-1",
		QRStartToken:  "qr-token",
		QRStartSecret: "qr-secret",
		EndUserIP:     testClient.IPAddress,
		StartedAt:     fixedNow.Add(-7 * time.Second),
	}
}

func completedCollect() *entity.BankIDCollectResult {
	return &entity.BankIDCollectResult{
		OrderRef: "order-1",
		Status:   entity.BankIDStatusComplete,
		CompletionUser: &entity.BankIDUser{
			PersonalNumber: testPersonalNumber,
			Name:           "Astrid Lindgren",
			GivenName:      "Astrid",
			Surname:        "Lindgren",
		},
	}
}

func TestBankIDService_Initiate_StoresSession(t *testing.T) {
	fx := createTestBankIDService(t)
	ctx := context.Background()

	fx.client.EXPECT().Auth(ctx, testClient.IPAddress, "").Return(&entity.BankIDOrder{
		OrderRef:       "order-1",
		AutoStartToken: "auto",
		QRStartToken:   "qr-token",
		QRStartSecret:  "qr-secret",
	}, nil)
	fx.sessions.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(s *entity.BankIDSession) bool {
			return s.OrderRef == "order-1" && s.QRStartSecret == "qr-secret" && s.StartedAt.Equal(fixedNow)
		}), 5*time.Minute).
		Return(nil)

	out, err := fx.service.Initiate(ctx, &usecase.BankIDInitiateInput{Client: testClient})

	require.NoError(t, err)
	assert.Len(t, out.SessionKey, 48)
	assert.Equal(t, "order-1", out.OrderRef)
	assert.Equal(t, "auto", out.AutoStartToken)
}

func TestBankIDService_Initiate_StoreFailureCancelsOrder(t *testing.T) {
	fx := createTestBankIDService(t)
	ctx := context.Background()

	fx.client.EXPECT().Auth(ctx, testClient.IPAddress, testPersonalNumber).Return(&entity.BankIDOrder{OrderRef: "order-1"}, nil)
	fx.sessions.EXPECT().Save(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
	fx.client.EXPECT().Cancel(ctx, "order-1").Return(nil)

	_, err := fx.service.Initiate(ctx, &usecase.BankIDInitiateInput{PersonalNumber: testPersonalNumber, Client: testClient})

	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestBankIDService_Initiate_ProviderErrors(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantError error
	}{
		{name: "rejected", clientErr: service.ErrBankIDRejected, wantError: domainerrors.ErrBankIDFailed},
		{name: "unavailable", clientErr: service.ErrBankIDUnavailable, wantError: domainerrors.ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBankIDService(t)
			ctx := context.Background()

			fx.client.EXPECT().Auth(ctx, mock.Anything, mock.Anything).Return(nil, errors.WithStack(tt.clientErr))

			_, err := fx.service.Initiate(ctx, &usecase.BankIDInitiateInput{Client: testClient})

			assert.ErrorIs(t, err, tt.wantError)
		})
	}
}

func TestBankIDService_Collect_Pending(t *testing.T) {
	fx := createTestBankIDService(t)
	ctx := context.Background()

	fx.sessions.EXPECT().Get(ctx, "key").Return(pendingSession(), nil)
	fx.client.EXPECT().Collect(ctx, "order-1").Return(&entity.BankIDCollectResult{
		OrderRef: "order-1",
		Status:   entity.BankIDStatusPending,
		HintCode: "outstandingTransaction",
	}, nil)

	out, err := fx.service.Collect(ctx, "key", testClient)

	require.NoError(t, err)
	require.NotNil(t, out.Progress)
	assert.Nil(t, out.Result)
	assert.Equal(t, entity.BankIDStatusPending, out.Progress.Status)
	assert.Equal(t, security.BankIDHintMessage("outstandingTransaction"), out.Progress.Message)
}

func TestBankIDService_Collect_Failed(t *testing.T) {
	tests := []struct {
		name      string
		hintCode  string
		wantError error
	}{
		{name: "user cancelled", hintCode: "userCancel", wantError: domainerrors.ErrBankIDCancelled},
		{name: "expired", hintCode: "expiredTransaction", wantError: domainerrors.ErrBankIDFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBankIDService(t)
			ctx := context.Background()

			fx.sessions.EXPECT().Get(ctx, "key").Return(pendingSession(), nil)
			fx.client.EXPECT().Collect(ctx, "order-1").Return(&entity.BankIDCollectResult{
				Status:   entity.BankIDStatusFailed,
				HintCode: tt.hintCode,
			}, nil)
			fx.sessions.EXPECT().Delete(ctx, "key").Return(nil)

			_, err := fx.service.Collect(ctx, "key", testClient)

			assert.ErrorIs(t, err, tt.wantError)
		})
	}
}

func TestBankIDService_Collect_NoSession(t *testing.T) {
	t.Run("empty key", func(t *testing.T) {
		fx := createTestBankIDService(t)

		_, err := fx.service.Collect(context.Background(), "", testClient)

		assert.ErrorIs(t, err, domainerrors.ErrBankIDNoSession)
	})

	t.Run("expired record", func(t *testing.T) {
		fx := createTestBankIDService(t)
		ctx := context.Background()

		fx.sessions.EXPECT().Get(ctx, "key").Return(nil, repository.ErrBankIDSessionNotFound)

		_, err := fx.service.Collect(ctx, "key", testClient)

		assert.ErrorIs(t, err, domainerrors.ErrBankIDNoSession)
	})

	t.Run("completed concurrently", func(t *testing.T) {
		fx := createTestBankIDService(t)
		ctx := context.Background()

		fx.sessions.EXPECT().Get(ctx, "key").Return(pendingSession(), nil)
		fx.client.EXPECT().Collect(ctx, "order-1").Return(completedCollect(), nil)
		fx.sessions.EXPECT().Take(ctx, "key").Return(nil, repository.ErrBankIDSessionNotFound)

		_, err := fx.service.Collect(ctx, "key", testClient)

		assert.ErrorIs(t, err, domainerrors.ErrBankIDNoSession)
	})
}

func TestBankIDService_Collect_ProviderUnavailable(t *testing.T) {
	fx := createTestBankIDService(t)
	ctx := context.Background()

	fx.sessions.EXPECT().Get(ctx, "key").Return(pendingSession(), nil)
	fx.client.EXPECT().Collect(ctx, "order-1").Return(nil, errors.WithStack(service.ErrBankIDUnavailable))

	_, err := fx.service.Collect(ctx, "key", testClient)

	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
}

func TestBankIDService_Collect_CompleteCreatesAccount(t *testing.T) {
	fx := createTestBankIDService(t)
	ctx := context.Background()
	hash := security.HashIdentifier("test-salt", testPersonalNumber)

	fx.sessions.EXPECT().Get(ctx, "key").Return(pendingSession(), nil)
	fx.client.EXPECT().Collect(ctx, "order-1").Return(completedCollect(), nil)
	fx.sessions.EXPECT().Take(ctx, "key").Return(pendingSession(), nil)

	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByBankIDHash(ctx, hash).Return(nil, repository.ErrAccountNotFound)
	repos.accounts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	expectKnownDeviceLogin(ctx, repos)
	fx.tokens.EXPECT().Issue(ctx, mock.AnythingOfType("*entity.Account")).Return(newTestTokenPair(), nil)

	out, err := fx.service.Collect(ctx, "key", testClient)

	require.NoError(t, err)
	require.NotNil(t, out.Result)
	account := out.Result.Account
	assert.Equal(t, "bankid_"+hash[:16], account.Username)
	assert.Equal(t, "bankid_"+hash[:16]+"@valunds.se", account.Email)
	require.NotNil(t, account.BankIDIdentifierHash)
	assert.Equal(t, hash, *account.BankIDIdentifierHash)
	assert.NotContains(t, hash, testPersonalNumber)
	assert.True(t, account.BankIDVerified)
	assert.True(t, account.EmailVerified)
	assert.True(t, account.Active)
	assert.Empty(t, account.PasswordHash)
}

func TestBankIDService_Collect_CompleteUpdatesExistingAccount(t *testing.T) {
	fx := createTestBankIDService(t)
	ctx := context.Background()
	hash := security.HashIdentifier("test-salt", testPersonalNumber)
	account := newTestAccount()
	account.BankIDIdentifierHash = &hash
	account.FirstName = "A."
	account.Active = false
	account.DeactivatedAt = timePtr(fixedNow.Add(-24 * time.Hour))

	fx.sessions.EXPECT().Get(ctx, "key").Return(pendingSession(), nil)
	fx.client.EXPECT().Collect(ctx, "order-1").Return(completedCollect(), nil)
	fx.sessions.EXPECT().Take(ctx, "key").Return(pendingSession(), nil)

	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByBankIDHash(ctx, hash).Return(account, nil)
	expectKnownDeviceLogin(ctx, repos)
	fx.tokens.EXPECT().Issue(ctx, account).Return(newTestTokenPair(), nil)

	_, err := fx.service.Collect(ctx, "key", testClient)

	require.NoError(t, err)
	assert.Equal(t, "Astrid", account.FirstName)
	assert.True(t, account.BankIDVerified)
	assert.Equal(t, fixedNow, *account.BankIDVerifiedAt)
	assert.True(t, account.Active)
	assert.Nil(t, account.DeactivatedAt)
}

func TestBankIDService_Collect_IdentityConflict(t *testing.T) {
	fx := createTestBankIDService(t)
	ctx := context.Background()

	fx.sessions.EXPECT().Get(ctx, "key").Return(pendingSession(), nil)
	fx.client.EXPECT().Collect(ctx, "order-1").Return(completedCollect(), nil)
	fx.sessions.EXPECT().Take(ctx, "key").Return(pendingSession(), nil)

	repos := expectTx(t, fx.txManager)
	repos.accounts.EXPECT().FindByBankIDHash(ctx, mock.Anything).Return(nil, repository.ErrAccountNotFound)
	repos.accounts.EXPECT().Create(ctx, mock.Anything).Return(errors.WithStack(repository.ErrDuplicateBankIDIdentity))

	_, err := fx.service.Collect(ctx, "key", testClient)

	assert.ErrorIs(t, err, domainerrors.ErrBankIDIdentityConflict)
}

func TestBankIDService_Cancel_AlwaysForgetsSession(t *testing.T) {
	fx := createTestBankIDService(t)
	ctx := context.Background()

	fx.sessions.EXPECT().Get(ctx, "key").Return(pendingSession(), nil)
	fx.client.EXPECT().Cancel(ctx, "order-1").Return(errors.WithStack(service.ErrBankIDUnavailable))
	fx.sessions.EXPECT().Delete(ctx, "key").Return(nil)

	err := fx.service.Cancel(ctx, "key")

	require.NoError(t, err)
}

func TestBankIDService_Cancel_WithoutSession(t *testing.T) {
	fx := createTestBankIDService(t)

	require.NoError(t, fx.service.Cancel(context.Background(), ""))
}

func TestBankIDService_QRCode_UsesElapsedSeconds(t *testing.T) {
	fx := createTestBankIDService(t)
	ctx := context.Background()

	fx.sessions.EXPECT().Get(ctx, "key").Return(pendingSession(), nil)
	fx.qrCodes.EXPECT().
		GeneratePNG(security.BankIDQRData("qr-token", "qr-secret", 7)).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.QRCode(ctx, "key")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestBankIDService_QRCode_NoSession(t *testing.T) {
	fx := createTestBankIDService(t)
	ctx := context.Background()

	fx.sessions.EXPECT().Get(ctx, "key").Return(nil, repository.ErrBankIDSessionNotFound)

	_, err := fx.service.QRCode(ctx, "key")

	assert.ErrorIs(t, err, domainerrors.ErrBankIDNoSession)
}
