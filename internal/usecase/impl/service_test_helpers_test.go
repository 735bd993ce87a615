package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"valunds/config"
	"valunds/internal/domain/entity"
	"valunds/internal/domain/repository"
	mockRepo "valunds/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Frontend: &config.FrontendConfig{URL: "https://valunds.test"},
		BankID:   &config.BankIDConfig{Salt: "test-salt"},
	}
	config.ApplyDefaults(cfg)

	return cfg
}

// txRepos are the transaction-bound repositories handed to an Execute callback.
type txRepos struct {
	factory  *mockRepo.MockRepositoryFactory
	accounts *mockRepo.MockAccountRepository
	attempts *mockRepo.MockLoginAttemptRepository
	events   *mockRepo.MockSecurityEventRepository
}

// expectTx makes the next Execute call run its callback against fresh repository mocks
// and return whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager) *txRepos {
	t.Helper()

	repos := &txRepos{
		factory:  mockRepo.NewMockRepositoryFactory(t),
		accounts: mockRepo.NewMockAccountRepository(t),
		attempts: mockRepo.NewMockLoginAttemptRepository(t),
		events:   mockRepo.NewMockSecurityEventRepository(t),
	}
	repos.factory.EXPECT().NewAccountRepository().Return(repos.accounts).Maybe()
	repos.factory.EXPECT().NewLoginAttemptRepository().Return(repos.attempts).Maybe()
	repos.factory.EXPECT().NewSecurityEventRepository().Return(repos.events).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Once()

	return repos
}

func newTestAccount() *entity.Account {
	return &entity.Account{
		ID:            uuid.New(),
		Email:         "astrid@example.se",
		Username:      "astrid@example.se",
		PasswordHash:  "hashed",
		FirstName:     "Astrid",
		LastName:      "Lindgren",
		UserType:      entity.UserTypeFreelancer,
		Country:       "Sweden",
		EmailVerified: true,
		Active:        true,
	}
}

func newTestTokenPair() *entity.TokenPair {
	return &entity.TokenPair{
		AccessToken:      "access",
		RefreshToken:     "refresh",
		AccessExpiresAt:  fixedNow.Add(30 * time.Minute),
		RefreshExpiresAt: fixedNow.Add(30 * 24 * time.Hour),
	}
}

func mailWithTemplate(template entity.MailTemplate) any {
	return mock.MatchedBy(func(msg *entity.MailMessage) bool {
		return msg.Template == template
	})
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func strPtr(s string) *string {
	return &s
}
