// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/domain/repository"
	"valunds/internal/errors"
	"valunds/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.first(repo.db.WithContext(ctx), "id = ?", id)
}

// FindByIDForUpdate retrieves and row-locks an account by ID on the primary.
func (repo *accountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.first(repo.locked(ctx), "id = ?", id)
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.first(repo.db.WithContext(ctx), "email = ?", email)
}

// FindByEmailForUpdate retrieves and row-locks an account by email on the primary.
func (repo *accountRepository) FindByEmailForUpdate(ctx context.Context, email string) (*entity.Account, error) {
	return repo.first(repo.locked(ctx), "email = ?", email)
}

// FindByVerificationToken retrieves and row-locks the account holding the verification token.
func (repo *accountRepository) FindByVerificationToken(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, repository.ErrAccountNotFound
	}

	return repo.first(repo.locked(ctx), "verification_token = ?", token)
}

// FindByPasswordResetToken retrieves and row-locks the account holding the reset token.
func (repo *accountRepository) FindByPasswordResetToken(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, repository.ErrAccountNotFound
	}

	return repo.first(repo.locked(ctx), "password_reset_token = ?", token)
}

// FindByBankIDHash retrieves and row-locks the account linked to a BankID identifier hash.
func (repo *accountRepository) FindByBankIDHash(ctx context.Context, hash string) (*entity.Account, error) {
	return repo.first(repo.locked(ctx), "bankid_identifier_hash = ?", hash)
}

// Create persists a new account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		return translateAccountWriteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update writes every mutable column of an existing account, including zero values.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(accountM)
	if result.Error != nil {
		return translateAccountWriteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

func (repo *accountRepository) locked(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"})
}

func (repo *accountRepository) first(db *gorm.DB, query string, args ...any) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := db.Where(query, args...).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

func translateAccountWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		if strings.Contains(violatedConstraint(err), "bankid") {
			return errors.WithStack(repository.ErrDuplicateBankIDIdentity)
		}

		return errors.WithStack(repository.ErrDuplicateEmail)
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                        data.ID,
		Email:                     data.Email,
		Username:                  data.Username,
		PasswordHash:              data.PasswordHash,
		FirstName:                 data.FirstName,
		LastName:                  data.LastName,
		UserType:                  entity.UserType(data.UserType),
		PhoneNumber:               data.PhoneNumber,
		Address:                   data.Address,
		City:                      data.City,
		Postcode:                  data.Postcode,
		Country:                   data.Country,
		EmailVerified:             data.EmailVerified,
		Active:                    data.Active,
		DeactivatedAt:             data.DeactivatedAt,
		VerificationToken:         data.VerificationToken,
		VerificationTokenIssuedAt: data.VerificationTokenIssuedAt,
		PasswordResetToken:        data.PasswordResetToken,
		PasswordResetTokenIssued:  data.PasswordResetTokenIssuedAt,
		FailedLoginCount:          data.FailedLoginCount,
		LastFailedLoginAt:         data.LastFailedLoginAt,
		LockedUntil:               data.LockedUntil,
		LastLoginIP:               data.LastLoginIP,
		LastLoginUserAgent:        data.LastLoginUserAgent,
		LastLoginLocation:         data.LastLoginLocation,
		BankIDVerified:            data.BankIDVerified,
		BankIDIdentifierHash:      data.BankIDIdentifierHash,
		BankIDVerifiedAt:          data.BankIDVerifiedAt,
		CreatedAt:                 data.CreatedAt,
		UpdatedAt:                 data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                         data.ID,
		Email:                      data.Email,
		Username:                   data.Username,
		PasswordHash:               data.PasswordHash,
		FirstName:                  data.FirstName,
		LastName:                   data.LastName,
		UserType:                   data.UserType.String(),
		PhoneNumber:                data.PhoneNumber,
		Address:                    data.Address,
		City:                       data.City,
		Postcode:                   data.Postcode,
		Country:                    data.Country,
		EmailVerified:              data.EmailVerified,
		Active:                     data.Active,
		DeactivatedAt:              data.DeactivatedAt,
		VerificationToken:          data.VerificationToken,
		VerificationTokenIssuedAt:  data.VerificationTokenIssuedAt,
		PasswordResetToken:         data.PasswordResetToken,
		PasswordResetTokenIssuedAt: data.PasswordResetTokenIssued,
		FailedLoginCount:           data.FailedLoginCount,
		LastFailedLoginAt:          data.LastFailedLoginAt,
		LockedUntil:                data.LockedUntil,
		LastLoginIP:                data.LastLoginIP,
		LastLoginUserAgent:         data.LastLoginUserAgent,
		LastLoginLocation:          data.LastLoginLocation,
		BankIDVerified:             data.BankIDVerified,
		BankIDIdentifierHash:       data.BankIDIdentifierHash,
		BankIDVerifiedAt:           data.BankIDVerifiedAt,
		CreatedAt:                  data.CreatedAt,
		UpdatedAt:                  data.UpdatedAt,
	}
}
