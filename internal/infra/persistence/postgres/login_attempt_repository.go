package postgres

import (
	"context"
	"time"

	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/domain/repository"
	"valunds/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loginAttemptRepository implements the repository.LoginAttemptRepository interface.
type loginAttemptRepository struct {
	db *gorm.DB
}

// NewLoginAttemptRepository is the constructor for loginAttemptRepository.
func NewLoginAttemptRepository(db *gorm.DB) repository.LoginAttemptRepository {
	return &loginAttemptRepository{
		db: db,
	}
}

// Create appends a login attempt to the ledger.
func (repo *loginAttemptRepository) Create(ctx context.Context, attempt *entity.LoginAttempt) error {
	attemptM := fromLoginAttemptDomain(attempt)

	if err := repo.db.WithContext(ctx).Create(attemptM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create login attempt")
	}

	attempt.ID = attemptM.ID

	return nil
}

// ListSuccessfulSince returns the successful attempts of an account at or after since.
func (repo *loginAttemptRepository) ListSuccessfulSince(
	ctx context.Context,
	accountID uuid.UUID,
	since time.Time,
) ([]*entity.LoginAttempt, error) {
	var attemptsM []*model.LoginAttemptModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND succeeded = ? AND attempted_at >= ?", accountID, true, since).
		Order("attempted_at DESC").
		Find(&attemptsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list successful login attempts")
	}

	return toLoginAttemptDomains(attemptsM), nil
}

// ListRecent returns the newest attempts first.
func (repo *loginAttemptRepository) ListRecent(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.LoginAttempt, error) {
	var attemptsM []*model.LoginAttemptModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("attempted_at DESC").
		Limit(limit).
		Find(&attemptsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list login attempts")
	}

	return toLoginAttemptDomains(attemptsM), nil
}

// MarkNotified flips the notified flag once.
func (repo *loginAttemptRepository) MarkNotified(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LoginAttemptModel{}).
		Where("id = ? AND notified = ?", id, false).
		Update("notified", true)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark login attempt notified")
	}

	return result.RowsAffected == 1, nil
}

// ReleaseNotified clears the notified flag again.
func (repo *loginAttemptRepository) ReleaseNotified(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.LoginAttemptModel{}).
		Where("id = ? AND notified = ?", id, true).
		Update("notified", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to release login attempt notified flag")
	}

	return nil
}

func toLoginAttemptDomains(data []*model.LoginAttemptModel) []*entity.LoginAttempt {
	attempts := make([]*entity.LoginAttempt, 0, len(data))
	for _, attemptM := range data {
		attempts = append(attempts, toLoginAttemptDomain(attemptM))
	}

	return attempts
}

func toLoginAttemptDomain(data *model.LoginAttemptModel) *entity.LoginAttempt {
	return &entity.LoginAttempt{
		ID:          data.ID,
		AccountID:   data.AccountID,
		AttemptedAt: data.AttemptedAt,
		IPAddress:   data.IPAddress,
		UserAgent:   data.UserAgent,
		Device: entity.DeviceDescriptor{
			DeviceType: data.DeviceType,
			Browser:    data.Browser,
			OS:         data.OS,
		},
		Location:          data.Location,
		Succeeded:         data.Succeeded,
		FlaggedSuspicious: data.FlaggedSuspicious,
		Notified:          data.Notified,
	}
}

func fromLoginAttemptDomain(data *entity.LoginAttempt) *model.LoginAttemptModel {
	return &model.LoginAttemptModel{
		ID:                data.ID,
		AccountID:         data.AccountID,
		AttemptedAt:       data.AttemptedAt,
		IPAddress:         data.IPAddress,
		UserAgent:         data.UserAgent,
		DeviceType:        data.Device.DeviceType,
		Browser:           data.Device.Browser,
		OS:                data.Device.OS,
		Location:          data.Location,
		Succeeded:         data.Succeeded,
		FlaggedSuspicious: data.FlaggedSuspicious,
		Notified:          data.Notified,
	}
}
