package postgres

import (
	"context"

	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/domain/repository"
	"valunds/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// securityEventRepository implements the repository.SecurityEventRepository interface.
type securityEventRepository struct {
	db *gorm.DB
}

// NewSecurityEventRepository is the constructor for securityEventRepository.
func NewSecurityEventRepository(db *gorm.DB) repository.SecurityEventRepository {
	return &securityEventRepository{
		db: db,
	}
}

// Create appends a security event.
func (repo *securityEventRepository) Create(ctx context.Context, event *entity.SecurityEvent) error {
	eventM := fromSecurityEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create security event")
	}

	event.ID = eventM.ID

	return nil
}

// ListRecent returns the newest events first.
func (repo *securityEventRepository) ListRecent(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.SecurityEvent, error) {
	var eventsM []*model.SecurityEventModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&eventsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list security events")
	}

	events := make([]*entity.SecurityEvent, 0, len(eventsM))
	for _, eventM := range eventsM {
		events = append(events, toSecurityEventDomain(eventM))
	}

	return events, nil
}

// MarkNotified flips the notified flag once.
func (repo *securityEventRepository) MarkNotified(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SecurityEventModel{}).
		Where("id = ? AND notified = ?", id, false).
		Update("notified", true)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark security event notified")
	}

	return result.RowsAffected == 1, nil
}

// ReleaseNotified clears the notified flag again.
func (repo *securityEventRepository) ReleaseNotified(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SecurityEventModel{}).
		Where("id = ? AND notified = ?", id, true).
		Update("notified", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to release security event notified flag")
	}

	return nil
}

func toSecurityEventDomain(data *model.SecurityEventModel) *entity.SecurityEvent {
	return &entity.SecurityEvent{
		ID:         data.ID,
		AccountID:  data.AccountID,
		Kind:       entity.SecurityEventKind(data.Kind),
		OccurredAt: data.OccurredAt,
		IPAddress:  data.IPAddress,
		UserAgent:  data.UserAgent,
		Details:    map[string]any(data.Details),
		Notified:   data.Notified,
	}
}

func fromSecurityEventDomain(data *entity.SecurityEvent) *model.SecurityEventModel {
	return &model.SecurityEventModel{
		ID:         data.ID,
		AccountID:  data.AccountID,
		Kind:       data.Kind.String(),
		OccurredAt: data.OccurredAt,
		IPAddress:  data.IPAddress,
		UserAgent:  data.UserAgent,
		Details:    datatypes.JSONMap(data.Details),
		Notified:   data.Notified,
	}
}
