package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SecurityEventModel mirrors the 'security_events' table.
type SecurityEventModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID  uuid.UUID         `gorm:"type:uuid;not null;index:idx_security_events_account_time,priority:1"`
	Kind       string            `gorm:"type:varchar(32);not null"`
	OccurredAt time.Time         `gorm:"not null;index:idx_security_events_account_time,priority:2"`
	IPAddress  string            `gorm:"type:varchar(45)"`
	UserAgent  string            `gorm:"type:text"`
	Details    datatypes.JSONMap `gorm:"type:jsonb"`
	Notified   bool              `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (SecurityEventModel) TableName() string {
	return "security_events"
}
