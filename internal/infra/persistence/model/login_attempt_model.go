package model

import (
	"time"

	"github.com/google/uuid"
)

// LoginAttemptModel mirrors the 'login_attempts' table.
type LoginAttemptModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID         uuid.UUID `gorm:"type:uuid;not null;index:idx_login_attempts_account_success_time,priority:1"`
	AttemptedAt       time.Time `gorm:"not null;index:idx_login_attempts_account_success_time,priority:3"`
	IPAddress         string    `gorm:"type:varchar(45)"`
	UserAgent         string    `gorm:"type:text"`
	DeviceType        string    `gorm:"type:varchar(50)"`
	Browser           string    `gorm:"type:varchar(100)"`
	OS                string    `gorm:"column:os;type:varchar(100)"`
	Location          string    `gorm:"type:varchar(255)"`
	Succeeded         bool      `gorm:"not null;index:idx_login_attempts_account_success_time,priority:2"`
	FlaggedSuspicious bool      `gorm:"not null;default:false"`
	Notified          bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (LoginAttemptModel) TableName() string {
	return "login_attempts"
}
