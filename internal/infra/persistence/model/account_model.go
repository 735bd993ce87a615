package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via gen_random_uuid().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	FirstName    string    `gorm:"type:varchar(150)"`
	LastName     string    `gorm:"type:varchar(150)"`
	UserType     string    `gorm:"type:varchar(20);not null;default:freelancer"`
	PhoneNumber  string    `gorm:"type:varchar(32)"`
	Address      string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100)"`
	Postcode     string    `gorm:"type:varchar(20)"`
	Country      string    `gorm:"type:varchar(100);not null;default:Sweden"`

	EmailVerified bool `gorm:"not null;default:false"`
	Active        bool `gorm:"not null;default:false"`
	DeactivatedAt *time.Time

	VerificationToken          *string `gorm:"type:varchar(64);uniqueIndex"`
	VerificationTokenIssuedAt  *time.Time
	PasswordResetToken         *string `gorm:"type:varchar(64);uniqueIndex"`
	PasswordResetTokenIssuedAt *time.Time

	FailedLoginCount  int `gorm:"not null;default:0"`
	LastFailedLoginAt *time.Time
	LockedUntil       *time.Time

	LastLoginIP        string `gorm:"type:varchar(45)"`
	LastLoginUserAgent string `gorm:"type:text"`
	LastLoginLocation  string `gorm:"type:varchar(255)"`

	BankIDVerified       bool       `gorm:"column:bankid_verified;not null;default:false"`
	BankIDIdentifierHash *string    `gorm:"column:bankid_identifier_hash;type:varchar(64);uniqueIndex"`
	BankIDVerifiedAt     *time.Time `gorm:"column:bankid_verified_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
