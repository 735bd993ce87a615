// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity, credential and security state of one marketplace user.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email        string    // Unique login identifier.
	Username     string    // Unique display handle; equals Email for password registrations.
	PasswordHash string    // bcrypt hash. Empty for accounts created through a federated identity.
	FirstName    string
	LastName     string
	UserType     UserType
	PhoneNumber  string
	Address      string
	City         string
	Postcode     string
	Country      string

	EmailVerified bool
	Active        bool
	DeactivatedAt *time.Time // Set when the owner deleted the account. Only BankID clears it.

	VerificationToken         *string    // Single-use email verification token.
	VerificationTokenIssuedAt *time.Time // When VerificationToken was issued.
	PasswordResetToken        *string    // Single-use password reset token.
	PasswordResetTokenIssued  *time.Time // When PasswordResetToken was issued.

	FailedLoginCount  int        // Consecutive failures inside the current lockout window.
	LastFailedLoginAt *time.Time // Time of the most recent failed attempt.
	LockedUntil       *time.Time // Authentication is rejected until this instant.

	LastLoginIP        string
	LastLoginUserAgent string
	LastLoginLocation  string

	BankIDVerified       bool
	BankIDIdentifierHash *string // Salted SHA-256 of the national identity number.
	BankIDVerifiedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins the first and last name.
func (a *Account) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}

// AccountSummary is the public view of an account returned to clients.
type AccountSummary struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	UserType       UserType  `json:"user_type"`
	PhoneNumber    string    `json:"phone_number"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Postcode       string    `json:"postcode"`
	Country        string    `json:"country"`
	EmailVerified  bool      `json:"email_verified"`
	BankIDVerified bool      `json:"bankid_verified"`
	CreatedAt      time.Time `json:"created_at"`
}

// Summary returns the client-facing projection of the account.
func (a *Account) Summary() *AccountSummary {
	return &AccountSummary{
		ID:             a.ID,
		Email:          a.Email,
		Username:       a.Username,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		UserType:       a.UserType,
		PhoneNumber:    a.PhoneNumber,
		Address:        a.Address,
		City:           a.City,
		Postcode:       a.Postcode,
		Country:        a.Country,
		EmailVerified:  a.EmailVerified,
		BankIDVerified: a.BankIDVerified,
		CreatedAt:      a.CreatedAt,
	}
}

// ProfileUpdate carries the editable profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Address     *string
	City        *string
	Postcode    *string
	Country     *string
}

// Apply copies the non-nil fields onto the account.
func (u *ProfileUpdate) Apply(a *Account) {
	for dst, src := range map[*string]*string{
		&a.FirstName:   u.FirstName,
		&a.LastName:    u.LastName,
		&a.PhoneNumber: u.PhoneNumber,
		&a.Address:     u.Address,
		&a.City:        u.City,
		&a.Postcode:    u.Postcode,
		&a.Country:     u.Country,
	} {
		if src != nil {
			*dst = *src
		}
	}
}
