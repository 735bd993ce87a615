// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SecurityEventKind is the closed set of security-relevant transitions.
type SecurityEventKind string

const (
	SecurityEventPasswordChanged   SecurityEventKind = "password_changed"
	SecurityEventEmailChanged      SecurityEventKind = "email_changed"
	SecurityEventNewDeviceLogin    SecurityEventKind = "new_device_login"
	SecurityEventAccountLocked     SecurityEventKind = "account_locked"
	SecurityEventSuspiciousLogin   SecurityEventKind = "suspicious_login"
	SecurityEventRecoveryAttempted SecurityEventKind = "recovery_attempted"
)

// String returns the string representation of the SecurityEventKind.
func (k SecurityEventKind) String() string {
	return string(k)
}

// IsValid checks if the SecurityEventKind is a valid value.
func (k SecurityEventKind) IsValid() bool {
	switch k {
	case SecurityEventPasswordChanged,
		SecurityEventEmailChanged,
		SecurityEventNewDeviceLogin,
		SecurityEventAccountLocked,
		SecurityEventSuspiciousLogin,
		SecurityEventRecoveryAttempted:
		return true
	default:
		return false
	}
}

// SecurityEvent is an append-only audit record of a security-relevant state change.
type SecurityEvent struct {
	ID         uuid.UUID         `json:"id"`
	AccountID  uuid.UUID         `json:"account_id"`
	Kind       SecurityEventKind `json:"kind"`
	OccurredAt time.Time         `json:"occurred_at"`
	IPAddress  string            `json:"ip_address,omitempty"`
	UserAgent  string            `json:"user_agent,omitempty"`
	Details    map[string]any    `json:"details,omitempty"`
	Notified   bool              `json:"notified"`
}
