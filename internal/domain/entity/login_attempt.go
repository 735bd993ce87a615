// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceDescriptor is the normalized view of a raw agent string.
type DeviceDescriptor struct {
	DeviceType string `json:"device_type"` // mobile, tablet, desktop, bot or Unknown
	Browser    string `json:"browser"`     // "Family Version", e.g. "Chrome 120.0.0.0"
	OS         string `json:"os"`          // "Family Version", e.g. "Windows 10"
}

// ClientSignature is the network address and agent string of a request.
type ClientSignature struct {
	IPAddress string
	UserAgent string
}

// LoginAttempt is an immutable audit record of one authentication attempt.
type LoginAttempt struct {
	ID                uuid.UUID        `json:"id"`
	AccountID         uuid.UUID        `json:"account_id"`
	AttemptedAt       time.Time        `json:"attempted_at"`
	IPAddress         string           `json:"ip_address"`
	UserAgent         string           `json:"user_agent"`
	Device            DeviceDescriptor `json:"device"`
	Location          string           `json:"location"`
	Succeeded         bool             `json:"succeeded"`
	FlaggedSuspicious bool             `json:"flagged_suspicious"`
	Notified          bool             `json:"notified"`
}
