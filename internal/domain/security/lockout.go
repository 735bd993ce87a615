// Package security holds the account-security rules shared by every authentication flow:
// failure accounting and lockout, device fingerprinting, single-use tokens and identifier hashing.
package security

import (
	"time"

	"valunds/internal/domain/entity"
	domainerrors "valunds/internal/domain/errors"
)

// LockoutPolicy configures brute-force protection.
type LockoutPolicy struct {
	Threshold int           // failures that trigger a lock
	Window    time.Duration // failures older than this no longer count
	Duration  time.Duration // how long a lock lasts
}

// LockoutEngine applies LockoutPolicy to an account record. It never persists anything;
// callers hold the row lock and write the account back.
type LockoutEngine struct {
	policy LockoutPolicy
}

// NewLockoutEngine creates a LockoutEngine.
func NewLockoutEngine(policy LockoutPolicy) *LockoutEngine {
	return &LockoutEngine{policy: policy}
}

// Policy returns the configured policy.
func (e *LockoutEngine) Policy() LockoutPolicy {
	return e.policy
}

// CheckLocked rejects accounts inside their lock window. An expired lock is cleared
// together with the failure counter and changed reports that the record needs saving.
func (e *LockoutEngine) CheckLocked(account *entity.Account, now time.Time) (changed bool, err error) {
	if account.LockedUntil == nil {
		return false, nil
	}

	if now.Before(*account.LockedUntil) {
		return false, domainerrors.NewAccountLockedError(*account.LockedUntil, now)
	}

	account.LockedUntil = nil
	account.FailedLoginCount = 0

	return true, nil
}

// RecordFailure counts one failed credential check and reports whether it locked the account.
func (e *LockoutEngine) RecordFailure(account *entity.Account, now time.Time) bool {
	if account.LastFailedLoginAt != nil && now.Sub(*account.LastFailedLoginAt) > e.policy.Window {
		account.FailedLoginCount = 0
	}

	account.FailedLoginCount++
	stamp := now
	account.LastFailedLoginAt = &stamp

	if account.FailedLoginCount < e.policy.Threshold {
		return false
	}

	lockedUntil := now.Add(e.policy.Duration)
	account.LockedUntil = &lockedUntil

	return true
}

// RecordSuccess clears failure accounting and reports whether anything changed.
func (e *LockoutEngine) RecordSuccess(account *entity.Account) bool {
	if account.FailedLoginCount == 0 && account.LastFailedLoginAt == nil {
		return false
	}

	account.FailedLoginCount = 0
	account.LastFailedLoginAt = nil

	return true
}

// Reset clears every lockout field, used after a successful password reset.
func (e *LockoutEngine) Reset(account *entity.Account) {
	account.FailedLoginCount = 0
	account.LastFailedLoginAt = nil
	account.LockedUntil = nil
}
