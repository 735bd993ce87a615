package impl

import (
	"context"
	"strconv"
	"time"

	"valunds/internal/domain/entity"
	"valunds/internal/domain/repository"
	"valunds/internal/domain/security"
	"valunds/internal/errors"

	"github.com/google/uuid"
)

// loginRecorder writes the audit trail of an authentication attempt. Every method runs
// inside the caller's transaction, which already holds the account row lock.
type loginRecorder struct {
	lockout  *security.LockoutEngine
	lookback time.Duration
}

// recordSuccess clears failure accounting, appends the successful attempt, updates the
// last-login fields and records a NEW_DEVICE_LOGIN event when the device is unfamiliar.
// The novelty check runs against the history before the current attempt is appended.
func (r *loginRecorder) recordSuccess(ctx context.Context, factory repository.RepositoryFactory,
	account *entity.Account, client entity.ClientSignature, now time.Time,
) ([]notice, error) {
	attempts := factory.NewLoginAttemptRepository()

	r.lockout.RecordSuccess(account)

	descriptor := security.ClassifyUserAgent(client.UserAgent)
	location := security.ResolveLocation(client.IPAddress)

	recent, err := attempts.ListSuccessfulSince(ctx, account.ID, now.Add(-r.lookback))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent logins")
	}
	isNew := security.IsNewDevice(recent, descriptor, client.IPAddress)

	attempt := &entity.LoginAttempt{
		ID:          uuid.New(),
		AccountID:   account.ID,
		AttemptedAt: now,
		IPAddress:   client.IPAddress,
		UserAgent:   client.UserAgent,
		Device:      descriptor,
		Location:    location,
		Succeeded:   true,
	}
	if err := attempts.Create(ctx, attempt); err != nil {
		return nil, errors.Wrap(err, "failed to record login attempt")
	}

	account.LastLoginIP = client.IPAddress
	account.LastLoginUserAgent = client.UserAgent
	account.LastLoginLocation = location
	if err := factory.NewAccountRepository().Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	if !isNew {
		return nil, nil
	}

	event := newSecurityEvent(account.ID, entity.SecurityEventNewDeviceLogin, client, now, map[string]any{
		"device_type": descriptor.DeviceType,
		"browser":     descriptor.Browser,
		"os":          descriptor.OS,
		"location":    location,
	})
	if err := factory.NewSecurityEventRepository().Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to record security event")
	}

	item := eventNotice(entity.MailNewLoginDetected, account.Email, account, event, map[string]string{
		"device":   descriptor.DeviceType,
		"browser":  descriptor.Browser,
		"os":       descriptor.OS,
		"location": orUnknown(location),
	})
	item.attemptID = attempt.ID

	return []notice{item}, nil
}

// recordFailure applies lockout accounting for a wrong password, appends the failed
// attempt and, when this failure locked the account, records ACCOUNT_LOCKED.
func (r *loginRecorder) recordFailure(ctx context.Context, factory repository.RepositoryFactory,
	account *entity.Account, client entity.ClientSignature, now time.Time,
) ([]notice, error) {
	locked := r.lockout.RecordFailure(account, now)

	if err := factory.NewAccountRepository().Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	attempt := &entity.LoginAttempt{
		ID:          uuid.New(),
		AccountID:   account.ID,
		AttemptedAt: now,
		IPAddress:   client.IPAddress,
		UserAgent:   client.UserAgent,
		Device:      security.ClassifyUserAgent(client.UserAgent),
		Location:    security.ResolveLocation(client.IPAddress),
	}
	if err := factory.NewLoginAttemptRepository().Create(ctx, attempt); err != nil {
		return nil, errors.Wrap(err, "failed to record login attempt")
	}

	if !locked {
		return nil, nil
	}

	lockedUntil := account.LockedUntil.UTC()
	event := newSecurityEvent(account.ID, entity.SecurityEventAccountLocked, client, now, map[string]any{
		"locked_until":    lockedUntil.Format(time.RFC3339),
		"failed_attempts": account.FailedLoginCount,
	})
	if err := factory.NewSecurityEventRepository().Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to record security event")
	}

	return []notice{eventNotice(entity.MailAccountLocked, account.Email, account, event, map[string]string{
		"failed_attempts": strconv.Itoa(account.FailedLoginCount),
		"minutes":         strconv.Itoa(int(r.lockout.Policy().Duration.Minutes())),
		"locked_until":    lockedUntil.Format(mailTimeLayout),
	})}, nil
}

func newSecurityEvent(accountID uuid.UUID, kind entity.SecurityEventKind, client entity.ClientSignature,
	now time.Time, details map[string]any,
) *entity.SecurityEvent {
	return &entity.SecurityEvent{
		ID:         uuid.New(),
		AccountID:  accountID,
		Kind:       kind,
		OccurredAt: now,
		IPAddress:  client.IPAddress,
		UserAgent:  client.UserAgent,
		Details:    details,
	}
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}

	return value
}
