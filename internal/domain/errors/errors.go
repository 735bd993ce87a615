package errors

import (
	"fmt"
	"net/http"
	"time"

	"valunds/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code, so errors derived
// through WithDetails still compare equal to their predefined origin.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password is too weak",
		"",
	)

	ErrPasswordForbiddenWords = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_FORBIDDEN_WORDS",
		"Password is too common",
		"",
	)

	ErrInvalidPhoneNumber = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE_NUMBER",
		"Please enter a valid phone number",
		"",
	)

	ErrMissingToken = NewBaseError(
		http.StatusBadRequest,
		"MISSING_TOKEN",
		"Missing token",
		"",
	)

	ErrTokenAndPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_AND_PASSWORD_REQUIRED",
		"Token and password are required",
		"",
	)

	ErrInvalidVerificationToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_VERIFICATION_TOKEN",
		"Invalid verification token",
		"",
	)

	ErrEmailAlreadyVerified = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_VERIFIED",
		"Email already verified. Please log in.",
		"",
	)

	ErrInvalidResetToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RESET_TOKEN",
		"Invalid or expired reset token",
		"",
	)

	ErrWrongCurrentPassword = NewBaseError(
		http.StatusBadRequest,
		"WRONG_CURRENT_PASSWORD",
		"Current password is incorrect",
		"",
	)

	ErrPasswordIncorrect = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_INCORRECT",
		"Password incorrect",
		"",
	)

	// Expired errors
	ErrVerificationExpired = NewBaseError(
		http.StatusBadRequest,
		"VERIFICATION_EXPIRED",
		"Verification link expired",
		"",
	)

	ErrResetTokenExpired = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_EXPIRED",
		"Reset link has expired. Please request a new one.",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrRefreshTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_MISSING",
		"Refresh token not found",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid refresh token",
		"",
	)

	ErrAccessTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"ACCESS_TOKEN_INVALID",
		"Invalid or expired access token",
		"",
	)

	// Authorization errors
	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		"EMAIL_NOT_VERIFIED",
		"Email not verified. Please check your email for the verification link.",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_INACTIVE",
		"Account is inactive",
		"",
	)

	// Conflict errors
	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"Email already in use",
		"",
	)

	ErrBankIDIdentityConflict = NewBaseError(
		http.StatusConflict,
		"BANKID_IDENTITY_CONFLICT",
		"This BankID identity is already linked to another account",
		"",
	)

	// OAuth errors
	ErrOAuthCancelled = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_CANCELLED",
		"OAuth authentication cancelled",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusBadGateway,
		"OAUTH_FAILED",
		"OAuth authentication failed",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"OAuth state is invalid or expired",
		"",
	)

	ErrOAuthNoEmail = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_NO_EMAIL",
		"No email address returned by the identity provider",
		"",
	)

	// BankID errors
	ErrBankIDNoSession = NewBaseError(
		http.StatusBadRequest,
		"BANKID_NO_SESSION",
		"No active BankID session",
		"",
	)

	ErrBankIDFailed = NewBaseError(
		http.StatusBadRequest,
		"BANKID_FAILED",
		"BankID authentication failed",
		"",
	)

	ErrBankIDCancelled = NewBaseError(
		http.StatusBadRequest,
		"BANKID_CANCELLED",
		"BankID authentication cancelled",
		"",
	)

	// Upstream errors
	ErrProviderUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PROVIDER_UNAVAILABLE",
		"Identity provider is unavailable, please try again later",
		"",
	)

	// Rate limit errors
	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, please try again later",
		"",
	)

	// General errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Could not issue tokens",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// AccountLockedError is returned while an account is inside its lockout window.
type AccountLockedError struct {
	LockedUntil      time.Time
	MinutesRemaining int
}

// NewAccountLockedError builds the lockout outcome for the given deadline as seen at now.
func NewAccountLockedError(lockedUntil, now time.Time) *AccountLockedError {
	return &AccountLockedError{
		LockedUntil:      lockedUntil,
		MinutesRemaining: int(lockedUntil.Sub(now).Minutes()),
	}
}

func (e *AccountLockedError) Error() string {
	return e.Message()
}

func (e *AccountLockedError) HTTPCode() int {
	return http.StatusForbidden
}

func (e *AccountLockedError) ErrorCode() string {
	return "ACCOUNT_LOCKED"
}

func (e *AccountLockedError) Message() string {
	return fmt.Sprintf(
		"Account temporarily locked due to too many failed login attempts. Try again in %d minutes.",
		e.MinutesRemaining,
	)
}

func (e *AccountLockedError) Details() string {
	return e.LockedUntil.UTC().Format(time.RFC3339)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
