// Package context carries request-scoped values between the delivery layer and the services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
	accountIDKey
)

// echoRequestIDKey is where the request ID lives on echo.Context.
const echoRequestIDKey = "request_id"

// HeaderXRequestID is echoed on every response and forwarded onto mail jobs.
const HeaderXRequestID = "X-Request-Id"

// GetRequestID returns the request ID stored on c, or a fresh UUID when the
// request never passed the request ID middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID on ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger on ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithAccount tags ctx with the authenticated account. The scoped logger, when
// present, gains an account_id attribute so service logs can be correlated.
func WithAccount(ctx context.Context, accountID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, accountIDKey, accountID)
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("account_id", accountID.String())))
	}

	return ctx
}

// AccountIDFromContext returns the authenticated account on ctx.
func AccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountIDKey).(uuid.UUID)

	return id, ok && id != uuid.Nil
}
