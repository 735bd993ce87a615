// Package middleware holds the echo middleware specific to the account API.
package middleware

import (
	"log/slog"
	"net/http"

	"valunds/internal/delivery/api/response"
	"valunds/internal/delivery/api/validator"
	deliverycontext "valunds/internal/delivery/context"
	domainerrors "valunds/internal/domain/errors"
	"valunds/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError renders any handler error as the JSON error envelope. Application errors
// keep their status and code; everything unrecognised becomes a generic 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if lockedErr, ok := errors.AsType[*domainerrors.AccountLockedError](err); ok {
		_ = response.Error(c, lockedErr.HTTPCode(), lockedErr.ErrorCode(), lockedErr.Message(), map[string]any{
			"minutes_remaining": lockedErr.MinutesRemaining,
			"locked_until":      lockedErr.Details(),
		})

		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}

		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	if validationErr, ok := errors.AsType[*validator.ValidationError](err); ok {
		_ = response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validationErr.Fields)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
