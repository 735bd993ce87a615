package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"valunds/config"
	deliverycontext "valunds/internal/delivery/context"
	"valunds/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger sends GORM output to the request-scoped slog logger when there is
// one, so statements carry request_id and account_id. Bound parameters are never
// rendered into the SQL: account lookups carry verification and reset tokens.
type queryLogger struct {
	base  *slog.Logger
	level logger.LogLevel
	slow  time.Duration
}

var (
	_ logger.Interface  = (*queryLogger)(nil)
	_ gorm.ParamsFilter = (*queryLogger)(nil)
)

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &queryLogger{base: base, level: level, slow: slowQueryThreshold}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

// ParamsFilter drops bound parameters so the SQL is logged with placeholders.
func (l *queryLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.base == nil || l.level < threshold {
		return
	}

	l.from(ctx).Log(ctx, level, "gorm: "+fmt.Sprintf(msg, args...))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "Query failed", slog.String("error", err.Error())
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "Slow query", slog.Duration("threshold", l.slow)
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "Query"
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
