package logger

import (
	"context"
	"log/slog"
)

// Safe logging helpers. The package Logger may be nil before InitLogger runs
// (and in tests); these fall back to the slog default instead of panicking.

func safeLogger() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}

func SafeInfo(msg string, args ...any) {
	safeLogger().Info(msg, args...)
}

func SafeWarn(msg string, args ...any) {
	safeLogger().Warn(msg, args...)
}

func SafeError(msg string, args ...any) {
	safeLogger().Error(msg, args...)
}

func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	safeLogger().InfoContext(ctx, msg, args...)
}

func SafeWarnContext(ctx context.Context, msg string, args ...any) {
	safeLogger().WarnContext(ctx, msg, args...)
}

func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	safeLogger().ErrorContext(ctx, msg, args...)
}
