package logging

import (
	"context"

	"go.uber.org/zap"

	"leetpick/internal/domain/ports"
)

// ZapLogger is an adapter around zap.Logger implementing ports.Logger.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

var _ ports.Logger = (*ZapLogger)(nil)

// NewZap creates a new ZapLogger. Arguments are alternating keys and values.
func NewZap(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		return &ZapLogger{}
	}
	return &ZapLogger{logger: logger.Sugar()}
}

// Info logs an informational message.
func (l *ZapLogger) Info(_ context.Context, msg string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Infow(msg, args...)
}

// Warn logs a warning.
func (l *ZapLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Warnw(msg, args...)
}

// Error logs an error message.
func (l *ZapLogger) Error(_ context.Context, msg string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Errorw(msg, args...)
}
