// Package logging holds the process-wide structured logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.SugaredLogger

// Init initializes the global logger. Output goes to stderr as console
// lines; debug enables debug-level messages.
func Init(debug bool) error {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	globalLogger = logger.Sugar()
	return nil
}

// L returns the global SugaredLogger. A no-op logger is returned if Init
// was never called, so library code can log unconditionally.
func L() *zap.SugaredLogger {
	if globalLogger == nil {
		globalLogger = zap.NewNop().Sugar()
	}
	return globalLogger
}

// Sync flushes any buffered log entries.
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}
