// Package logging configures the process-wide zap logger.
//
// The CLI logs to stderr so the two-line generation summary on stdout stays
// machine-consumable. Initialize must be called before the first log line;
// until then Logger is a nop.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the shared sugared logger. Nop until Initialize is called.
var Logger = zap.NewNop().Sugar()

// Initialize builds the global logger. With verbose set, debug lines are
// emitted as well.
func Initialize(verbose bool) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	Logger = logger.Sugar()
	return nil
}

// Sync flushes buffered log entries. Safe to call on the nop logger.
func Sync() {
	_ = Logger.Sync()
}
