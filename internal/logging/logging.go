// Package logging builds the zap logger shared by the CLI and the board.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where logs go and how much is written.
type Options struct {
	// Path is a file to append JSON logs to. Empty discards logs, since the
	// terminal belongs to the UI while it runs.
	Path    string
	Verbose bool
}

// New returns a logger for opts. Callers must Sync it on exit.
func New(opts Options) (*zap.Logger, error) {
	if opts.Path == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{opts.Path}
	config.ErrorOutputPaths = []string{opts.Path}
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("griddle"), nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
