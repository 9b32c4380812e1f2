/*
Package diaglog builds the diagnostic logger. Diagnostics never go to the
terminal; they are written as JSON lines to the file named in the settings.
*/
package diaglog

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a debug-level JSON logger appending to path, or a no-op
// logger when path is empty.
func New(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.Sampling = nil
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open diagnostic log %s: %w", path, err)
	}
	return logger.Named("ssic"), nil
}
