package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

// NewRunID returns a fresh identifier for one alignment run. Stamped on every
// log line of the run so interleaved output from batch invocations can be
// separated.
func NewRunID() string {
	return uuid.NewString()
}

// WithRun returns a logger augmented with a run identifier attribute.
func WithRun(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if runID == "" {
		return logger
	}
	return logger.With(String(FieldRunID, runID))
}
