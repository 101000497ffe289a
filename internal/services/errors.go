package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInput marks malformed or incomplete caller input (bad transcript
	// record, missing metadata, empty lyrics). Fatal; no partial output.
	ErrInput = errors.New("input error")
	// ErrValidation marks configuration or argument validation failures.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks lookups that completed but found nothing.
	ErrNotFound = errors.New("not found")
	// ErrTransient marks failures worth retrying (network, external service).
	ErrTransient = errors.New("transient failure")
	// ErrInvariant marks internal algorithmic defects detected during output
	// validation. Fatal; emitting invalid timing data is worse than none.
	ErrInvariant = errors.New("invariant violation")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatalInput reports whether the error is an input problem the caller must
// fix, as opposed to a transient condition worth retrying.
func IsFatalInput(err error) bool {
	return errors.Is(err, ErrInput) || errors.Is(err, ErrValidation)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
