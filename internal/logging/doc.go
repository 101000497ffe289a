// Package logging configures structured slog loggers for the CLI and the
// alignment pipeline.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for machine consumption. Helpers standardize attribute keys
// (component, run_id, artist, track) so log lines stay greppable across
// packages, and NewNop provides a silent logger for tests.
package logging
