// Package services defines shared utilities consumed by the alignment
// pipeline and external integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that classify failures
//     into input problems (caller must fix), transient conditions (worth
//     retrying), and invariant violations (internal defects that must abort).
//
// Use these helpers when wiring new components so error handling stays
// uniform across the pipeline and CLI.
package services
