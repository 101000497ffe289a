// Package transcript loads and validates word-level transcription records.
//
// The input is the JSON a word-timestamp transcription run produces: song
// metadata (artist, track, original lyrics text) plus an ordered stream of
// words with start/end seconds and optional per-word confidence. Loading
// turns the duck-typed wire format into explicit record types with defaulted
// optional fields, rejects structurally broken input outright, and sanitizes
// recoverable timing problems (negative or non-monotonic timestamps) while
// counting them so callers can report degraded input quality.
package transcript
