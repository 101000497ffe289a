// Package align matches lyrics lines against a noisy word-level transcript
// and produces a complete, monotonic word timing track.
//
// The pipeline runs two passes. Pass one slides candidate windows over the
// transcript stream, scoring each against the current lyrics line and
// committing a single forward-only cursor on every accepted match. Pass two
// resolves the remaining unmatched lines by interpolating between the
// confirmed matches (anchors), reserving a fraction of each span as
// inter-line gaps and detecting instrumental breaks so words are never
// stretched across long non-lyrical stretches. A final assembly step
// re-validates every output invariant and refuses to emit a track that
// breaks them.
//
// The whole computation is deterministic: identical inputs produce identical
// output, and each run starts from a fresh cursor.
package align
