package transcript

// Word is one transcribed token. Immutable once loaded; match results
// reference words by index into the transcript stream rather than copying.
type Word struct {
	// Text is the transcribed surface form.
	Text string
	// OriginalText is the pre-correction form when the transcription step
	// rewrote the token; empty otherwise.
	OriginalText string
	// Start and End are seconds from the beginning of the audio, Start <= End.
	Start float64
	End   float64
	// Confidence is the recognizer's reliability score in [0,1]. Absent on
	// the wire means 0.
	Confidence float64
}

// Metadata describes the song the transcript belongs to.
type Metadata struct {
	Artist         string
	Track          string
	OriginalLyrics string
}

// Quality summarizes recoverable defects found while loading.
type Quality struct {
	// ClampedTimestamps counts words whose start/end had to be adjusted to
	// restore monotonic, non-negative timing.
	ClampedTimestamps int
	// DroppedWords counts entries discarded because they had no text.
	DroppedWords int
}

// Transcript is a fully materialized transcription record.
type Transcript struct {
	Metadata Metadata
	Words    []Word
	Quality  Quality
}

// Duration returns the end time of the last word, or 0 for an empty stream.
func (t *Transcript) Duration() float64 {
	if len(t.Words) == 0 {
		return 0
	}
	return t.Words[len(t.Words)-1].End
}

// Degraded reports whether loading had to repair or drop input data.
func (t *Transcript) Degraded() bool {
	return t.Quality.ClampedTimestamps > 0 || t.Quality.DroppedWords > 0 || len(t.Words) == 0
}
