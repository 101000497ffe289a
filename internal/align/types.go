package align

// Provenance records how a line's timing was produced.
type Provenance string

const (
	// ProvenanceMatched means the timing came from a transcript window.
	ProvenanceMatched Provenance = "matched"
	// ProvenanceInterpolated means the timing was synthesized between anchors.
	ProvenanceInterpolated Provenance = "interpolated"
	// ProvenanceBreakAdjacent marks interpolated lines that border a detected
	// instrumental break.
	ProvenanceBreakAdjacent Provenance = "break-adjacent"
)

// WordTiming pairs one original lyrics word with its assigned span.
type WordTiming struct {
	Text  string
	Start float64
	End   float64
}

// TimedLine is the final output unit for one lyrics line. Empty lyrics lines
// produce zero-word TimedLines whose At timestamp positions the blank line.
type TimedLine struct {
	// Index is the 0-based position of the line in the input lyrics.
	Index int
	// At is the line's display timestamp, equal to the first word's start for
	// lines with words.
	At float64
	// Words carries the original spellings with their assigned spans.
	Words []WordTiming
	// Provenance tags where the timing came from.
	Provenance Provenance
}

// Start returns the first word's start, or At for empty lines.
func (l TimedLine) Start() float64 {
	if len(l.Words) == 0 {
		return l.At
	}
	return l.Words[0].Start
}

// End returns the last word's end, or At for empty lines.
func (l TimedLine) End() float64 {
	if len(l.Words) == 0 {
		return l.At
	}
	return l.Words[len(l.Words)-1].End
}

// MatchResult is the per-line outcome of the matching pass.
type MatchResult struct {
	LineIndex int
	Matched   bool
	Score     float64
	// WindowStart and WindowLen identify the winning transcript window.
	WindowStart int
	WindowLen   int
	// Words holds the assigned timings when matched.
	Words []WordTiming
}

// Break is a detected instrumental span with no corresponding lyrics.
type Break struct {
	Start float64
	End   float64
}

// Duration returns the break length in seconds.
func (b Break) Duration() float64 {
	return b.End - b.Start
}

// Stats summarizes one alignment run.
type Stats struct {
	TotalLines        int
	MatchedLines      int
	InterpolatedLines int
	EmptyLines        int
	Breaks            int
	// MeanScore averages the scores of matched lines; 0 when nothing matched.
	MeanScore float64
	// Degraded is set when no line matched and the whole track was
	// interpolated from configured default spans.
	Degraded bool
}

// Track is the final ordered timing track.
type Track struct {
	Artist string
	Title  string
	// Duration is the transcript's end time, used for the length header.
	Duration float64
	Lines    []TimedLine
	Breaks   []Break
	Stats    Stats
}
