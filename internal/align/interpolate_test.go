package align

import (
	"testing"

	"lyralign/internal/lyrics"
)

// anchorResult builds a matched result spreading the line's words evenly
// over [start, end].
func anchorResult(line lyrics.Line, start, end float64) MatchResult {
	per := (end - start) / float64(len(line.Words))
	words := make([]WordTiming, len(line.Words))
	for i, text := range line.Words {
		words[i] = WordTiming{
			Text:  text,
			Start: start + per*float64(i),
			End:   start + per*float64(i+1),
		}
	}
	return MatchResult{LineIndex: line.Index, Matched: true, Score: 1, Words: words}
}

func requireMonotone(t *testing.T, timed []TimedLine) {
	t.Helper()
	lastEnd := 0.0
	for i, line := range timed {
		prev := line.Start()
		for w, word := range line.Words {
			if word.End < word.Start || word.Start < prev {
				t.Fatalf("line %d word %d out of order: [%v, %v] after %v", i, w, word.Start, word.End, prev)
			}
			prev = word.End
		}
		if line.Start() < lastEnd-timeEpsilon {
			t.Fatalf("line %d starts at %v before previous end %v", i, line.Start(), lastEnd)
		}
		if end := line.End(); end > lastEnd {
			lastEnd = end
		}
	}
}

func TestResolveAllMatched(t *testing.T) {
	lines := lyrics.ParseLines("alpha beta\ngamma delta")
	results := []MatchResult{
		anchorResult(lines[0], 0, 2),
		anchorResult(lines[1], 3, 5),
	}

	timed, breaks := newInterpolator(DefaultConfig(), lines, 10, nil).resolve(results)
	if len(breaks) != 0 {
		t.Errorf("got %d breaks, want 0", len(breaks))
	}
	for i, line := range timed {
		if line.Provenance != ProvenanceMatched {
			t.Errorf("line %d provenance = %q, want matched", i, line.Provenance)
		}
	}
	if timed[0].At != 0 || timed[1].At != 3 {
		t.Errorf("line starts = %v, %v, want 0, 3", timed[0].At, timed[1].At)
	}
	requireMonotone(t, timed)
}

func TestResolveRunBetweenAnchors(t *testing.T) {
	lines := lyrics.ParseLines("alpha beta\ngap line here\nomega tail")
	results := []MatchResult{
		anchorResult(lines[0], 0, 2),
		{LineIndex: 1},
		anchorResult(lines[2], 6, 8),
	}

	timed, breaks := newInterpolator(DefaultConfig(), lines, 10, nil).resolve(results)
	if len(breaks) != 0 {
		t.Fatalf("got %d breaks, want 0", len(breaks))
	}

	mid := timed[1]
	if mid.Provenance != ProvenanceInterpolated {
		t.Errorf("provenance = %q, want interpolated", mid.Provenance)
	}
	if len(mid.Words) != 3 {
		t.Fatalf("got %d words, want 3", len(mid.Words))
	}
	if mid.Start() <= 2 || mid.End() >= 6 {
		t.Errorf("interpolated span [%v, %v] must sit strictly inside (2, 6)", mid.Start(), mid.End())
	}
	// The reserve keeps a gap on both sides of the run.
	wantGap := (6.0 - 2.0) * DefaultConfig().GapReserve / 2
	if got := mid.Start() - 2; !closeTo(got, wantGap) {
		t.Errorf("leading gap = %v, want %v", got, wantGap)
	}
	if got := 6 - mid.End(); !closeTo(got, wantGap) {
		t.Errorf("trailing gap = %v, want %v", got, wantGap)
	}
	requireMonotone(t, timed)
}

func TestResolveWordCountProportion(t *testing.T) {
	// One long and one short line in the same run: the long line gets three
	// times the word time.
	lines := lyrics.ParseLines("anchor start\nsix words in this longer line\na b\nanchor end")
	results := []MatchResult{
		anchorResult(lines[0], 0, 1),
		{LineIndex: 1},
		{LineIndex: 2},
		anchorResult(lines[3], 5, 6),
	}

	timed, _ := newInterpolator(DefaultConfig(), lines, 10, nil).resolve(results)

	long := timed[1].End() - timed[1].Start()
	short := timed[2].End() - timed[2].Start()
	if !closeTo(long, 3*short) {
		t.Errorf("line durations %v and %v, want 3:1 split", long, short)
	}
	requireMonotone(t, timed)
}

func TestResolveLeadingRun(t *testing.T) {
	lines := lyrics.ParseLines("early words\nanchor line")
	results := []MatchResult{
		{LineIndex: 0},
		anchorResult(lines[1], 4, 6),
	}

	timed, breaks := newInterpolator(DefaultConfig(), lines, 10, nil).resolve(results)
	if len(breaks) != 0 {
		t.Fatalf("got %d breaks, want 0", len(breaks))
	}
	if timed[0].Start() < 0 || timed[0].End() > 4 {
		t.Errorf("leading run span [%v, %v] must stay within [0, 4]", timed[0].Start(), timed[0].End())
	}
	requireMonotone(t, timed)
}

func TestResolveTrailingRunUsesDuration(t *testing.T) {
	lines := lyrics.ParseLines("anchor line\nlate words")
	results := []MatchResult{
		anchorResult(lines[0], 0, 2),
		{LineIndex: 1},
	}

	timed, breaks := newInterpolator(DefaultConfig(), lines, 5, nil).resolve(results)
	if len(breaks) != 0 {
		t.Fatalf("got %d breaks, want 0", len(breaks))
	}
	if timed[1].Start() <= 2 || timed[1].End() > 5 {
		t.Errorf("trailing run span [%v, %v] must sit in (2, 5]", timed[1].Start(), timed[1].End())
	}
	requireMonotone(t, timed)
}

func TestResolveNoAnchors(t *testing.T) {
	// Nothing matched and no usable duration: lines fall back to the
	// configured default span, still in order.
	lines := lyrics.ParseLines("first line here\nsecond line here")
	results := []MatchResult{{LineIndex: 0}, {LineIndex: 1}}

	timed, breaks := newInterpolator(DefaultConfig(), lines, 0, nil).resolve(results)
	if len(breaks) != 0 {
		t.Fatalf("got %d breaks, want 0", len(breaks))
	}
	total := timed[1].End()
	want := 2 * DefaultConfig().DefaultLineSeconds
	if total > want+timeEpsilon {
		t.Errorf("synthetic track ends at %v, want <= %v", total, want)
	}
	requireMonotone(t, timed)
}

func TestResolveInstrumentalBreak(t *testing.T) {
	lines := lyrics.ParseLines("anchor line\ngap line right here\nanchor again")
	results := []MatchResult{
		anchorResult(lines[0], 0, 2),
		{LineIndex: 1},
		anchorResult(lines[2], 60, 62),
	}

	timed, breaks := newInterpolator(DefaultConfig(), lines, 70, nil).resolve(results)
	if len(breaks) != 1 {
		t.Fatalf("got %d breaks, want 1", len(breaks))
	}

	// Four words at the configured seconds per word: the fill is 2s placed
	// directly before the next anchor, the rest is the break.
	br := breaks[0]
	if br.Start != 2 || !closeTo(br.End, 58) {
		t.Errorf("break = [%v, %v], want [2, 58]", br.Start, br.End)
	}
	if !closeTo(br.Duration(), 56) {
		t.Errorf("break duration = %v, want 56", br.Duration())
	}

	mid := timed[1]
	if mid.Provenance != ProvenanceBreakAdjacent {
		t.Errorf("provenance = %q, want break-adjacent", mid.Provenance)
	}
	if mid.Start() < br.End || mid.End() > 60 {
		t.Errorf("filled line [%v, %v] must sit in [%v, 60]", mid.Start(), mid.End(), br.End)
	}
	requireMonotone(t, timed)
}

func TestResolveShortGapIsNotABreak(t *testing.T) {
	// 4s between anchors for a 4-word line: generous but below both the
	// ratio and the absolute minimum.
	lines := lyrics.ParseLines("anchor line\ngap line right here\nanchor again")
	results := []MatchResult{
		anchorResult(lines[0], 0, 2),
		{LineIndex: 1},
		anchorResult(lines[2], 6, 8),
	}

	_, breaks := newInterpolator(DefaultConfig(), lines, 10, nil).resolve(results)
	if len(breaks) != 0 {
		t.Errorf("got %d breaks, want 0", len(breaks))
	}
}

func TestResolveEmptyLineInRun(t *testing.T) {
	lines := lyrics.ParseLines("alpha beta\n\ngamma delta")
	if len(lines) != 3 {
		t.Fatalf("expected interior blank preserved, got %d lines", len(lines))
	}
	results := []MatchResult{{LineIndex: 0}, {LineIndex: 1}, {LineIndex: 2}}

	timed, _ := newInterpolator(DefaultConfig(), lines, 0, nil).resolve(results)

	blank := timed[1]
	if len(blank.Words) != 0 {
		t.Fatalf("blank line got %d words", len(blank.Words))
	}
	if blank.At < timed[0].End() || blank.At > timed[2].Start() {
		t.Errorf("blank line at %v outside [%v, %v]", blank.At, timed[0].End(), timed[2].Start())
	}
	requireMonotone(t, timed)
}

func closeTo(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
