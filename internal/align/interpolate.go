package align

import (
	"log/slog"

	"lyralign/internal/logging"
	"lyralign/internal/lyrics"
)

// interpolator drives the second pass: resolving runs of unmatched lines
// between the anchors pass one confirmed, or at the stream boundaries.
type interpolator struct {
	cfg      Config
	lines    []lyrics.Line
	duration float64
	logger   *slog.Logger
}

func newInterpolator(cfg Config, lines []lyrics.Line, duration float64, logger *slog.Logger) *interpolator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &interpolator{
		cfg:      cfg,
		lines:    lines,
		duration: duration,
		logger:   logging.NewComponentLogger(logger, "interpolator"),
	}
}

// resolve turns the MatchResult sequence into one TimedLine per input line,
// synthesizing timings for every unmatched run. Returned breaks are the
// detected instrumental spans.
func (p *interpolator) resolve(results []MatchResult) ([]TimedLine, []Break) {
	timed := make([]TimedLine, len(p.lines))
	var breaks []Break

	for i := 0; i < len(results); {
		if results[i].Matched {
			timed[i] = TimedLine{
				Index:      p.lines[i].Index,
				At:         results[i].Words[0].Start,
				Words:      results[i].Words,
				Provenance: ProvenanceMatched,
			}
			i++
			continue
		}

		// Maximal unmatched run [i, j).
		j := i
		for j < len(results) && !results[j].Matched {
			j++
		}

		prevEnd := 0.0
		if i > 0 {
			prevEnd = timed[i-1].End()
		}
		nextStart, bounded := p.runCeiling(results, i, j, prevEnd)

		runBreaks := p.fillRun(timed, i, j, prevEnd, nextStart, bounded)
		breaks = append(breaks, runBreaks...)
		i = j
	}

	return timed, breaks
}

// runCeiling determines the end of the available span for the run [i, j):
// the next anchor's start, or the transcript end, or a default-span estimate
// when the transcript gives nothing to work with. bounded is false only for
// that last, fully synthetic case.
func (p *interpolator) runCeiling(results []MatchResult, i, j int, prevEnd float64) (float64, bool) {
	if j < len(results) && results[j].Matched {
		return results[j].Words[0].Start, true
	}
	if p.duration > prevEnd {
		return p.duration, true
	}
	return prevEnd + float64(j-i)*p.cfg.DefaultLineSeconds, false
}

func (p *interpolator) wordCount(i, j int) int {
	total := 0
	for k := i; k < j; k++ {
		total += len(p.lines[k].Words)
	}
	return total
}

// fillRun distributes the span [prevEnd, nextStart] over the lines of the
// run: GapReserve of the fill span becomes evenly sized inter-line gaps and
// the rest is split proportionally to word counts, each line subdividing its
// share evenly per word. When the span dwarfs the run's natural duration the
// excess is left as an explicit instrumental break instead of stretched
// words.
func (p *interpolator) fillRun(timed []TimedLine, i, j int, prevEnd, nextStart float64, bounded bool) []Break {
	span := nextStart - prevEnd
	if span < 0 {
		span = 0
	}

	totalWords := p.wordCount(i, j)
	fill := span
	fillStart := prevEnd
	var breaks []Break

	if bounded && totalWords > 0 {
		estimate := float64(totalWords) * p.cfg.SecondsPerWord
		if span > p.cfg.BreakRatio*estimate && span-estimate >= p.cfg.BreakMinSeconds {
			fill = estimate
			fillStart = nextStart - fill
			breaks = append(breaks, Break{Start: prevEnd, End: fillStart})
			p.logger.Debug("instrumental break detected",
				logging.Int(logging.FieldLine, p.lines[i].Index),
				logging.Float64("span", span),
				logging.Float64("estimate", estimate))
		}
	}

	gapBudget := fill * p.cfg.GapReserve
	wordTime := fill - gapBudget
	gap := gapBudget / float64(j-i+1)

	at := fillStart
	for k := i; k < j; k++ {
		at += gap
		line := p.lines[k]
		provenance := ProvenanceInterpolated
		if len(breaks) > 0 && k == i {
			provenance = ProvenanceBreakAdjacent
		}

		if line.Empty() {
			timed[k] = TimedLine{Index: line.Index, At: at, Provenance: provenance}
			continue
		}

		lineDur := 0.0
		if totalWords > 0 {
			lineDur = wordTime * float64(len(line.Words)) / float64(totalWords)
		}
		perWord := lineDur / float64(len(line.Words))

		words := make([]WordTiming, len(line.Words))
		for w, text := range line.Words {
			words[w] = WordTiming{
				Text:  text,
				Start: at + perWord*float64(w),
				End:   at + perWord*float64(w+1),
			}
		}
		timed[k] = TimedLine{
			Index:      line.Index,
			At:         words[0].Start,
			Words:      words,
			Provenance: provenance,
		}
		at += lineDur
	}

	return breaks
}
