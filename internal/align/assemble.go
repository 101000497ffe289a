package align

import (
	"fmt"

	"lyralign/internal/lyrics"
	"lyralign/internal/services"
)

// timeEpsilon absorbs float rounding when comparing assigned timestamps.
const timeEpsilon = 1e-6

// assemble merges the timed lines into the final track and re-validates every
// output invariant. A violation here is an algorithmic defect upstream, so it
// aborts rather than emitting invalid timing data.
func assemble(lines []lyrics.Line, timed []TimedLine, breaks []Break, meta trackMeta, stats Stats) (*Track, error) {
	if len(timed) != len(lines) {
		return nil, invariant(fmt.Sprintf("produced %d lines for %d input lines", len(timed), len(lines)))
	}

	lastEnd := 0.0
	for i, line := range timed {
		if line.Index != lines[i].Index {
			return nil, invariant(fmt.Sprintf("line %d carries index %d", i, line.Index))
		}
		if len(line.Words) != len(lines[i].Words) {
			return nil, invariant(fmt.Sprintf("line %d has %d words, source has %d", i, len(line.Words), len(lines[i].Words)))
		}

		prev := line.Start()
		for w, word := range line.Words {
			if word.End < word.Start-timeEpsilon {
				return nil, invariant(fmt.Sprintf("line %d word %d ends before it starts", i, w))
			}
			if word.Start < prev-timeEpsilon {
				return nil, invariant(fmt.Sprintf("line %d word %d overlaps the previous word", i, w))
			}
			prev = word.End
		}

		if line.Start() < lastEnd-timeEpsilon {
			return nil, invariant(fmt.Sprintf("line %d starts at %.3f before previous line ended at %.3f", i, line.Start(), lastEnd))
		}
		if end := line.End(); end > lastEnd {
			lastEnd = end
		}
	}

	stats.Breaks = len(breaks)
	return &Track{
		Artist:   meta.artist,
		Title:    meta.title,
		Duration: meta.duration,
		Lines:    timed,
		Breaks:   breaks,
		Stats:    stats,
	}, nil
}

type trackMeta struct {
	artist   string
	title    string
	duration float64
}

func invariant(detail string) error {
	return services.Wrap(services.ErrInvariant, "align", "assemble", detail, nil)
}
