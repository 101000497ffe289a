package align

import (
	"log/slog"

	"lyralign/internal/logging"
	"lyralign/internal/lyrics"
	"lyralign/internal/services"
	"lyralign/internal/transcript"
)

// Pipeline runs the two-pass alignment. It holds no per-run state; every Run
// starts a fresh matcher with its cursor at zero, so identical inputs always
// produce identical output.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a pipeline with the given settings. logger may be nil.
func New(cfg Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run aligns the transcript's lyrics against its word stream and returns the
// complete timing track. The transcript must already be loaded and sanitized
// (see the transcript package); lyrics with no word content are an input
// error.
func (p *Pipeline) Run(tr *transcript.Transcript) (*Track, error) {
	lines := lyrics.ParseLines(tr.Metadata.OriginalLyrics)
	if lyrics.WordCount(lines) == 0 {
		return nil, services.Wrap(services.ErrInput, "align", "run", "lyrics contain no words", nil)
	}

	results := newMatcher(p.cfg, tr.Words, p.logger).matchAll(lines)
	timed, breaks := newInterpolator(p.cfg, lines, tr.Duration(), p.logger).resolve(results)

	stats := summarize(lines, results)
	track, err := assemble(lines, timed, breaks, trackMeta{
		artist:   tr.Metadata.Artist,
		title:    tr.Metadata.Track,
		duration: tr.Duration(),
	}, stats)
	if err != nil {
		return nil, err
	}

	if track.Stats.Degraded {
		p.logger.Warn("no lines matched; output is fully interpolated",
			logging.String(logging.FieldArtist, tr.Metadata.Artist),
			logging.String(logging.FieldTrack, tr.Metadata.Track),
			logging.Int("lines", track.Stats.TotalLines))
	} else {
		p.logger.Info("alignment complete",
			logging.Int("matched", track.Stats.MatchedLines),
			logging.Int("interpolated", track.Stats.InterpolatedLines),
			logging.Int("breaks", track.Stats.Breaks),
			logging.Float64("mean_score", track.Stats.MeanScore))
	}

	return track, nil
}

func summarize(lines []lyrics.Line, results []MatchResult) Stats {
	stats := Stats{TotalLines: len(lines)}
	var scoreSum float64
	for i, res := range results {
		switch {
		case lines[i].Empty():
			stats.EmptyLines++
		case res.Matched:
			stats.MatchedLines++
			scoreSum += res.Score
		default:
			stats.InterpolatedLines++
		}
	}
	if stats.MatchedLines > 0 {
		stats.MeanScore = scoreSum / float64(stats.MatchedLines)
	}
	stats.Degraded = stats.MatchedLines == 0
	return stats
}
