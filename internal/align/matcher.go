package align

import (
	"log/slog"

	"lyralign/internal/logging"
	"lyralign/internal/lyrics"
	"lyralign/internal/transcript"
)

// matcher drives the first pass: a strictly forward, single scan over the
// lyrics lines against the transcript word stream. The cursor is the only
// mutable state of the pipeline and lives here, inside a controller that is
// created fresh for every run and never shared.
type matcher struct {
	cfg    Config
	words  []transcript.Word
	scorer *windowScorer
	logger *slog.Logger

	// cursor marks committed transcript words. It only ever advances.
	cursor int
	// lastMatchEnd is the end time of the most recent matched line, used for
	// the context bonus.
	lastMatchEnd float64
	hasMatch     bool
}

func newMatcher(cfg Config, words []transcript.Word, logger *slog.Logger) *matcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &matcher{
		cfg:    cfg,
		words:  words,
		scorer: newWindowScorer(words),
		logger: logging.NewComponentLogger(logger, "matcher"),
	}
}

// matchAll scans every line in order and returns one MatchResult per line.
// Unmatched lines leave the cursor where it was so later lines search the
// same uncommitted region.
func (m *matcher) matchAll(lines []lyrics.Line) []MatchResult {
	results := make([]MatchResult, len(lines))
	for i, line := range lines {
		results[i] = m.matchLine(line)
		results[i].LineIndex = line.Index
	}
	return results
}

func (m *matcher) matchLine(line lyrics.Line) MatchResult {
	if line.Empty() || m.cursor >= len(m.words) {
		return MatchResult{}
	}

	bestScore := 0.0
	bestStart := -1
	bestSize := 0

	limit := m.cursor + m.cfg.Lookahead
	if limit > len(m.words) {
		limit = len(m.words)
	}

	n := len(line.Words)
	for offset := m.cursor; offset < limit; offset++ {
		remaining := len(m.words) - offset
		lastTried := 0
		for delta := -m.cfg.WindowShrink; delta <= m.cfg.WindowGrow; delta++ {
			// Shrunk candidates are clipped back up to the line length. A
			// window shorter than the line only ever appears at the end of
			// the stream, when fewer words remain than the line needs.
			size := n + delta
			if size < n {
				size = n
			}
			if size > remaining {
				size = remaining
			}
			if size == lastTried {
				continue
			}
			lastTried = size

			score := m.scorer.score(line, offset, size)
			if score > 0 {
				score *= m.contextBonus(offset)
			}
			switch {
			case score > bestScore+scoreEpsilon:
				bestScore = score
				bestStart = offset
				bestSize = size
			case bestStart >= 0 && score > bestScore-scoreEpsilon && betterShape(size, bestSize, n):
				// Equal-scoring candidates: prefer the window whose length
				// matches the line, so timestamps transfer word for word
				// instead of proportionally.
				bestScore = score
				bestStart = offset
				bestSize = size
			}
		}
	}

	if bestStart < 0 || bestScore < m.cfg.MinScore {
		m.logger.Debug("line unmatched",
			logging.Int(logging.FieldLine, line.Index),
			logging.Float64(logging.FieldScore, bestScore))
		return MatchResult{Score: bestScore}
	}

	timings := assignTimings(line, m.words[bestStart:bestStart+bestSize])

	// Commit: the winning window's words are consumed.
	m.cursor = bestStart + bestSize
	m.lastMatchEnd = timings[len(timings)-1].End
	m.hasMatch = true

	m.logger.Debug("line matched",
		logging.Int(logging.FieldLine, line.Index),
		logging.Float64(logging.FieldScore, bestScore),
		logging.Int("window_start", bestStart),
		logging.Int("window_len", bestSize))

	return MatchResult{
		Matched:     true,
		Score:       bestScore,
		WindowStart: bestStart,
		WindowLen:   bestSize,
		Words:       timings,
	}
}

// scoreEpsilon treats float scores this close together as ties.
const scoreEpsilon = 1e-9

// betterShape reports whether candidate window length a fits an n-word line
// better than b: full overlap beats truncation, then closeness to n wins.
func betterShape(a, b, n int) bool {
	if (a >= n) != (b >= n) {
		return a >= n
	}
	da, db := a-n, b-n
	if da < 0 {
		da = -da
	}
	if db < 0 {
		db = -db
	}
	return da < db
}

// contextBonus rewards windows that begin shortly after the previous matched
// line ended, up to x1.5 for a seamless continuation.
func (m *matcher) contextBonus(offset int) float64 {
	if !m.cfg.ContextBonus || !m.hasMatch {
		return 1
	}
	gap := m.words[offset].Start - m.lastMatchEnd
	if gap < 0 || gap >= m.cfg.ContextBonusMaxGap {
		return 1
	}
	bonus := 1 + (m.cfg.ContextBonusMaxGap-gap)/10
	if bonus > 1.5 {
		bonus = 1.5
	}
	return bonus
}

// assignTimings pairs the line's original words with the winning window.
// Equal lengths take transcript timestamps directly; otherwise the window's
// time span is divided proportionally over the line words, keeping original
// spelling with transcript timing either way.
func assignTimings(line lyrics.Line, window []transcript.Word) []WordTiming {
	n := len(line.Words)
	timings := make([]WordTiming, n)

	if len(window) == n {
		for i, word := range line.Words {
			timings[i] = WordTiming{Text: word, Start: window[i].Start, End: window[i].End}
		}
		return timings
	}

	start := window[0].Start
	span := window[len(window)-1].End - start
	for i, word := range line.Words {
		timings[i] = WordTiming{
			Text:  word,
			Start: start + span*float64(i)/float64(n),
			End:   start + span*float64(i+1)/float64(n),
		}
	}
	return timings
}
