package align

import (
	"lyralign/internal/lyrics"
	"lyralign/internal/transcript"
)

// windowScorer scores candidate transcript windows against lyrics lines.
// Transcript words are normalized once up front; the scorer itself is
// read-only after construction.
type windowScorer struct {
	words      []transcript.Word
	normalized []string
}

func newWindowScorer(words []transcript.Word) *windowScorer {
	normalized := make([]string, len(words))
	for i, w := range words {
		normalized[i] = lyrics.NormalizeWord(w.Text)
	}
	return &windowScorer{words: words, normalized: normalized}
}

// score rates the window words[start:start+size] against line using strictly
// positional pairing over the overlap min(N, size). Per position:
//
//	wordScore = similarity x positionWeight(i, size) x confidence
//
// with the similarity term doubled (then clamped to 1) on an exact match.
// The aggregate is sum(wordScore) / sum(positionWeight); a whole-line x1.2
// bonus applies only when the window covers the entire line and every
// position matched exactly. Truncated windows never earn it, or an exact
// fragment would outscore the full line it came from.
func (s *windowScorer) score(line lyrics.Line, start, size int) float64 {
	overlap := len(line.Words)
	if size < overlap {
		overlap = size
	}
	if overlap == 0 {
		return 0
	}

	var sum, weightSum float64
	allExact := overlap == len(line.Words)
	for i := 0; i < overlap; i++ {
		lineWord := line.Normalized[i]
		windowWord := s.normalized[start+i]

		sim := Similarity(lineWord, windowWord)
		if Exact(lineWord, windowWord) {
			sim *= 2
			if sim > 1 {
				sim = 1
			}
		} else {
			allExact = false
		}

		weight := PositionWeight(i, size)
		sum += sim * weight * s.words[start+i].Confidence
		weightSum += weight
	}

	if weightSum == 0 {
		return 0
	}
	raw := sum / weightSum
	if allExact {
		raw *= 1.2
	}
	return raw
}
