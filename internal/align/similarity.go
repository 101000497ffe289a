package align

import "math"

// Similarity computes a bounded word similarity in [0,1] from edit distance:
// 1 minus the Levenshtein distance divided by the longer string's length.
// Both arguments must already be normalized (see lyrics.NormalizeWord).
// Two empty strings are identical and score 1.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra := []rune(a)
	rb := []rune(b)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	if longer == 0 {
		return 1
	}
	return 1 - float64(editDistance(ra, rb))/float64(longer)
}

// Exact reports whether two normalized words are identical.
func Exact(a, b string) bool {
	return a == b
}

// PositionWeight returns the weighting curve 1 - |pos - center| / (length x 1.5)
// with center = length / 2, clamped to 0. The weight peaks at the window
// center and decays toward the edges, where transcription noise concentrates.
func PositionWeight(pos, windowLen int) float64 {
	if windowLen <= 0 {
		return 0
	}
	center := float64(windowLen) / 2
	weight := 1 - math.Abs(float64(pos)-center)/(float64(windowLen)*1.5)
	if weight < 0 {
		return 0
	}
	return weight
}

// editDistance is the classic two-row Levenshtein computation over runes.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
