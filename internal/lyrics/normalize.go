package lyrics

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeWord canonicalizes a single word for comparison: diacritics are
// folded, letters are lowercased, and anything that is not a letter or digit
// is dropped. Unknown scripts pass through unchanged apart from case folding.
// The function is total; it never fails.
func NormalizeWord(word string) string {
	if folded, _, err := transform.String(foldDiacritics, word); err == nil {
		word = folded
	}
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// NormalizeLine canonicalizes a whole line, joining the normalized words with
// single spaces. Words that normalize to nothing are dropped.
func NormalizeLine(line string) string {
	fields := strings.Fields(line)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if cleaned := NormalizeWord(field); cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	return strings.Join(parts, " ")
}
