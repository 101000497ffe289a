package lyrics

import "strings"

// Line is one line of the canonical lyrics text. Empty lines are kept so the
// output preserves stanza breaks; they carry no words.
type Line struct {
	// Index is the 0-based position of the line in the input text.
	Index int
	// Raw is the line as authored, trimmed of surrounding whitespace.
	Raw string
	// Words are the surface word tokens of the line, in order.
	Words []string
	// Normalized holds the comparison form of each word, parallel to Words.
	Normalized []string
}

// Empty reports whether the line has no word content.
func (l Line) Empty() bool {
	return len(l.Words) == 0
}

// ParseLines splits lyrics text into indexed lines. Line order and blank
// lines are preserved; trailing blank lines are dropped.
func ParseLines(text string) []Line {
	rawLines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(rawLines) > 0 && strings.TrimSpace(rawLines[len(rawLines)-1]) == "" {
		rawLines = rawLines[:len(rawLines)-1]
	}

	lines := make([]Line, 0, len(rawLines))
	for i, raw := range rawLines {
		trimmed := strings.TrimSpace(raw)
		line := Line{Index: i, Raw: trimmed}
		if trimmed != "" {
			words := strings.Fields(trimmed)
			line.Words = words
			line.Normalized = make([]string, len(words))
			for j, word := range words {
				line.Normalized[j] = NormalizeWord(word)
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// WordCount returns the total number of words across all lines.
func WordCount(lines []Line) int {
	total := 0
	for _, line := range lines {
		total += len(line.Words)
	}
	return total
}
