package lrc

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// FormatTimestamp renders seconds in the LRC mm:ss.hh form. Negative values
// clamp to zero.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(seconds) / 60
	rem := seconds - float64(minutes)*60
	// %.2f rounding can push the remainder to a full minute.
	if rem >= 59.995 {
		minutes++
		rem = 0
	}
	return fmt.Sprintf("%02d:%05.2f", minutes, rem)
}

// OutputPath builds "<dir>/<Artist> - <Track>.lrc" with both components
// reduced to filesystem-safe characters.
func OutputPath(dir, artist, track string) string {
	name := fmt.Sprintf("%s - %s.lrc", sanitizeComponent(artist), sanitizeComponent(track))
	return filepath.Join(dir, name)
}

func sanitizeComponent(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" {
		return "unknown"
	}
	return cleaned
}
