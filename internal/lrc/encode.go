package lrc

import (
	"fmt"
	"os"
	"strings"

	"lyralign/internal/align"
	"lyralign/internal/services"
)

// Render encodes the track as enhanced LRC text. Each lyric line carries a
// line timestamp plus a per-word tag:
//
//	[mm:ss.hh]<mm:ss.hh>word1 <mm:ss.hh>word2 ...
//
// Blank lyric lines stay blank lines, and detected instrumental breaks are
// written as marker lines at the break start.
func Render(track *align.Track) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[ar:%s]\n", track.Artist)
	fmt.Fprintf(&b, "[ti:%s]\n", track.Title)
	fmt.Fprintf(&b, "[length:%s]\n", FormatTimestamp(track.Duration))

	breaks := track.Breaks
	bi := 0
	blank := false
	for _, line := range track.Lines {
		for bi < len(breaks) && breaks[bi].End <= line.Start() {
			if !blank {
				b.WriteString("\n")
			}
			b.WriteString(breakMarker(breaks[bi]))
			b.WriteString("\n\n")
			blank = true
			bi++
		}

		if len(line.Words) == 0 {
			if !blank {
				b.WriteString("\n")
				blank = true
			}
			continue
		}

		fmt.Fprintf(&b, "[%s]", FormatTimestamp(line.Start()))
		for i, word := range line.Words {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "<%s>%s", FormatTimestamp(word.Start), word.Text)
		}
		b.WriteString("\n")
		blank = false
	}

	for ; bi < len(breaks); bi++ {
		if !blank {
			b.WriteString("\n")
		}
		b.WriteString(breakMarker(breaks[bi]))
		b.WriteString("\n")
		blank = false
	}

	return b.String()
}

func breakMarker(br align.Break) string {
	return fmt.Sprintf("[%s]♪ ═══════ INSTRUMENTAL [%s] ═══════ ♪",
		FormatTimestamp(br.Start), FormatTimestamp(br.Duration()))
}

// WriteFile renders the track and writes it to path.
func WriteFile(path string, track *align.Track) error {
	if err := os.WriteFile(path, []byte(Render(track)), 0o644); err != nil {
		return services.Wrap(services.ErrTransient, "lrc", "write", "write lrc file", err)
	}
	return nil
}
