package lrc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lyralign/internal/align"
)

func sampleTrack() *align.Track {
	return &align.Track{
		Artist:   "Artist",
		Title:    "Track",
		Duration: 125.5,
		Lines: []align.TimedLine{
			{
				Index: 0,
				At:    1,
				Words: []align.WordTiming{
					{Text: "First", Start: 1, End: 1.5},
					{Text: "line", Start: 1.5, End: 2},
				},
				Provenance: align.ProvenanceMatched,
			},
			{Index: 1, At: 2.5, Provenance: align.ProvenanceInterpolated},
			{
				Index: 2,
				At:    3,
				Words: []align.WordTiming{
					{Text: "Second", Start: 3, End: 3.5},
					{Text: "verse", Start: 3.5, End: 4},
				},
				Provenance: align.ProvenanceInterpolated,
			},
		},
	}
}

func TestRenderHeadersAndLines(t *testing.T) {
	got := Render(sampleTrack())

	want := strings.Join([]string{
		"[ar:Artist]",
		"[ti:Track]",
		"[length:02:05.50]",
		"[00:01.00]<00:01.00>First <00:01.50>line",
		"",
		"[00:03.00]<00:03.00>Second <00:03.50>verse",
		"",
	}, "\n")
	if got != want {
		t.Errorf("rendered output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderBreakMarker(t *testing.T) {
	track := &align.Track{
		Artist:   "Artist",
		Title:    "Track",
		Duration: 120,
		Breaks:   []align.Break{{Start: 2, End: 58}},
		Lines: []align.TimedLine{
			{
				Index:      0,
				At:         0,
				Words:      []align.WordTiming{{Text: "Opening", Start: 0, End: 2}},
				Provenance: align.ProvenanceMatched,
			},
			{
				Index:      1,
				At:         58.5,
				Words:      []align.WordTiming{{Text: "Returning", Start: 58.5, End: 60}},
				Provenance: align.ProvenanceBreakAdjacent,
			},
		},
	}

	got := Render(track)
	marker := "[00:02.00]♪ ═══════ INSTRUMENTAL [00:56.00] ═══════ ♪"
	if !strings.Contains(got, marker) {
		t.Fatalf("output missing break marker %q:\n%s", marker, got)
	}

	lines := strings.Split(got, "\n")
	idx := -1
	for i, line := range lines {
		if line == marker {
			idx = i
		}
	}
	if idx <= 0 || lines[idx-1] != "" || lines[idx+1] != "" {
		t.Errorf("break marker not surrounded by blank lines:\n%s", got)
	}

	// The marker sits between the two sung lines.
	first := strings.Index(got, "<00:00.00>Opening")
	second := strings.Index(got, "<00:58.50>Returning")
	markerAt := strings.Index(got, marker)
	if !(first < markerAt && markerAt < second) {
		t.Errorf("break marker out of order:\n%s", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.lrc")
	if err := WriteFile(path, sampleTrack()); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != Render(sampleTrack()) {
		t.Error("file contents differ from rendered track")
	}
}
