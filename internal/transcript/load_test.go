package transcript

import (
	"errors"
	"strings"
	"testing"

	"lyralign/internal/services"
)

const validPayload = `{
  "metadata": {
    "artist": "Artist",
    "track": "Track",
    "original_lyrics": "First line\nSecond line"
  },
  "words": [
    {"word": "first", "start": 1.0, "end": 1.5, "confidence": 0.9},
    {"word": "line", "start": 1.5, "end": 2.0, "confidence": 0.8, "original_word": "lines"}
  ]
}`

func TestParseValid(t *testing.T) {
	tr, err := Parse(strings.NewReader(validPayload))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tr.Metadata.Artist != "Artist" || tr.Metadata.Track != "Track" {
		t.Errorf("metadata = %+v", tr.Metadata)
	}
	if len(tr.Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(tr.Words))
	}
	if tr.Words[1].OriginalText != "lines" {
		t.Errorf("original_word = %q, want %q", tr.Words[1].OriginalText, "lines")
	}
	if tr.Duration() != 2.0 {
		t.Errorf("Duration = %v, want 2.0", tr.Duration())
	}
	if tr.Degraded() {
		t.Error("clean payload should not be degraded")
	}
}

func TestParseDefaultsConfidenceToZero(t *testing.T) {
	payload := `{
  "metadata": {"artist": "A", "track": "T", "original_lyrics": "x"},
  "words": [{"word": "x", "start": 0.0, "end": 0.5}]
}`
	tr, err := Parse(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tr.Words[0].Confidence != 0 {
		t.Errorf("confidence = %v, want 0", tr.Words[0].Confidence)
	}
}

func TestParseInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{{{`},
		{"missing metadata", `{"words": []}`},
		{"missing artist", `{"metadata": {"track": "T", "original_lyrics": "x"}, "words": []}`},
		{"empty lyrics", `{"metadata": {"artist": "A", "track": "T", "original_lyrics": "  \n "}, "words": []}`},
		{"word without timing", `{"metadata": {"artist": "A", "track": "T", "original_lyrics": "x"}, "words": [{"word": "x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.payload))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, services.ErrInput) {
				t.Errorf("expected input error marker, got %v", err)
			}
		})
	}
}

func TestParseEmptyWordStreamIsNotFatal(t *testing.T) {
	payload := `{"metadata": {"artist": "A", "track": "T", "original_lyrics": "x"}, "words": []}`
	tr, err := Parse(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !tr.Degraded() {
		t.Error("empty stream should report degraded quality")
	}
	if tr.Duration() != 0 {
		t.Errorf("Duration = %v, want 0", tr.Duration())
	}
}

func TestSanitizeTimings(t *testing.T) {
	payload := `{
  "metadata": {"artist": "A", "track": "T", "original_lyrics": "x"},
  "words": [
    {"word": "a", "start": -1.0, "end": 0.5},
    {"word": "b", "start": 2.0, "end": 1.0},
    {"word": "c", "start": 0.5, "end": 2.5},
    {"word": "  ", "start": 2.5, "end": 2.6}
  ]
}`
	tr, err := Parse(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tr.Words) != 3 {
		t.Fatalf("expected 3 words after dropping blank, got %d", len(tr.Words))
	}
	if tr.Quality.DroppedWords != 1 {
		t.Errorf("DroppedWords = %d, want 1", tr.Quality.DroppedWords)
	}
	if tr.Quality.ClampedTimestamps != 3 {
		t.Errorf("ClampedTimestamps = %d, want 3", tr.Quality.ClampedTimestamps)
	}

	var floor float64
	for i, w := range tr.Words {
		if w.Start < 0 || w.End < w.Start || w.Start < floor {
			t.Errorf("word %d timing not sanitized: %+v", i, w)
		}
		floor = w.End
	}
	if !tr.Degraded() {
		t.Error("repaired stream should report degraded quality")
	}
}
