package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"lyralign/internal/services"
)

type wireWord struct {
	Word         string   `json:"word"`
	Start        *float64 `json:"start"`
	End          *float64 `json:"end"`
	Confidence   float64  `json:"confidence"`
	OriginalWord string   `json:"original_word"`
}

type wireMetadata struct {
	Artist         string `json:"artist"`
	Track          string `json:"track"`
	OriginalLyrics string `json:"original_lyrics"`
}

type wirePayload struct {
	Metadata *wireMetadata `json:"metadata"`
	Words    []wireWord    `json:"words"`
}

// Load reads and validates a transcription JSON file.
func Load(path string) (*Transcript, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrInput, "transcript", "load", "open file", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse decodes a transcription record from r. Structural problems (missing
// metadata, missing lyrics, words without timing) are input errors; timing
// defects are repaired and counted in the returned transcript's Quality.
func Parse(r io.Reader) (*Transcript, error) {
	var payload wirePayload
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&payload); err != nil {
		return nil, services.Wrap(services.ErrInput, "transcript", "parse", "decode json", err)
	}

	if payload.Metadata == nil {
		return nil, services.Wrap(services.ErrInput, "transcript", "parse", "missing metadata", nil)
	}
	meta := Metadata{
		Artist:         strings.TrimSpace(payload.Metadata.Artist),
		Track:          strings.TrimSpace(payload.Metadata.Track),
		OriginalLyrics: payload.Metadata.OriginalLyrics,
	}
	if meta.Artist == "" || meta.Track == "" {
		return nil, services.Wrap(services.ErrInput, "transcript", "parse", "metadata.artist and metadata.track are required", nil)
	}
	if strings.TrimSpace(meta.OriginalLyrics) == "" {
		return nil, services.Wrap(services.ErrInput, "transcript", "parse", "metadata.original_lyrics is empty", nil)
	}

	tr := &Transcript{Metadata: meta}
	tr.Words = make([]Word, 0, len(payload.Words))

	for i, entry := range payload.Words {
		if strings.TrimSpace(entry.Word) == "" {
			tr.Quality.DroppedWords++
			continue
		}
		if entry.Start == nil || entry.End == nil {
			return nil, services.Wrap(services.ErrInput, "transcript", "parse",
				fmt.Sprintf("word %d (%q) is missing start or end", i, entry.Word), nil)
		}
		confidence := entry.Confidence
		if confidence < 0 {
			confidence = 0
		} else if confidence > 1 {
			confidence = 1
		}
		tr.Words = append(tr.Words, Word{
			Text:         entry.Word,
			OriginalText: entry.OriginalWord,
			Start:        *entry.Start,
			End:          *entry.End,
			Confidence:   confidence,
		})
	}

	sanitizeTimings(tr)
	return tr, nil
}

// sanitizeTimings restores the timing invariants the aligner depends on:
// non-negative timestamps, start <= end per word, and a non-decreasing
// sequence across the stream. Each repaired word counts once.
func sanitizeTimings(tr *Transcript) {
	var floor float64
	for i := range tr.Words {
		w := &tr.Words[i]
		repaired := false

		if w.Start < 0 {
			w.Start = 0
			repaired = true
		}
		if w.End < w.Start {
			w.End = w.Start
			repaired = true
		}
		if w.Start < floor {
			w.Start = floor
			if w.End < w.Start {
				w.End = w.Start
			}
			repaired = true
		}
		floor = w.End

		if repaired {
			tr.Quality.ClampedTimestamps++
		}
	}
}
