// Package testsupport provides builders for synthetic transcripts used
// across package tests.
package testsupport

import (
	"strings"

	"lyralign/internal/transcript"
)

// WordStream tokenizes text and assigns each word a uniform span of
// wordSeconds starting at start, with the given confidence.
func WordStream(text string, start, wordSeconds, confidence float64) []transcript.Word {
	fields := strings.Fields(text)
	words := make([]transcript.Word, len(fields))
	at := start
	for i, field := range fields {
		words[i] = transcript.Word{
			Text:       field,
			Start:      at,
			End:        at + wordSeconds,
			Confidence: confidence,
		}
		at += wordSeconds
	}
	return words
}

// Record assembles a full transcript from lyrics text and a word stream.
func Record(artist, track, lyricsText string, words []transcript.Word) *transcript.Transcript {
	return &transcript.Transcript{
		Metadata: transcript.Metadata{
			Artist:         artist,
			Track:          track,
			OriginalLyrics: lyricsText,
		},
		Words: words,
	}
}
