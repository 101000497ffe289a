// Package lyrics parses canonical lyrics text into indexed lines and
// normalizes words for comparison against transcript tokens.
//
// Normalization is lossy by design (case folding, punctuation stripping,
// diacritic folding) and is only ever applied to comparison copies; the
// original surface forms are preserved so the output keeps the authored
// spelling.
package lyrics
