// Package lrc renders alignment tracks as enhanced LRC text with
// word-level timing tags.
package lrc
