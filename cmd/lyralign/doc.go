// Command lyralign aligns word-level song transcripts against canonical
// lyrics and writes word-synchronized LRC files.
package main
