// Package lyricstore persists fetched lyrics in a local SQLite cache so
// repeated runs against the same track skip the network.
package lyricstore
