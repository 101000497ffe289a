package lyricstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS lyrics (
    artist_key   TEXT NOT NULL,
    track_key    TEXT NOT NULL,
    artist       TEXT NOT NULL,
    track        TEXT NOT NULL,
    plain_lyrics TEXT NOT NULL,
    source       TEXT NOT NULL,
    fetched_at   TEXT NOT NULL,
    PRIMARY KEY (artist_key, track_key)
);
`

// Entry is one cached lyrics record.
type Entry struct {
	Artist    string
	Track     string
	Plain     string
	Source    string
	FetchedAt time.Time
}

// Store manages lyrics persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database at path, creating the
// parent directory and schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Lookup returns the cached entry for the artist/track pair, or nil when the
// pair has not been cached. Keys are matched case-insensitively.
func (s *Store) Lookup(ctx context.Context, artist, track string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT artist, track, plain_lyrics, source, fetched_at
         FROM lyrics WHERE artist_key = ? AND track_key = ?`,
		cacheKey(artist), cacheKey(track),
	)

	var entry Entry
	var fetchedAt string
	err := row.Scan(&entry.Artist, &entry.Track, &entry.Plain, &entry.Source, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup lyrics: %w", err)
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, fetchedAt); parseErr == nil {
		entry.FetchedAt = ts
	}
	return &entry, nil
}

// Save inserts or replaces the cache entry for the artist/track pair.
func (s *Store) Save(ctx context.Context, entry Entry) error {
	fetchedAt := entry.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}
	source := entry.Source
	if source == "" {
		source = "lrclib"
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lyrics (artist_key, track_key, artist, track, plain_lyrics, source, fetched_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT (artist_key, track_key) DO UPDATE SET
             artist = excluded.artist,
             track = excluded.track,
             plain_lyrics = excluded.plain_lyrics,
             source = excluded.source,
             fetched_at = excluded.fetched_at`,
		cacheKey(entry.Artist), cacheKey(entry.Track),
		entry.Artist, entry.Track, entry.Plain, source,
		fetchedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save lyrics: %w", err)
	}
	return nil
}

// Delete removes the cache entry for the artist/track pair if present.
func (s *Store) Delete(ctx context.Context, artist, track string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM lyrics WHERE artist_key = ? AND track_key = ?",
		cacheKey(artist), cacheKey(track),
	)
	if err != nil {
		return fmt.Errorf("delete lyrics: %w", err)
	}
	return nil
}

func cacheKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
