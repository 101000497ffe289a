// Package lrclib wraps the lrclib.net lyrics search API.
package lrclib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://lrclib.net/api"
	defaultUserAgent   = "lyralign/dev"
	defaultHTTPTimeout = 15 * time.Second
)

// ErrNoLyrics is returned when the search yields no usable plain lyrics.
var ErrNoLyrics = errors.New("lrclib: no lyrics found")

// Config describes the lrclib client configuration.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Client wraps the lrclib.net REST API.
type Client struct {
	baseURL   *url.URL
	userAgent string
	http      *http.Client
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("lrclib: parse base url: %w", err)
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      client,
	}, nil
}

// Lyric is one search result.
type Lyric struct {
	ID           int64
	Artist       string
	Track        string
	Album        string
	Duration     float64
	Instrumental bool
	Plain        string
	Synced       string
}

// Search queries lrclib for tracks matching the artist and track names.
func (c *Client) Search(ctx context.Context, artist, track string) ([]Lyric, error) {
	if c == nil {
		return nil, errors.New("lrclib: client is nil")
	}
	query := strings.TrimSpace(artist + " " + track)
	if query == "" {
		return nil, errors.New("lrclib: artist and track are required")
	}

	endpoint := c.baseURL.JoinPath("search")
	params := url.Values{}
	params.Set("q", query)
	endpoint.RawQuery = params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("lrclib: build search request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("lrclib: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("lrclib: search failed (%s): %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var payload []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("lrclib: decode search response: %w", err)
	}

	lyrics := make([]Lyric, 0, len(payload))
	for _, entry := range payload {
		lyrics = append(lyrics, Lyric{
			ID:           entry.ID,
			Artist:       entry.ArtistName,
			Track:        entry.TrackName,
			Album:        entry.AlbumName,
			Duration:     entry.Duration,
			Instrumental: entry.Instrumental,
			Plain:        entry.PlainLyrics,
			Synced:       entry.SyncedLyrics,
		})
	}
	return lyrics, nil
}

// FetchPlainLyrics returns the plain lyrics of the best search result: the
// first entry carrying a non-empty plain lyrics body.
func (c *Client) FetchPlainLyrics(ctx context.Context, artist, track string) (string, error) {
	results, err := c.Search(ctx, artist, track)
	if err != nil {
		return "", err
	}
	for _, lyric := range results {
		if strings.TrimSpace(lyric.Plain) != "" {
			return lyric.Plain, nil
		}
	}
	return "", ErrNoLyrics
}

type searchResult struct {
	ID           int64   `json:"id"`
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	AlbumName    string  `json:"albumName"`
	Duration     float64 `json:"duration"`
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}
