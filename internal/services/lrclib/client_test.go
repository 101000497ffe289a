package lrclib

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := New(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "Artist Track" {
			t.Errorf("q = %q, want %q", got, "Artist Track")
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "trackName": "Track", "artistName": "Artist", "duration": 201.5,
			 "plainLyrics": "First line\nSecond line", "syncedLyrics": ""},
			{"id": 2, "trackName": "Track (Live)", "artistName": "Artist", "instrumental": true}
		]`))
	})

	results, err := client.Search(context.Background(), "Artist", "Track")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Plain != "First line\nSecond line" || results[0].Duration != 201.5 {
		t.Errorf("first result = %+v", results[0])
	}
	if !results[1].Instrumental {
		t.Error("second result should be instrumental")
	}
}

func TestFetchPlainLyrics(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "plainLyrics": ""},
			{"id": 2, "plainLyrics": "The words we want"}
		]`))
	})

	lyrics, err := client.FetchPlainLyrics(context.Background(), "Artist", "Track")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if lyrics != "The words we want" {
		t.Errorf("lyrics = %q", lyrics)
	}
}

func TestFetchPlainLyricsNoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := client.FetchPlainLyrics(context.Background(), "Artist", "Track")
	if !errors.Is(err, ErrNoLyrics) {
		t.Errorf("error = %v, want ErrNoLyrics", err)
	}
}

func TestSearchServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	if _, err := client.Search(context.Background(), "Artist", "Track"); err == nil {
		t.Fatal("expected an error for a 5xx response")
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	client, err := New(Config{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Search(context.Background(), "  ", ""); err == nil {
		t.Fatal("expected an error for an empty query")
	}
}
