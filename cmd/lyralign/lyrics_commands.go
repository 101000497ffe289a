package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lyralign/internal/config"
	"lyralign/internal/logging"
	"lyralign/internal/lyricstore"
	"lyralign/internal/services"
	"lyralign/internal/services/lrclib"
)

func newLyricsCommand(ctx *commandContext) *cobra.Command {
	lyricsCmd := &cobra.Command{
		Use:   "lyrics",
		Short: "Lyrics retrieval utilities",
	}

	lyricsCmd.AddCommand(newLyricsFetchCommand(ctx))

	return lyricsCmd
}

func newLyricsFetchCommand(ctx *commandContext) *cobra.Command {
	var refresh bool
	var outputPath string

	cmd := &cobra.Command{
		Use:   "fetch <artist> <track>",
		Short: "Fetch plain lyrics from lrclib.net, using the local cache when possible",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}

			artist, track := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
			lyrics, cached, err := fetchLyrics(cmd, cfg, artist, track, refresh)
			if err != nil {
				return err
			}
			logger.Info("lyrics retrieved",
				logging.String(logging.FieldArtist, artist),
				logging.String(logging.FieldTrack, track),
				logging.Bool("cached", cached))

			target := strings.TrimSpace(outputPath)
			if target == "" {
				fmt.Fprintln(cmd.OutOrStdout(), lyrics)
				return nil
			}
			if err := os.WriteFile(target, []byte(lyrics), 0o644); err != nil {
				return fmt.Errorf("write lyrics file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the cache and fetch fresh lyrics")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write lyrics to a file instead of stdout")
	return cmd
}

func fetchLyrics(cmd *cobra.Command, cfg *config.Config, artist, track string, refresh bool) (string, bool, error) {
	var store *lyricstore.Store
	if cfg.Lyrics.CacheEnabled {
		opened, err := lyricstore.Open(cfg.LyricsCachePath())
		if err != nil {
			return "", false, err
		}
		defer opened.Close()
		store = opened
	}

	reqCtx := cmd.Context()
	if store != nil && !refresh {
		entry, err := store.Lookup(reqCtx, artist, track)
		if err != nil {
			return "", false, err
		}
		if entry != nil {
			return entry.Plain, true, nil
		}
	}

	client, err := lrclib.New(lrclib.Config{
		BaseURL:    cfg.Lyrics.BaseURL,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.Lyrics.TimeoutSeconds) * time.Second},
	})
	if err != nil {
		return "", false, err
	}
	lyrics, err := client.FetchPlainLyrics(reqCtx, artist, track)
	if errors.Is(err, lrclib.ErrNoLyrics) {
		return "", false, services.Wrap(services.ErrNotFound, "lyrics", "fetch",
			fmt.Sprintf("no lyrics for %s - %s", artist, track), nil)
	}
	if err != nil {
		return "", false, err
	}

	if store != nil {
		if err := store.Save(reqCtx, lyricstore.Entry{Artist: artist, Track: track, Plain: lyrics}); err != nil {
			return "", false, err
		}
	}
	return lyrics, false, nil
}
