package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLyrics()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	for name, field := range map[string]*string{
		"paths.output_dir": &c.Paths.OutputDir,
		"paths.log_dir":    &c.Paths.LogDir,
		"paths.cache_dir":  &c.Paths.CacheDir,
	} {
		trimmed := strings.TrimSpace(*field)
		if trimmed == "" {
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return fmt.Errorf("normalize %s: %w", name, err)
		}
		*field = expanded
	}
	return nil
}

func (c *Config) normalizeLyrics() {
	c.Lyrics.BaseURL = strings.TrimRight(strings.TrimSpace(c.Lyrics.BaseURL), "/")
	if c.Lyrics.BaseURL == "" {
		c.Lyrics.BaseURL = defaultLyricsBaseURL
	}
	if c.Lyrics.TimeoutSeconds <= 0 {
		c.Lyrics.TimeoutSeconds = defaultLyricsTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
