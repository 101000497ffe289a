package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
	CacheDir  string `toml:"cache_dir"`
}

// Matching contains thresholds for the sliding-window matcher.
type Matching struct {
	// MinScore is the minimum window score accepted as a match.
	MinScore float64 `toml:"min_score"`
	// WindowShrink and WindowGrow bound candidate window sizes relative to
	// the lyrics line length (N-shrink ... N+grow, never below N).
	WindowShrink int `toml:"window_shrink"`
	WindowGrow   int `toml:"window_grow"`
	// Lookahead bounds how many transcript words past the cursor the matcher
	// searches before declaring a line unmatched.
	Lookahead int `toml:"lookahead"`
	// ContextBonus enables the bonus for windows that start shortly after the
	// previous matched line ended.
	ContextBonus bool `toml:"context_bonus"`
	// ContextBonusMaxGap is the largest inter-line gap (seconds) that still
	// earns a context bonus.
	ContextBonusMaxGap float64 `toml:"context_bonus_max_gap"`
}

// Interpolation contains settings for filling unmatched lines.
type Interpolation struct {
	// GapReserve is the fraction of an anchor span kept back as inter-line
	// gaps instead of word time.
	GapReserve float64 `toml:"gap_reserve"`
	// SecondsPerWord estimates natural line duration for break detection.
	SecondsPerWord float64 `toml:"seconds_per_word"`
	// BreakRatio: a span larger than ratio x estimate is treated as an
	// instrumental break rather than stretched lyrics.
	BreakRatio float64 `toml:"break_ratio"`
	// BreakMinSeconds is the smallest excess that qualifies as a break.
	BreakMinSeconds float64 `toml:"break_min_seconds"`
	// DefaultLineSeconds is the per-line span used when the transcript gives
	// no usable timing at all.
	DefaultLineSeconds float64 `toml:"default_line_seconds"`
}

// Lyrics contains configuration for the lrclib lyrics provider.
type Lyrics struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	CacheEnabled   bool   `toml:"cache_enabled"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for lyralign.
type Config struct {
	Paths         Paths         `toml:"paths"`
	Matching      Matching      `toml:"matching"`
	Interpolation Interpolation `toml:"interpolation"`
	Lyrics        Lyrics        `toml:"lyrics"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/lyralign/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("lyralign.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories lyralign writes to.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir, c.Paths.CacheDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LyricsCachePath returns the location of the lyrics cache database.
func (c *Config) LyricsCachePath() string {
	return filepath.Join(c.Paths.CacheDir, "lyrics.db")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
