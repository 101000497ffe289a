package config

import (
	"errors"
	"fmt"

	"lyralign/internal/services"
)

// Validate ensures the configuration is usable. Failures carry the
// validation marker so callers can tell bad settings from runtime faults.
func (c *Config) Validate() error {
	for _, check := range []func() error{
		c.validateMatching,
		c.validateInterpolation,
		c.validateLogging,
	} {
		if err := check(); err != nil {
			return services.Wrap(services.ErrValidation, "config", "validate", "", err)
		}
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.MinScore <= 0 || c.Matching.MinScore > 1 {
		return errors.New("matching.min_score must be in (0, 1]")
	}
	if c.Matching.WindowShrink < 0 {
		return errors.New("matching.window_shrink must not be negative")
	}
	if c.Matching.WindowGrow < 0 {
		return errors.New("matching.window_grow must not be negative")
	}
	if c.Matching.Lookahead < 1 {
		return errors.New("matching.lookahead must be at least 1")
	}
	if c.Matching.ContextBonusMaxGap < 0 {
		return errors.New("matching.context_bonus_max_gap must not be negative")
	}
	return nil
}

func (c *Config) validateInterpolation() error {
	if c.Interpolation.GapReserve < 0 || c.Interpolation.GapReserve >= 1 {
		return errors.New("interpolation.gap_reserve must be in [0, 1)")
	}
	if c.Interpolation.SecondsPerWord <= 0 {
		return errors.New("interpolation.seconds_per_word must be positive")
	}
	if c.Interpolation.BreakRatio < 1 {
		return errors.New("interpolation.break_ratio must be at least 1")
	}
	if c.Interpolation.BreakMinSeconds < 0 {
		return errors.New("interpolation.break_min_seconds must not be negative")
	}
	if c.Interpolation.DefaultLineSeconds <= 0 {
		return errors.New("interpolation.default_line_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
