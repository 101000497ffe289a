package align

import "lyralign/internal/config"

// Config carries every tunable the pipeline uses. Zero values are not
// usable; start from DefaultConfig or FromConfig.
type Config struct {
	// MinScore is the minimum window score accepted as a match.
	MinScore float64
	// WindowShrink/WindowGrow bound candidate window sizes relative to the
	// lyrics line length: N-WindowShrink ... N+WindowGrow, with shrunk
	// candidates clipped back up to N so only the end of the transcript
	// can yield a window shorter than the line.
	WindowShrink int
	WindowGrow   int
	// Lookahead bounds how many transcript words past the cursor are tried
	// as window start offsets before a line is declared unmatched.
	Lookahead int
	// ContextBonus scores windows higher when they start shortly after the
	// previous matched line ended.
	ContextBonus       bool
	ContextBonusMaxGap float64
	// GapReserve is the fraction of an interpolation span reserved as
	// inter-line gaps.
	GapReserve float64
	// SecondsPerWord estimates natural duration for break detection.
	SecondsPerWord float64
	// BreakRatio and BreakMinSeconds decide when an anchor gap is an
	// instrumental break instead of slow lyrics.
	BreakRatio      float64
	BreakMinSeconds float64
	// DefaultLineSeconds is the synthetic per-line span used when the
	// transcript carries no usable timing.
	DefaultLineSeconds float64
}

// DefaultConfig returns the documented default thresholds.
func DefaultConfig() Config {
	return FromConfig(nil)
}

// FromConfig adapts application configuration to pipeline settings. A nil
// cfg yields repository defaults.
func FromConfig(cfg *config.Config) Config {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	return Config{
		MinScore:           cfg.Matching.MinScore,
		WindowShrink:       cfg.Matching.WindowShrink,
		WindowGrow:         cfg.Matching.WindowGrow,
		Lookahead:          cfg.Matching.Lookahead,
		ContextBonus:       cfg.Matching.ContextBonus,
		ContextBonusMaxGap: cfg.Matching.ContextBonusMaxGap,
		GapReserve:         cfg.Interpolation.GapReserve,
		SecondsPerWord:     cfg.Interpolation.SecondsPerWord,
		BreakRatio:         cfg.Interpolation.BreakRatio,
		BreakMinSeconds:    cfg.Interpolation.BreakMinSeconds,
		DefaultLineSeconds: cfg.Interpolation.DefaultLineSeconds,
	}
}
