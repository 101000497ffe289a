package config

const (
	defaultOutputDir = "~/.local/share/lyralign/output"
	defaultLogDir    = "~/.local/share/lyralign/logs"
	defaultCacheDir  = "~/.cache/lyralign"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	// Matcher defaults. The lookahead bound comes from the search range that
	// proved necessary for transcripts with long non-lyrical stretches.
	defaultMinScore           = 0.4
	defaultWindowShrink       = 2
	defaultWindowGrow         = 4
	defaultLookahead          = 100
	defaultContextBonusMaxGap = 5.0

	// Interpolation defaults. SecondsPerWord approximates sung delivery;
	// four words at 0.5s plus gaps lands near the 3-5s a typical line takes.
	defaultGapReserve         = 0.10
	defaultSecondsPerWord     = 0.5
	defaultBreakRatio         = 3.0
	defaultBreakMinSeconds    = 5.0
	defaultDefaultLineSeconds = 4.0

	defaultLyricsBaseURL        = "https://lrclib.net/api"
	defaultLyricsTimeoutSeconds = 15
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
			CacheDir:  defaultCacheDir,
		},
		Matching: Matching{
			MinScore:           defaultMinScore,
			WindowShrink:       defaultWindowShrink,
			WindowGrow:         defaultWindowGrow,
			Lookahead:          defaultLookahead,
			ContextBonus:       true,
			ContextBonusMaxGap: defaultContextBonusMaxGap,
		},
		Interpolation: Interpolation{
			GapReserve:         defaultGapReserve,
			SecondsPerWord:     defaultSecondsPerWord,
			BreakRatio:         defaultBreakRatio,
			BreakMinSeconds:    defaultBreakMinSeconds,
			DefaultLineSeconds: defaultDefaultLineSeconds,
		},
		Lyrics: Lyrics{
			BaseURL:        defaultLyricsBaseURL,
			TimeoutSeconds: defaultLyricsTimeoutSeconds,
			CacheEnabled:   true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
