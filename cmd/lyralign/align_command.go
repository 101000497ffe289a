package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"lyralign/internal/align"
	"lyralign/internal/logging"
	"lyralign/internal/lrc"
	"lyralign/internal/services"
	"lyralign/internal/transcript"
)

type alignReport struct {
	Artist            string  `json:"artist"`
	Track             string  `json:"track"`
	Output            string  `json:"output"`
	DurationSeconds   float64 `json:"duration_seconds"`
	TotalLines        int     `json:"total_lines"`
	MatchedLines      int     `json:"matched_lines"`
	InterpolatedLines int     `json:"interpolated_lines"`
	EmptyLines        int     `json:"empty_lines"`
	Breaks            int     `json:"breaks"`
	MeanScore         float64 `json:"mean_score"`
	Degraded          bool    `json:"degraded"`
}

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "align <transcript.json>",
		Short: "Align a transcript against its lyrics and write an enhanced LRC file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}

			tr, err := transcript.Load(args[0])
			if err != nil {
				return reportInputFailure(logger, err)
			}
			if tr.Degraded() {
				logger.Warn("transcript required repairs",
					logging.Int("clamped_timestamps", tr.Quality.ClampedTimestamps),
					logging.Int("dropped_words", tr.Quality.DroppedWords))
			}

			track, err := align.New(align.FromConfig(cfg), logger).Run(tr)
			if err != nil {
				return reportInputFailure(logger, err)
			}

			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = lrc.OutputPath(cfg.Paths.OutputDir, track.Artist, track.Title)
			}
			if err := lrc.WriteFile(target, track); err != nil {
				return err
			}

			report := alignReport{
				Artist:            track.Artist,
				Track:             track.Title,
				Output:            target,
				DurationSeconds:   track.Duration,
				TotalLines:        track.Stats.TotalLines,
				MatchedLines:      track.Stats.MatchedLines,
				InterpolatedLines: track.Stats.InterpolatedLines,
				EmptyLines:        track.Stats.EmptyLines,
				Breaks:            track.Stats.Breaks,
				MeanScore:         track.Stats.MeanScore,
				Degraded:          track.Stats.Degraded,
			}
			if jsonOutput {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Field", "Value"},
				[][]string{
					{"Artist", report.Artist},
					{"Track", report.Track},
					{"Length", lrc.FormatTimestamp(report.DurationSeconds)},
					{"Lines", fmt.Sprintf("%d", report.TotalLines)},
					{"Matched", fmt.Sprintf("%d", report.MatchedLines)},
					{"Interpolated", fmt.Sprintf("%d", report.InterpolatedLines)},
					{"Breaks", fmt.Sprintf("%d", report.Breaks)},
					{"Mean score", fmt.Sprintf("%.2f", report.MeanScore)},
				},
				[]columnAlignment{alignLeft, alignRight},
				out,
			))
			if report.Degraded {
				fmt.Fprintln(out, "Warning: no lines matched the transcript; all timing was interpolated.")
			}
			fmt.Fprintf(out, "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination for the LRC file (default: output_dir/Artist - Track.lrc)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run report as JSON")
	return cmd
}

// reportInputFailure logs input-class failures for the operator before the
// error propagates to cobra. Transient failures pass through silently.
func reportInputFailure(logger *slog.Logger, err error) error {
	if services.IsFatalInput(err) {
		logger.Error("transcript rejected, fix the input file before retrying",
			logging.Error(err))
	}
	return err
}
