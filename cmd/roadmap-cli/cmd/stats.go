package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roadmap/internal/application/commands"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	Long: `Show overall progress, progress per section and per difficulty,
tracked time and the estimated time left.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewStatsCommand(GetEnv().Tracker.Store).Execute(context.Background())
		if err != nil {
			return err
		}

		bold.Fprintln(color.Output, result.Message)
		summary := newTable()
		summary.AddRow(faint.Sprint("Time spent"), result.TimeSpent)
		summary.AddRow(faint.Sprint("Remaining"), result.Remaining)
		fmt.Fprintln(color.Output, summary)
		fmt.Fprintln(color.Output)

		sections := newTable()
		sections.AddRow(bold.Sprint("#"), bold.Sprint("Section"), bold.Sprint("Progress"))
		for _, s := range result.Sections {
			sections.AddRow(s.Index, s.Title, progressLine(s.Completed, s.Total, s.Percentage))
		}
		fmt.Fprintln(color.Output, sections)
		fmt.Fprintln(color.Output)

		difficulties := newTable()
		difficulties.AddRow(bold.Sprint("Difficulty"), bold.Sprint("Progress"))
		for _, d := range result.Difficulties {
			difficulties.AddRow(difficulty(d.Bucket), progressLine(d.Completed, d.Total, d.Percentage))
		}
		fmt.Fprintln(color.Output, difficulties)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
