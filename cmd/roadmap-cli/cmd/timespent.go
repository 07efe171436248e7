package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roadmap/internal/application/commands"
	"roadmap/internal/domain"
)

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Show tracked study time",
	Long: `Show the study time tracked per topic, the total and the estimated
time left for incomplete topics.

Examples:
  roadmap-cli time`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetEnv().Tracker.Store
		result, err := commands.NewStatsCommand(store).Execute(context.Background())
		if err != nil {
			return err
		}

		var tracked []domain.TopicRef
		for _, ref := range store.Snapshot().Refs() {
			if ref.Topic.ActualTimeSpent > 0 {
				tracked = append(tracked, ref)
			}
		}

		if len(tracked) == 0 {
			faint.Fprintln(color.Output, "No time tracked yet.")
		} else {
			fmt.Fprintln(color.Output, topicTable(tracked, true))
			fmt.Fprintln(color.Output)
		}

		tbl := newTable()
		tbl.AddRow(bold.Sprint("Time spent"), result.TimeSpent)
		tbl.AddRow(bold.Sprint("Remaining"), result.Remaining)
		fmt.Fprintln(color.Output, tbl)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timeCmd)
}
