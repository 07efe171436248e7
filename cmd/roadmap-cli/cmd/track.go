package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roadmap/internal/application/commands"
	"roadmap/internal/domain"
)

var trackCmd = &cobra.Command{
	Use:   "track <section.item>",
	Short: "Run the study timer on a topic until interrupted",
	Long: `Start the study timer on a topic and keep it running in the foreground.
Every minute adds one minute to the topic's tracked time. Press Ctrl+C to
stop; completed minutes are saved as they accrue.

Examples:
  roadmap-cli track 1.3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseCoordinate(args[0])
		if err != nil {
			return err
		}

		tracker := GetEnv().Tracker
		before, err := tracker.Store.Topic(at)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		started, err := commands.NewToggleTimerCommand(tracker.Ledger, at).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(color.Output, started.Message)
		faint.Fprintln(color.Output, "Press Ctrl+C to stop.")

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for running := true; running; {
			select {
			case <-ctx.Done():
				running = false
			case <-ticker.C:
				if !tracker.Ledger.IsRunning(at) {
					// the topic was completed or deleted elsewhere in this process
					running = false
				}
			}
		}

		if tracker.Ledger.IsRunning(at) {
			tracker.Ledger.Stop()
		}
		after, err := tracker.Store.Topic(at)
		if err != nil {
			return err
		}
		fmt.Fprintf(color.Output, "\nTimer stopped: %s (+%s, %s total)\n",
			after.Title,
			domain.FormatDuration(after.ActualTimeSpent-before.ActualTimeSpent),
			domain.FormatDuration(after.ActualTimeSpent))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
}
