package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roadmap/internal/application/commands"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all progress and start from the default roadmap",
	Long: `Replace the roadmap with the default curriculum, discarding completion,
tracked time, notes and added topics.

Warning: This operation cannot be undone. Export first to keep a copy.

Examples:
  roadmap-cli export && roadmap-cli reset --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			warn.Fprintln(color.Output, "This discards all progress. Run again with --yes to confirm.")
			return nil
		}

		e := GetEnv()
		result, err := commands.NewResetCommand(e.Tracker.Store, e.Defaults).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "confirm the reset")
}
