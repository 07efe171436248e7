package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"roadmap/internal/application/commands"
)

var (
	completeUndo   bool
	completeToggle bool
)

var completeCmd = &cobra.Command{
	Use:   "complete <section.item>",
	Short: "Mark a topic complete",
	Long: `Mark a topic complete, or incomplete with --undo.

Completing a topic records when it was completed; marking it incomplete
clears that date but keeps the tracked time.

Examples:
  roadmap-cli complete 1.0
  roadmap-cli complete 1.0 --undo
  roadmap-cli complete 1.0 --toggle`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseCoordinate(args[0])
		if err != nil {
			return err
		}

		mode := commands.CompleteMark
		switch {
		case completeUndo && completeToggle:
			return fmt.Errorf("--undo and --toggle cannot be combined")
		case completeUndo:
			mode = commands.CompleteUnmark
		case completeToggle:
			mode = commands.CompleteToggle
		}

		result, err := commands.NewCompleteCommand(GetEnv().Tracker.Store, at, mode).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
	completeCmd.Flags().BoolVarP(&completeUndo, "undo", "u", false, "mark the topic incomplete")
	completeCmd.Flags().BoolVarP(&completeToggle, "toggle", "t", false, "flip the current state")
}
