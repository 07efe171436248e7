package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"roadmap/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <section.item>",
	Short: "Delete a topic",
	Long: `Delete a topic together with its notes and tracked time.

Warning: This operation cannot be undone. Later topics in the same
section move up by one.

Examples:
  roadmap-cli delete 2.4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseCoordinate(args[0])
		if err != nil {
			return err
		}

		deleteCmd := commands.NewDeleteTopicCommand(GetEnv().Tracker.Store, at)
		result, err := deleteCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
