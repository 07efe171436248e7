package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roadmap/internal/application/commands"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Suggest the next topics to study",
	Long: `List the first incomplete topics in roadmap order.

Examples:
  roadmap-cli focus
  roadmap-cli track $(roadmap-cli focus --first)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewFocusCommand(GetEnv().Tracker.Store).Execute(context.Background())
		if err != nil {
			return err
		}

		first, _ := cmd.Flags().GetBool("first")
		if len(result.Topics) == 0 {
			if first {
				return errors.New(result.Message)
			}
			faint.Fprintln(color.Output, result.Message)
			return nil
		}
		if first {
			fmt.Println(result.Topics[0].Coordinate.String())
			return nil
		}

		fmt.Fprintln(color.Output, topicTable(result.Topics, true))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().Bool("first", false, "print only the coordinate of the first topic")
}
