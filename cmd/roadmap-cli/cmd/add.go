package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"roadmap/internal/application/commands"
)

var (
	addDifficulty string
	addEstimate   string
)

var addCmd = &cobra.Command{
	Use:   "add <section-index> <title>",
	Short: "Add a topic to a section",
	Long: `Add a topic at the end of a section.

Difficulty defaults to Medium and the estimate to "2 hours". Use
--difficulty none for a topic without a difficulty.

Examples:
  roadmap-cli add 1 "Flexbox"
  roadmap-cli add 3 "Docker" --difficulty hard --estimate "1 week"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		section, err := parseIndex("sectionIndex", args[0])
		if err != nil {
			return err
		}
		title := strings.Join(args[1:], " ")

		addCmd := commands.NewAddTopicCommand(GetEnv().Tracker.Store, section, title, addDifficulty, addEstimate)
		result, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addDifficulty, "difficulty", "d", string(commands.DefaultDifficulty), "Easy, Medium, Hard or none")
	addCmd.Flags().StringVarP(&addEstimate, "estimate", "e", commands.DefaultTimeEstimate, "free-text time estimate")
}
