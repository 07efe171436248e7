package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roadmap/internal/application/commands"
)

var listSection int

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List sections and topics with progress",
	Long: `List every section with its topics, coordinates and progress.

A query keeps only topics whose title contains it, ignoring case.
Coordinates (section.item) are the ones other commands take.

Examples:
  roadmap-cli list
  roadmap-cli list css
  roadmap-cli list --section 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		query := strings.Join(args, " ")

		result, err := commands.NewListCommand(GetEnv().Tracker.Store, query, listSection).Execute(ctx)
		if err != nil {
			return err
		}

		if len(result.Sections) == 0 {
			faint.Fprintln(color.Output, "No topics match.")
			return nil
		}

		for _, s := range result.Sections {
			fmt.Fprintf(color.Output, "%s %s\n", bold.Sprintf("%d. %s", s.Index, s.Title), progressLine(s.Completed, s.Total, s.Percentage))
			if len(s.Topics) == 0 {
				faint.Fprintln(color.Output, "   none")
				fmt.Fprintln(color.Output)
				continue
			}
			fmt.Fprintln(color.Output, topicTable(s.Topics, false))
			fmt.Fprintln(color.Output)
		}

		st := result.Stats
		fmt.Fprintf(color.Output, "%s %s\n", bold.Sprint("Overall"), progressLine(st.Completed, st.Total, st.Percentage))
		if query != "" {
			faint.Fprintf(color.Output, "%d matching topics\n", result.Matches)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listSection, "section", "s", commands.AllSections, "only list the section with this index")
}
