package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roadmap/internal/application/commands"
	"roadmap/internal/domain"
)

var searchRanked bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search topics by title",
	Long: `Search for topics whose title contains the query, ignoring case.

With --ranked, fuzzy matches are included and results are sorted by
relevance; section titles count at half weight.

Examples:
  roadmap-cli search sql
  roadmap-cli search --ranked "js tst"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		searchCmd := commands.NewSearchCommand(GetEnv().Tracker.Store, query, searchRanked)
		results, err := searchCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			faint.Fprintf(color.Output, "No topics found for %q\n", query)
			return nil
		}

		refs := make([]domain.TopicRef, len(results))
		for i, r := range results {
			refs[i] = r.TopicRef
		}
		fmt.Fprintln(color.Output, topicTable(refs, true))
		faint.Fprintf(color.Output, "%d results\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVarP(&searchRanked, "ranked", "r", false, "fuzzy match and sort by relevance")
}
