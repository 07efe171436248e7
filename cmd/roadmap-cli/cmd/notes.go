package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roadmap/internal/adapters/editor"
	"roadmap/internal/application/commands"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Show or edit the notes of a topic",
	Long: `Show or edit the free-text notes kept for each topic.

Examples:
  roadmap-cli notes show 1.2
  roadmap-cli notes set 1.2 "Read the flexbox guide"
  echo "links..." | roadmap-cli notes set 1.2 -
  roadmap-cli notes edit 1.2`,
}

var notesShowCmd = &cobra.Command{
	Use:   "show <section.item>",
	Short: "Print the notes of a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseCoordinate(args[0])
		if err != nil {
			return err
		}

		result, err := commands.NewShowNotesCommand(GetEnv().Tracker.Store, at).Execute(context.Background())
		if err != nil {
			return err
		}

		bold.Fprintln(color.Output, result.Title)
		if result.Notes == "" {
			faint.Fprintln(color.Output, "No notes yet.")
			return nil
		}
		fmt.Fprintln(color.Output, result.Notes)
		return nil
	},
}

var notesSetCmd = &cobra.Command{
	Use:   "set <section.item> [text|-]",
	Short: "Replace the notes of a topic",
	Long: `Replace the notes of a topic. With "-" the notes are read from stdin;
with no text the notes are cleared.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseCoordinate(args[0])
		if err != nil {
			return err
		}

		text := strings.Join(args[1:], " ")
		if text == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading notes from stdin: %w", err)
			}
			text = strings.TrimRight(string(data), "\n")
		}

		result, err := commands.NewSetNotesCommand(GetEnv().Tracker.Store, at, text).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var notesEditCmd = &cobra.Command{
	Use:   "edit <section.item>",
	Short: "Edit the notes of a topic in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		at, err := parseCoordinate(args[0])
		if err != nil {
			return err
		}

		store := GetEnv().Tracker.Store
		current, err := commands.NewShowNotesCommand(store, at).Execute(ctx)
		if err != nil {
			return err
		}

		edited, err := editor.EditNotes(editor.NewOpener(), current.Title, current.Notes)
		if err != nil {
			return err
		}
		if edited == current.Notes {
			fmt.Fprintln(os.Stderr, "Notes unchanged.")
			return nil
		}

		result, err := commands.NewSetNotesCommand(store, at, edited).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.AddCommand(notesShowCmd)
	notesCmd.AddCommand(notesSetCmd)
	notesCmd.AddCommand(notesEditCmd)
}
