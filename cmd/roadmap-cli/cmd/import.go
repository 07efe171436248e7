package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"roadmap/internal/adapters/filesystem"
	"roadmap/internal/application/commands"
)

var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Replace progress with an exported document",
	Long: `Replace the whole roadmap with a progress document written by export.

The document is validated before anything changes; an unreadable or
invalid document leaves the current progress untouched. A running timer
is stopped. Use "-" to read the document from stdin.

Examples:
  roadmap-cli import roadmap-progress-2026-01-31.json
  cat backup.json | roadmap-cli import -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := GetEnv()
		importCmd := commands.NewImportCommand(e.Tracker.Store, e.Files, notifier, filesystem.ExpandPath(args[0]))

		if args[0] == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			importCmd.Data = data
		}

		result, err := importCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
