package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"roadmap/internal/adapters/filesystem"
	"roadmap/internal/adapters/launcher"
	"roadmap/internal/application/commands"
)

var (
	exportFormat    string
	exportStdout    bool
	exportClipboard bool
	exportOutput    string
	exportOpen      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress as JSON or an xlsx report",
	Long: `Export the whole roadmap with progress.

The JSON document can be imported again with "roadmap-cli import". By
default it is written to the export directory as
roadmap-progress-YYYY-MM-DD.json. The xlsx report has one sheet per view
(topics, sections, difficulty) and is meant for reading only.

Examples:
  roadmap-cli export
  roadmap-cli export --stdout > backup.json
  roadmap-cli export --clipboard
  roadmap-cli export --format xlsx --output ~/progress.xlsx
  roadmap-cli export --format xlsx --open`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := commands.ParseExportFormat(exportFormat)
		if err != nil {
			return err
		}
		if exportOpen && (exportStdout || exportClipboard) {
			return fmt.Errorf("--open needs a file, not --stdout or --clipboard")
		}
		if exportStdout && exportClipboard {
			return fmt.Errorf("--stdout and --clipboard cannot be combined")
		}

		e := GetEnv()
		exportCmd := commands.NewExportCommand(e.Tracker.Store, e.Files, e.Reports, notifier, format)
		exportCmd.Path = filesystem.ExpandPath(exportOutput)

		var buf bytes.Buffer
		switch {
		case exportStdout:
			exportCmd.Writer = os.Stdout
		case exportClipboard:
			exportCmd.Writer = &buf
		}

		result, err := exportCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		switch {
		case exportStdout:
		case exportClipboard:
			if err := clipboard.WriteAll(buf.String()); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			fmt.Fprintln(os.Stderr, "Copied progress to the clipboard")
		default:
			fmt.Println(result.Message)
			if exportOpen {
				return launcher.New().Open(result.Path)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(commands.FormatJSON), "json or xlsx")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "write the JSON document to stdout")
	exportCmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "copy the JSON document to the clipboard")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "xlsx report path")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false, "open the written file with the default application")
}
