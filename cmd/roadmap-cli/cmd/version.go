package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Set with -ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	shortened := false
	output := "json"

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the roadmap-cli version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Print(goversion.FuncWithOutput(shortened, version, commit, date, output))
		},
	}
	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "print just the version number")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format, json or yaml")

	rootCmd.AddCommand(cmd)
}
