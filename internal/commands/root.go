package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "folio",
		Short:   "Personal stock portfolio tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "portfolio directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newOverviewCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newActivityCommand())

	return rootCmd
}
