package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/gitops"
	"github.com/folio-dev/folio/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new portfolio directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "portfolio name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	// Create directory structure.
	dirs := []string{
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write folio.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the empty portfolio sheet (header only).
	sheetPath := filepath.Join(dir, cfg.Portfolio.Ledger)
	f, err := os.Create(sheetPath)
	if err != nil {
		return fmt.Errorf("creating portfolio sheet: %w", err)
	}
	if err := ledger.WriteTransactions(f, nil); err != nil {
		f.Close()
		return fmt.Errorf("writing portfolio sheet: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing portfolio sheet: %w", err)
	}

	// Keep empty directories under version control.
	for _, d := range []string{"import", filepath.Join("import", "processed")} {
		if err := os.WriteFile(filepath.Join(dir, d, ".gitkeep"), []byte{}, 0o644); err != nil {
			return fmt.Errorf("writing .gitkeep: %w", err)
		}
	}

	// Initialize git and create the initial commit.
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized portfolio %q at %s (%s)\n", name, dir, hash)
	return nil
}
