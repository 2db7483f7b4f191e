package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/importer"
)

func newImportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import broker export CSVs into the ledger",
		Long: "Import broker export CSVs into the ledger.\n\n" +
			"With a file argument, imports that file. Without one, imports every\n" +
			"CSV found in the portfolio's import/ directory and moves each to\n" +
			"import/processed/ afterwards.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspaceFlag(cmd)
			if err != nil {
				return err
			}

			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return runImport(w, format, file)
		},
	}

	cmd.Flags().StringVar(&format, "format", "settrade", "broker export format")

	return cmd
}

func runImport(w *workspace, format, file string) error {
	registry := importer.DefaultRegistry()
	parser := registry.Get(format)
	if parser == nil {
		return fmt.Errorf("unknown import format %q (available: %v)", format, registry.Formats())
	}

	if file != "" {
		n, err := importFile(w, parser, file)
		if err != nil {
			return err
		}
		return finishImport(w, format, file, n)
	}

	files, err := importer.Scan(w.dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	total := 0
	for _, fi := range files {
		n, err := importFile(w, parser, fi.Path)
		if err != nil {
			return fmt.Errorf("%s: %w", fi.Name, err)
		}
		if err := importer.MarkProcessed(w.dir, fi.Name); err != nil {
			return err
		}
		total += n
	}
	return finishImport(w, format, fmt.Sprintf("%d file(s)", len(files)), total)
}

func importFile(w *workspace, parser importer.Parser, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return 0, err
	}
	if len(txns) == 0 {
		return 0, nil
	}

	if err := w.session.RecordAll(txns); err != nil {
		return 0, err
	}
	return len(txns), nil
}

func finishImport(w *workspace, format, source string, n int) error {
	if n == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	details := fmt.Sprintf("%d transactions from %s (%s)", n, source, format)

	hash, err := w.commit("portfolio: import " + details)
	if err != nil {
		return fmt.Errorf("committing ledger: %w", err)
	}
	w.recordActivity("import", details, "", hash)

	fmt.Printf("Imported %s\n", details)
	return nil
}
