package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/symbol"
)

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search SYMBOL",
		Short: "Show one symbol's summary and transaction history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspaceFlag(cmd)
			if err != nil {
				return err
			}
			return runSearch(w, args[0])
		},
	}
}

func runSearch(w *workspace, sym string) error {
	sym = symbol.Normalize(sym)

	summary, history, ok := w.session.Lookup(sym)
	if !ok {
		fmt.Printf("No transactions for %s\n", sym)
		return nil
	}

	fmt.Printf("%s\n", sym)
	fmt.Printf("  Shares held:  %d\n", summary.TotalQuantity)
	fmt.Printf("  Total cost:   %s\n", summary.TotalCost.StringFixed(2))
	if summary.TotalQuantity > 0 {
		fmt.Printf("  Average cost: %s\n", summary.AverageCost.StringFixed(2))
	}

	fmt.Println("\nHistory:")
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tACTION\tQUANTITY\tPRICE\tTOTAL")
	for _, txn := range history {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			txn.Date.Format("2006-01-02"),
			txn.Action,
			txn.Quantity,
			txn.UnitPrice.StringFixed(2),
			txn.TotalValue.StringFixed(2),
		)
	}
	return tw.Flush()
}
