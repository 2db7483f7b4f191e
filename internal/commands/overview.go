package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/portfolio"
)

func newOverviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the aggregated portfolio summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspaceFlag(cmd)
			if err != nil {
				return err
			}
			return runOverview(w)
		},
	}
}

func runOverview(w *workspace) error {
	summaries := w.session.Summary()
	if len(summaries) == 0 {
		fmt.Println("No holdings yet. Record a transaction with 'folio add'.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tQUANTITY\tTOTAL COST\tAVG COST\tALLOCATION")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s%%\n",
			s.Symbol,
			s.TotalQuantity,
			s.TotalCost.StringFixed(2),
			s.AverageCost.StringFixed(2),
			s.AllocationPct.StringFixed(1),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d holdings, total cost %s\n", len(summaries), portfolio.TotalCost(summaries).StringFixed(2))
	return nil
}
