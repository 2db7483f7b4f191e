package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/activity"
)

func newActivityCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the ledger mutation audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspaceFlag(cmd)
			if err != nil {
				return err
			}
			return runActivity(w, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "show at most this many recent entries")

	return cmd
}

func runActivity(w *workspace, limit int) error {
	entries, err := activity.Read(w.dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No activity recorded yet.")
		return nil
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tCOMMAND\tDETAILS\tCOMMIT")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04"),
			e.Command,
			e.Details,
			e.CommitHash,
		)
	}
	return tw.Flush()
}
