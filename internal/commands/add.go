package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/model"
	"github.com/folio-dev/folio/internal/symbol"
)

const dateFlagFormat = "2006-01-02"

func newAddCommand() *cobra.Command {
	var (
		dateStr   string
		sym       string
		actionStr string
		quantity  int64
		priceStr  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a buy or sell transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspaceFlag(cmd)
			if err != nil {
				return err
			}
			return runAdd(w, dateStr, sym, actionStr, quantity, priceStr)
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format(dateFlagFormat), "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sym, "symbol", "", "stock symbol, e.g. AAPL (required)")
	cmd.Flags().StringVar(&actionStr, "action", "buy", "buy or sell")
	cmd.Flags().Int64Var(&quantity, "quantity", 0, "number of shares (required)")
	cmd.Flags().StringVar(&priceStr, "price", "", "price per share (required)")
	_ = cmd.MarkFlagRequired("symbol")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func runAdd(w *workspace, dateStr, sym, actionStr string, quantity int64, priceStr string) error {
	date, err := time.Parse(dateFlagFormat, dateStr)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", dateStr, err)
	}

	action, err := model.ParseAction(actionStr)
	if err != nil {
		return err
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return fmt.Errorf("parsing price %q: %w", priceStr, err)
	}

	txn := model.New(date, symbol.Normalize(sym), action, quantity, price)
	if err := w.session.Record(txn); err != nil {
		return err
	}

	details := fmt.Sprintf("%s %d %s @ %s", txn.Action, txn.Quantity, txn.Symbol, txn.UnitPrice)

	hash, err := w.commit("portfolio: " + details)
	if err != nil {
		return fmt.Errorf("committing ledger: %w", err)
	}
	w.recordActivity("add", details, txn.Symbol, hash)

	fmt.Printf("Recorded %s (total %s)\n", details, txn.TotalValue)
	return nil
}
