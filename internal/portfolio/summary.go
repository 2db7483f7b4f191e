package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Summarize aggregates a transaction sequence into per-symbol summaries.
//
// Only buy transactions contribute; sell rows are kept in the ledger but
// excluded from every aggregate. Symbols appear in order of first buy, so
// downstream tables and charts render stably. An empty input, or one with
// no buys, yields an empty result rather than an error. When the portfolio
// total cost is zero the allocation percentages stay at decimal.Zero.
func Summarize(txns []model.Transaction) []model.SymbolSummary {
	groups := make(map[string]*model.SymbolSummary)
	var order []string

	for _, txn := range txns {
		if txn.Action != model.ActionBuy {
			continue
		}
		s, ok := groups[txn.Symbol]
		if !ok {
			s = &model.SymbolSummary{Symbol: txn.Symbol}
			groups[txn.Symbol] = s
			order = append(order, txn.Symbol)
		}
		s.TotalQuantity += txn.Quantity
		s.TotalCost = s.TotalCost.Add(txn.TotalValue)
	}

	grandTotal := decimal.Zero
	for _, sym := range order {
		grandTotal = grandTotal.Add(groups[sym].TotalCost)
	}

	summaries := make([]model.SymbolSummary, 0, len(order))
	for _, sym := range order {
		s := groups[sym]
		if s.TotalQuantity > 0 {
			s.AverageCost = s.TotalCost.Div(decimal.NewFromInt(s.TotalQuantity))
		}
		if grandTotal.IsPositive() {
			s.AllocationPct = s.TotalCost.Mul(hundred).Div(grandTotal)
		}
		summaries = append(summaries, *s)
	}
	return summaries
}

// TotalCost sums the cost basis across summaries.
func TotalCost(summaries []model.SymbolSummary) decimal.Decimal {
	total := decimal.Zero
	for _, s := range summaries {
		total = total.Add(s.TotalCost)
	}
	return total
}

// History returns the transactions for one symbol, buys and sells alike,
// in insertion order.
func History(txns []model.Transaction, sym string) []model.Transaction {
	var out []model.Transaction
	for _, txn := range txns {
		if txn.Symbol == sym {
			out = append(out, txn)
		}
	}
	return out
}
