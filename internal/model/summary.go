package model

import "github.com/shopspring/decimal"

// SymbolSummary is the derived cost/allocation aggregate for one symbol.
// It is recomputed on every read and never persisted.
//
// Only buy transactions contribute to a summary. When a derived field is
// mathematically undefined (zero quantity, zero portfolio cost) it holds
// decimal.Zero rather than panicking; callers check before formatting.
type SymbolSummary struct {
	Symbol        string
	TotalQuantity int64
	TotalCost     decimal.Decimal
	AverageCost   decimal.Decimal // TotalCost / TotalQuantity
	AllocationPct decimal.Decimal // 100 * TotalCost / portfolio total cost
}
