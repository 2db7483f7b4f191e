package portfolio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/folio/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestSummarize_SingleSymbol(t *testing.T) {
	txns := []model.Transaction{
		model.New(date(2024, 1, 1), "AAPL", model.ActionBuy, 10, dec("100")),
		model.New(date(2024, 1, 2), "AAPL", model.ActionBuy, 5, dec("110")),
		model.New(date(2024, 1, 3), "AAPL", model.ActionSell, 5, dec("120")),
	}

	summaries := Summarize(txns)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "AAPL", s.Symbol)
	assert.Equal(t, int64(15), s.TotalQuantity)
	assert.True(t, s.TotalCost.Equal(dec("1550")), "total cost: got %s", s.TotalCost)
	assert.InDelta(t, 103.33, s.AverageCost.InexactFloat64(), 0.01)
	assert.True(t, s.AllocationPct.Equal(dec("100")), "allocation: got %s", s.AllocationPct)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
	assert.Empty(t, Summarize([]model.Transaction{}))
}

func TestSummarize_SellOnlySymbolAbsent(t *testing.T) {
	txns := []model.Transaction{
		model.New(date(2024, 1, 1), "AAPL", model.ActionBuy, 10, dec("100")),
		model.New(date(2024, 1, 2), "MSFT", model.ActionSell, 3, dec("50")),
	}

	summaries := Summarize(txns)
	require.Len(t, summaries, 1)
	assert.Equal(t, "AAPL", summaries[0].Symbol)
}

func TestSummarize_NoBuys(t *testing.T) {
	txns := []model.Transaction{
		model.New(date(2024, 1, 1), "AAPL", model.ActionSell, 10, dec("100")),
	}
	assert.Empty(t, Summarize(txns))
}

func TestSummarize_EvenSplit(t *testing.T) {
	d := date(2024, 1, 1)
	txns := []model.Transaction{
		model.New(d, "MSFT", model.ActionBuy, 2, dec("50")),
		model.New(d, "GOOG", model.ActionBuy, 1, dec("100")),
	}

	summaries := Summarize(txns)
	require.Len(t, summaries, 2)
	for _, s := range summaries {
		assert.True(t, s.AllocationPct.Equal(dec("50")), "%s allocation: got %s", s.Symbol, s.AllocationPct)
	}
}

func TestSummarize_FirstAppearanceOrder(t *testing.T) {
	txns := []model.Transaction{
		model.New(date(2024, 1, 1), "MSFT", model.ActionBuy, 1, dec("10")),
		model.New(date(2024, 1, 2), "GOOG", model.ActionBuy, 1, dec("10")),
		model.New(date(2024, 1, 3), "MSFT", model.ActionBuy, 1, dec("10")),
		model.New(date(2024, 1, 4), "AAPL", model.ActionBuy, 1, dec("10")),
	}

	summaries := Summarize(txns)
	require.Len(t, summaries, 3)
	assert.Equal(t, "MSFT", summaries[0].Symbol)
	assert.Equal(t, "GOOG", summaries[1].Symbol)
	assert.Equal(t, "AAPL", summaries[2].Symbol)
}

func TestSummarize_AllocationsSumTo100(t *testing.T) {
	txns := []model.Transaction{
		model.New(date(2024, 1, 1), "AAPL", model.ActionBuy, 3, dec("123.45")),
		model.New(date(2024, 1, 2), "MSFT", model.ActionBuy, 7, dec("67.89")),
		model.New(date(2024, 1, 3), "GOOG", model.ActionBuy, 11, dec("1.23")),
		model.New(date(2024, 1, 4), "AAPL", model.ActionBuy, 2, dec("130")),
	}

	summaries := Summarize(txns)
	require.Len(t, summaries, 3)

	total := decimal.Zero
	for _, s := range summaries {
		total = total.Add(s.AllocationPct)
	}
	assert.InDelta(t, 100.0, total.InexactFloat64(), 1e-9)
}

func TestSummarize_AverageTimesQuantityEqualsCost(t *testing.T) {
	txns := []model.Transaction{
		model.New(date(2024, 1, 1), "AAPL", model.ActionBuy, 3, dec("33.33")),
		model.New(date(2024, 1, 2), "AAPL", model.ActionBuy, 7, dec("99.99")),
		model.New(date(2024, 1, 3), "MSFT", model.ActionBuy, 13, dec("7.77")),
	}

	for _, s := range Summarize(txns) {
		got := s.AverageCost.Mul(decimal.NewFromInt(s.TotalQuantity))
		assert.InDelta(t, s.TotalCost.InexactFloat64(), got.InexactFloat64(), 1e-9, "symbol %s", s.Symbol)
	}
}

func TestSummarize_ZeroCostSentinel(t *testing.T) {
	// Zero prices are rejected at entry, but the aggregator must not
	// assume that and must not divide by zero.
	txns := []model.Transaction{
		{Date: date(2024, 1, 1), Symbol: "AAPL", Action: model.ActionBuy, Quantity: 10},
	}

	summaries := Summarize(txns)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].AllocationPct.IsZero())
	assert.True(t, summaries[0].AverageCost.IsZero())
}

func TestHistory(t *testing.T) {
	txns := []model.Transaction{
		model.New(date(2024, 1, 1), "AAPL", model.ActionBuy, 10, dec("100")),
		model.New(date(2024, 1, 2), "MSFT", model.ActionBuy, 2, dec("50")),
		model.New(date(2024, 1, 3), "AAPL", model.ActionSell, 5, dec("120")),
	}

	got := History(txns, "AAPL")
	require.Len(t, got, 2)
	assert.Equal(t, model.ActionBuy, got[0].Action)
	assert.Equal(t, model.ActionSell, got[1].Action)

	assert.Empty(t, History(txns, "GOOG"))
}
