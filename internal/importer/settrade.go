package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

// SettradeParser parses SET (Settrade) trade-confirmation CSV exports.
//
// Expected columns: date (DD/MM/YYYY), symbol, side (B/S), volume, price,
// amount. The amount column is ignored; the total is recomputed from
// volume and price so the ledger invariant holds even when the broker
// rounds the amount.
type SettradeParser struct{}

const (
	settradeDateFormat = "02/01/2006"
	settradeNumFields  = 6
	settradeColDate    = 0
	settradeColSymbol  = 1
	settradeColSide    = 2
	settradeColVolume  = 3
	settradeColPrice   = 4
)

// Format returns the parser name.
func (p *SettradeParser) Format() string { return "settrade" }

// Parse reads a Settrade CSV and returns transactions.
func (p *SettradeParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = settradeNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading settrade CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseSettradeRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseSettradeRow(rec []string) (model.Transaction, error) {
	date, err := time.Parse(settradeDateFormat, rec[settradeColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[settradeColDate], err)
	}

	var action model.Action
	switch strings.ToUpper(strings.TrimSpace(rec[settradeColSide])) {
	case "B":
		action = model.ActionBuy
	case "S":
		action = model.ActionSell
	default:
		return model.Transaction{}, fmt.Errorf("unknown side %q (want B or S)", rec[settradeColSide])
	}

	volume, err := decimal.NewFromString(strings.ReplaceAll(rec[settradeColVolume], ",", ""))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing volume %q: %w", rec[settradeColVolume], err)
	}
	if !volume.IsInteger() {
		return model.Transaction{}, fmt.Errorf("volume %q is not a whole number of shares", rec[settradeColVolume])
	}

	price, err := decimal.NewFromString(strings.ReplaceAll(rec[settradeColPrice], ",", ""))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing price %q: %w", rec[settradeColPrice], err)
	}

	return model.New(date, rec[settradeColSymbol], action, volume.IntPart(), price), nil
}
