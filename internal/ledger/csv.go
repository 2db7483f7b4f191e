package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

// Header is the CSV header for portfolio.csv. Column names are the Thai
// names used by the original Google Sheet, preserved verbatim so an
// existing sheet exported to CSV keeps working.
const Header = "วันที่,ชื่อหุ้น,ประเภท,จำนวนหุ้น,ราคาต่อหุ้น,มูลค่ารวม"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colDate    = 0
	colSymbol  = 1
	colAction  = 2
	colQty     = 3
	colPrice   = 4
	colTotal   = 5
)

// Localized action cells, as stored in the sheet.
const (
	cellBuy  = "ซื้อ"
	cellSell = "ขาย"
)

// ReadTransactions reads all rows from a portfolio.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading portfolio CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes the header followed by one row per transaction,
// in sequence order.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.Date.Format(dateFormat)
	row[colSymbol] = txn.Symbol
	row[colAction] = marshalAction(txn.Action)
	row[colQty] = strconv.FormatInt(txn.Quantity, 10)
	row[colPrice] = txn.UnitPrice.String()
	row[colTotal] = txn.TotalValue.String()
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	action, err := unmarshalAction(record[colAction])
	if err != nil {
		return model.Transaction{}, err
	}

	qty, err := strconv.ParseInt(record[colQty], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing quantity %q: %w", record[colQty], err)
	}

	price, err := decimal.NewFromString(record[colPrice])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing unit price %q: %w", record[colPrice], err)
	}

	total, err := decimal.NewFromString(record[colTotal])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing total value %q: %w", record[colTotal], err)
	}

	return model.Transaction{
		Date:       date,
		Symbol:     record[colSymbol],
		Action:     action,
		Quantity:   qty,
		UnitPrice:  price,
		TotalValue: total,
	}, nil
}

func marshalAction(a model.Action) string {
	if a == model.ActionSell {
		return cellSell
	}
	return cellBuy
}

func unmarshalAction(cell string) (model.Action, error) {
	switch cell {
	case cellBuy:
		return model.ActionBuy, nil
	case cellSell:
		return model.ActionSell, nil
	}
	return "", fmt.Errorf("unknown action cell %q", cell)
}
