package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Action is the side of a transaction.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// ParseAction parses a user-supplied action string, case-insensitively.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return ActionBuy, nil
	case "sell":
		return ActionSell, nil
	}
	return "", fmt.Errorf("unknown action %q (want buy or sell)", s)
}

// Valid reports whether the action is one of the two enumerated values.
func (a Action) Valid() bool {
	return a == ActionBuy || a == ActionSell
}

// Transaction is one row of the portfolio ledger. Rows are immutable once
// recorded; the ledger as a whole is only ever replaced wholesale.
type Transaction struct {
	Date       time.Time
	Symbol     string
	Action     Action
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalValue decimal.Decimal // Quantity * UnitPrice
}

// New builds a Transaction with TotalValue derived from quantity and price.
func New(date time.Time, symbol string, action Action, quantity int64, unitPrice decimal.Decimal) Transaction {
	return Transaction{
		Date:       date,
		Symbol:     symbol,
		Action:     action,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalValue: unitPrice.Mul(decimal.NewFromInt(quantity)),
	}
}
