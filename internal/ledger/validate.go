package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
	"github.com/folio-dev/folio/internal/symbol"
)

// ValidationError describes a single rejected field on a submission.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// ValidateTransaction checks a submission before it enters the ledger.
// A non-empty result means the transaction must be rejected and neither
// the in-memory sequence nor the sheet may change.
func ValidateTransaction(txn model.Transaction) []ValidationError {
	var errs []ValidationError

	if !symbol.Valid(txn.Symbol) {
		errs = append(errs, ValidationError{
			Field:       "symbol",
			Description: fmt.Sprintf("%q is not a valid symbol", txn.Symbol),
		})
	}

	if txn.Quantity < 1 {
		errs = append(errs, ValidationError{
			Field:       "quantity",
			Description: fmt.Sprintf("must be a positive integer, got %d", txn.Quantity),
		})
	}

	if !txn.UnitPrice.IsPositive() {
		errs = append(errs, ValidationError{
			Field:       "unit_price",
			Description: fmt.Sprintf("must be positive, got %s", txn.UnitPrice),
		})
	}

	if !txn.Action.Valid() {
		errs = append(errs, ValidationError{
			Field:       "action",
			Description: fmt.Sprintf("%q is not buy or sell", txn.Action),
		})
	}

	// A total that disagrees with quantity * price means the record is
	// corrupt, not merely mistyped.
	if txn.Quantity >= 1 && txn.UnitPrice.IsPositive() {
		want := txn.UnitPrice.Mul(decimal.NewFromInt(txn.Quantity))
		if !txn.TotalValue.Equal(want) {
			errs = append(errs, ValidationError{
				Field:       "total_value",
				Description: fmt.Sprintf("%s does not equal quantity * unit_price (%s)", txn.TotalValue, want),
			})
		}
	}

	return errs
}
