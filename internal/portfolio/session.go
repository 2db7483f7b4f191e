package portfolio

import (
	"fmt"
	"strings"

	"github.com/folio-dev/folio/internal/ledger"
	"github.com/folio-dev/folio/internal/model"
	"github.com/folio-dev/folio/internal/symbol"
)

// Session owns the cached transaction sequence for one interaction. It
// loads from the repository exactly once at Open and never reloads;
// mutations go through Record/RecordAll, which persist the full sequence
// before the cache is updated. One session per store at a time — with
// concurrent sessions the last save wins.
type Session struct {
	repo *ledger.Repository
	txns []model.Transaction
}

// Open loads the ledger and returns a Session over it. A missing sheet
// opens as an empty portfolio; an unreadable or corrupt sheet is an error.
func Open(repo *ledger.Repository) (*Session, error) {
	txns, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &Session{repo: repo, txns: txns}, nil
}

// Transactions returns the cached sequence in insertion order.
func (s *Session) Transactions() []model.Transaction {
	return s.txns
}

// Record normalizes, validates, appends, and persists one transaction.
// On rejection or save failure, both the cache and the sheet are left
// unchanged.
func (s *Session) Record(txn model.Transaction) error {
	txn.Symbol = symbol.Normalize(txn.Symbol)

	if verrs := ledger.ValidateTransaction(txn); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	next := make([]model.Transaction, 0, len(s.txns)+1)
	next = append(next, s.txns...)
	next = append(next, txn)

	if err := s.repo.Save(next); err != nil {
		return err
	}
	s.txns = next
	return nil
}

// RecordAll validates every transaction up front, then appends and persists
// the whole batch with a single sheet rewrite. Any invalid row rejects the
// entire batch.
func (s *Session) RecordAll(txns []model.Transaction) error {
	next := make([]model.Transaction, 0, len(s.txns)+len(txns))
	next = append(next, s.txns...)

	for i, txn := range txns {
		txn.Symbol = symbol.Normalize(txn.Symbol)
		if verrs := ledger.ValidateTransaction(txn); len(verrs) > 0 {
			msgs := make([]string, len(verrs))
			for j, ve := range verrs {
				msgs[j] = ve.Error()
			}
			return fmt.Errorf("transaction %d: validation failed: %s", i+1, strings.Join(msgs, "; "))
		}
		next = append(next, txn)
	}

	if err := s.repo.Save(next); err != nil {
		return err
	}
	s.txns = next
	return nil
}

// Summary aggregates the cached sequence into per-symbol summaries.
func (s *Session) Summary() []model.SymbolSummary {
	return Summarize(s.txns)
}

// Lookup returns the summary and full history for one symbol. The summary
// is computed from the symbol's own transactions, so its allocation is
// relative to that symbol alone (always 100% when it has buys) — the same
// behavior the per-symbol search in the original sheet app had. The bool
// reports whether the symbol appears in the ledger at all.
func (s *Session) Lookup(sym string) (model.SymbolSummary, []model.Transaction, bool) {
	sym = symbol.Normalize(sym)
	history := History(s.txns, sym)
	if len(history) == 0 {
		return model.SymbolSummary{}, nil, false
	}

	summaries := Summarize(history)
	if len(summaries) == 0 {
		// Sell-only history: present in the ledger, nothing to aggregate.
		return model.SymbolSummary{Symbol: sym}, history, true
	}
	return summaries[0], history, true
}
