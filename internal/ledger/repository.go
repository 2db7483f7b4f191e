package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/folio-dev/folio/internal/model"
)

// Repository mediates between the in-memory transaction sequence and the
// portfolio sheet on disk. Load is a full-table read; Save replaces the
// whole sheet. A missing sheet is "no data yet", not an error; an
// unreadable or malformed sheet is reported so callers can tell the two
// apart.
type Repository struct {
	path string
	log  zerolog.Logger
}

// NewRepository creates a Repository over the sheet at path.
func NewRepository(path string, log zerolog.Logger) *Repository {
	return &Repository{
		path: path,
		log:  log.With().Str("component", "ledger").Logger(),
	}
}

// Path returns the sheet location.
func (r *Repository) Path() string {
	return r.path
}

// Load reads all transactions from the sheet, in row order.
func (r *Repository) Load() ([]model.Transaction, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.log.Debug().Str("path", r.path).Msg("no portfolio sheet yet")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening portfolio sheet %s: %w", r.path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading portfolio sheet %s: %w", r.path, err)
	}

	r.log.Debug().Int("rows", len(txns)).Msg("loaded portfolio sheet")
	return txns, nil
}

// Save replaces the sheet with the header plus one row per transaction.
// The write is a full overwrite: there is no partial-write recovery, and
// with concurrent writers the last save wins.
func (r *Repository) Save(txns []model.Transaction) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating sheet dir: %w", err)
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("creating portfolio sheet %s: %w", r.path, err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txns); err != nil {
		return fmt.Errorf("writing portfolio sheet %s: %w", r.path, err)
	}

	r.log.Debug().Int("rows", len(txns)).Msg("saved portfolio sheet")
	return nil
}
