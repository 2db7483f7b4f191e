package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/folio/internal/model"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "portfolio.csv"), zerolog.Nop())
}

func TestRepository_LoadMissingSheet(t *testing.T) {
	repo := newTestRepo(t)

	// A missing sheet is "no data", not a fault.
	txns, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	txns := []model.Transaction{
		model.New(date(2024, 1, 1), "AAPL", model.ActionBuy, 10, dec("100")),
		model.New(date(2024, 1, 2), "MSFT", model.ActionBuy, 2, dec("50")),
		model.New(date(2024, 1, 3), "AAPL", model.ActionSell, 5, dec("120")),
	}
	require.NoError(t, repo.Save(txns))

	got, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "AAPL", got[0].Symbol)
	assert.Equal(t, model.ActionSell, got[2].Action)
	assert.True(t, got[1].TotalValue.Equal(dec("100")))

	// save(load()) then load() must return the same sequence.
	reloaded, err := repo.Load()
	require.NoError(t, err)
	require.NoError(t, repo.Save(reloaded))
	again, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, reloaded, again)
}

func TestRepository_SaveOverwrites(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Save([]model.Transaction{
		model.New(date(2024, 1, 1), "AAPL", model.ActionBuy, 10, dec("100")),
		model.New(date(2024, 1, 2), "MSFT", model.ActionBuy, 2, dec("50")),
	}))

	// A shorter sequence replaces the sheet entirely.
	require.NoError(t, repo.Save([]model.Transaction{
		model.New(date(2024, 1, 2), "MSFT", model.ActionBuy, 2, dec("50")),
	}))

	got, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "MSFT", got[0].Symbol)
}

func TestRepository_SaveEmptyWritesHeader(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Save(nil))

	data, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))
}

func TestRepository_LoadCorruptSheet(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte(Header+"\ngarbage,row\n"), 0o644))

	// Corrupt data must be distinguishable from "no data".
	_, err := repo.Load()
	require.Error(t, err)
}
