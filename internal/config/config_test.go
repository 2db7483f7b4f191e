package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("My Portfolio")
	cfg.Log.Level = "debug"
	cfg.Git.AutoCommit = false

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Portfolio.Name, got.Portfolio.Name)
	assert.Equal(t, cfg.Portfolio.Ledger, got.Portfolio.Ledger)
	assert.Equal(t, "debug", got.Log.Level)
	assert.False(t, got.Git.AutoCommit)
	assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
	assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Retirement")

	assert.Equal(t, "Retirement", cfg.Portfolio.Name)
	assert.Equal(t, "portfolio.csv", cfg.Portfolio.Ledger)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Git.AutoCommit)
}

func TestLoad_MissingLedgerFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("portfolio:\n  name: Bare\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "portfolio.csv", got.Portfolio.Ledger)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
}
