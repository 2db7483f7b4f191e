package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/activity"
	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/gitops"
	"github.com/folio-dev/folio/internal/ledger"
	"github.com/folio-dev/folio/internal/logging"
	"github.com/folio-dev/folio/internal/portfolio"
)

// workspace bundles everything a command needs to act on one portfolio
// directory: its config, logger, and an opened session over the ledger.
// One workspace per command invocation keeps session ownership explicit.
type workspace struct {
	dir     string
	cfg     *config.Config
	log     zerolog.Logger
	session *portfolio.Session
}

func openWorkspaceFlag(cmd *cobra.Command) (*workspace, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return nil, err
	}
	return openWorkspace(dir)
}

func openWorkspace(dir string) (*workspace, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("%s is not a folio directory (run 'folio init' first): %w", absDir, err)
	}

	log := logging.New(logging.Config{Level: cfg.Log.Level, Pretty: true})
	repo := ledger.NewRepository(filepath.Join(absDir, cfg.Portfolio.Ledger), log)

	session, err := portfolio.Open(repo)
	if err != nil {
		return nil, err
	}

	return &workspace{
		dir:     absDir,
		cfg:     cfg,
		log:     log,
		session: session,
	}, nil
}

// commit auto-commits the portfolio directory when enabled. Returns the
// short hash, or "" when auto-commit is off or the directory is not a repo.
func (w *workspace) commit(message string) (string, error) {
	if !w.cfg.Git.AutoCommit || !gitops.IsRepo(w.dir) {
		return "", nil
	}
	return gitops.CommitAll(w.dir, message, w.cfg.Git.AuthorName, w.cfg.Git.AuthorEmail)
}

// recordActivity appends one audit entry; failures are logged, not fatal,
// since the ledger mutation itself already succeeded.
func (w *workspace) recordActivity(command, details, sym, hash string) {
	err := activity.Append(w.dir, []activity.Entry{{
		Timestamp:  time.Now(),
		Command:    command,
		Details:    details,
		Symbol:     sym,
		CommitHash: hash,
	}})
	if err != nil {
		w.log.Warn().Err(err).Msg("could not write activity log")
	}
}
