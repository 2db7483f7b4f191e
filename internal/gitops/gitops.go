// Package gitops shells out to git for portfolio-directory versioning.
package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	if _, err := run(dir, "init"); err != nil {
		return err
	}
	return nil
}

// CommitAll stages everything and commits. Returns the short commit hash.
func CommitAll(dir, message, authorName, authorEmail string) (string, error) {
	if _, err := run(dir, "add", "-A"); err != nil {
		return "", err
	}

	// -c overrides keep commits working where no global git identity exists.
	if _, err := run(dir,
		"-c", "user.name="+authorName,
		"-c", "user.email="+authorEmail,
		"commit", "-m", message); err != nil {
		return "", err
	}

	return run(dir, "rev-parse", "--short", "HEAD")
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
