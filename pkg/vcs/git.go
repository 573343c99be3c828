// Package vcs publishes the persisted document to a remote git repository
// after each append. Publish failures are for logging only; they never roll
// back a local append.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

type Publisher interface {
	Publish(ctx context.Context) error
}

// Git commits and pushes the document from its work tree.
type Git struct {
	Dir      string
	Document string
}

func (g *Git) Publish(ctx context.Context) error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("vcs: git not found: %w", err)
	}

	steps := [][]string{
		{"add", g.Document},
		{"commit", "-m", "logue: update"},
		{"push"},
	}
	for _, args := range steps {
		cmd := exec.CommandContext(ctx, "git", args...)
		cmd.Dir = g.Dir
		out, err := cmd.CombinedOutput()
		if err != nil {
			if args[0] == "commit" && bytes.Contains(out, []byte("nothing to commit")) {
				return nil
			}
			return fmt.Errorf("vcs: git %s: %v: %s", args[0], err, bytes.TrimSpace(out))
		}
	}
	return nil
}

// Noop satisfies Publisher when sync is disabled or unavailable.
type Noop struct{}

func (Noop) Publish(context.Context) error { return nil }

// ForStore returns a git publisher when enabled and dir is a git work tree,
// otherwise Noop.
func ForStore(dir, document string, enabled bool) Publisher {
	if !enabled {
		return Noop{}
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		return Noop{}
	}
	return &Git{Dir: dir, Document: document}
}
