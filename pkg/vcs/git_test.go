package vcs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestForStoreDisabled(t *testing.T) {
	if _, ok := ForStore(t.TempDir(), "logue.json", false).(Noop); !ok {
		t.Fatalf("sync disabled must yield the noop publisher")
	}
}

func TestForStoreOutsideWorkTree(t *testing.T) {
	if _, ok := ForStore(t.TempDir(), "logue.json", true).(Noop); !ok {
		t.Fatalf("a directory without .git must yield the noop publisher")
	}
}

func TestForStoreWorkTree(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	g, ok := ForStore(dir, "logue.json", true).(*Git)
	if !ok {
		t.Fatalf("expected the git publisher for a work tree")
	}
	if g.Dir != dir || g.Document != "logue.json" {
		t.Fatalf("publisher misconfigured: %+v", g)
	}
}
