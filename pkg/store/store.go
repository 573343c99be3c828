package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/chasenunez/logue/pkg/entry"
)

// ErrCorruptStore marks a document that exists but cannot be parsed. The
// store never rewrites a document it could not read.
var ErrCorruptStore = errors.New("store: corrupt document")

// ErrEmptyEntry marks an append with no body text, tags, or tasks.
var ErrEmptyEntry = errors.New("store: empty entry")

// Persistence is the contract for the append-only entry log.
type Persistence interface {
	All() []*entry.Entry
	Append(e *entry.Entry) error
	Reload() error
	Watch(ctx context.Context) (<-chan Event, error)
	BasePath() string
	Document() string
	DocumentPath() string
}

// Open loads the persisted document fully into memory. A missing or empty
// document is an empty log; an unreadable one is ErrCorruptStore.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if err := os.MkdirAll(filepath.Join(basePath, ".tmp"), 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			// flat layout: the document sits directly under the base path
			Transform: func(string) []string { return []string{} },
			// a temp dir on the same filesystem makes every write an
			// atomic rename; a crash mid-append can never truncate the
			// existing document
			TempDir:      filepath.Join(basePath, ".tmp"),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		document: cfg.Document(),
	}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	document string
	entries  []*entry.Entry
}

func (p *persistence) BasePath() string { return p.basePath }

func (p *persistence) Document() string { return p.document }

func (p *persistence) DocumentPath() string { return filepath.Join(p.basePath, p.document) }

// Reload re-reads the document from disk, replacing the in-memory sequence.
func (p *persistence) Reload() error {
	data, err := p.d.Read(p.document)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.entries = nil
			return nil
		}
		return fmt.Errorf("store: read %s: %w", p.DocumentPath(), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		p.entries = nil
		return nil
	}
	var entries []*entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptStore, p.DocumentPath(), err)
	}
	p.entries = entries
	return nil
}

// All returns a stable insertion-order snapshot of the log.
func (p *persistence) All() []*entry.Entry {
	all := make([]*entry.Entry, len(p.entries))
	copy(all, p.entries)
	return all
}

// Append validates the entry, inserts it at the end, and flushes the full
// sequence to disk. The write is atomic; on failure the in-memory sequence
// is rolled back so memory and disk stay in step.
func (p *persistence) Append(e *entry.Entry) error {
	if e == nil || e.Empty() {
		return ErrEmptyEntry
	}
	if e.Timestamp.IsZero() {
		return errors.New("store: entry timestamp required")
	}

	p.entries = append(p.entries, e)
	data, err := json.MarshalIndent(p.entries, "", "  ")
	if err != nil {
		p.entries = p.entries[:len(p.entries)-1]
		return fmt.Errorf("store: encode document: %w", err)
	}
	if err := p.d.Write(p.document, data); err != nil {
		p.entries = p.entries[:len(p.entries)-1]
		return fmt.Errorf("store: write %s: %w", p.DocumentPath(), err)
	}
	return nil
}
