package deckstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/bowgen/internal/domain"
	"github.com/aalvaropc/bowgen/internal/ports"
)

const defaultOutDir = "out"

// Store writes built decks to the workspace output directory as plain
// text .in files, the format the simulation engine consumes directly.
type Store struct {
	rootDir    string
	outDirName string
	writeIndex bool
	now        func() time.Time
}

type Option func(*Store)

// WithIndex enables a simple JSONL index: out/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *Store) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(root string, cfg domain.Config, opts ...Option) *Store {
	outDir := cfg.Paths.OutDir
	if strings.TrimSpace(outDir) == "" {
		outDir = defaultOutDir
	}

	s := &Store{
		rootDir:    root,
		outDirName: outDir,
		writeIndex: false,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.DeckStore = (*Store)(nil)

func (s *Store) SaveDeck(deck domain.Deck) (string, error) {
	dir := filepath.Join(s.rootDir, s.outDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "deckstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := deck.BuiltAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	slug := slugify(deck.ModelName)
	if slug == "" {
		slug = "deck"
	}

	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)
	id := base
	path := filepath.Join(dir, id+".in")

	// Rebuilding the same model within one second must not clobber the
	// previous deck.
	for n := 2; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		id = fmt.Sprintf("%s_%d", base, n)
		path = filepath.Join(dir, id+".in")
	}
	filename := id + ".in"

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, deck.Text, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "deckstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "deckstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, deck, ts)
	}

	return id, nil
}

func (s *Store) appendIndex(dir, id, filename string, deck domain.Deck, ts time.Time) error {
	type idx struct {
		ID      string    `json:"id"`
		File    string    `json:"file"`
		Model   string    `json:"model"`
		Variant string    `json:"variant"`
		BuiltAt time.Time `json:"built_at"`
	}
	line, err := json.Marshal(idx{
		ID:      id,
		File:    filename,
		Model:   deck.ModelName,
		Variant: string(deck.Variant),
		BuiltAt: ts,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastDash = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
