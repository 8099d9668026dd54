package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrPersist marks a failed save. The in-memory collection stays the
// source of truth for the running session; callers must report the
// error, not discard it.
var ErrPersist = errors.New("failed to persist word file")

// Store reads and writes the word collection at a fixed path.
type Store struct {
	path string
}

// New creates a Store for the given path. An empty path selects the
// default word file under the user state directory.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath returns the default word file location,
// ~/.local/state/tangocho/words.json.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "tangocho", "words.json")
}

// Path returns the word file path this store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load reads the word collection. A missing file yields an empty
// collection. A file that cannot be parsed is renamed aside with a
// timestamped suffix and an empty collection is returned together with
// an advisory error; Load never fails the caller.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return []Entry{}, s.quarantine(err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return []Entry{}, s.quarantine(err)
	}

	// Accept both a bare array and {"words": [...]}.
	if obj, ok := raw.(map[string]any); ok {
		if words, ok := obj["words"]; ok {
			raw = words
		}
	}

	list, ok := raw.([]any)
	if !ok {
		return []Entry{}, fmt.Errorf("word file %s: unexpected document shape", s.path)
	}

	entries := make([]Entry, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		entries = append(entries, sanitizeEntry(m))
	}
	return entries, nil
}

// quarantine moves an unreadable word file aside so the next save does
// not overwrite the evidence, then returns the advisory load error.
func (s *Store) quarantine(cause error) error {
	ts := time.Now().Format("20060102-150405")
	ext := filepath.Ext(s.path)
	stem := strings.TrimSuffix(s.path, ext)
	backup := fmt.Sprintf("%s.bad-%s%s", stem, ts, ext)
	if err := os.Rename(s.path, backup); err == nil {
		return fmt.Errorf("word file unreadable, moved to %s: %w", backup, cause)
	}
	return fmt.Errorf("word file %s unreadable: %w", s.path, cause)
}

// Save writes the full collection, pretty-printed, keeping non-ASCII
// characters literal. The document is written to a temporary file in
// the same directory and atomically renamed over the target.
func (s *Store) Save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	tmp, err := os.CreateTemp(dir, ".words-*.json.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}
