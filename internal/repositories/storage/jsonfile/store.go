package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store owns the base directory of collection files and the per-collection
// mutexes. No other component may touch the backing files directly; every
// read-modify-write on a collection runs under that collection's lock.
type Store struct {
	baseDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates the base directory if needed and returns a Store over it.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", baseDir, err)
	}
	return &Store{
		baseDir: baseDir,
		locks:   map[string]*sync.Mutex{},
	}, nil
}

// lockFor returns the mutex for a collection, creating it lazily. Locks for
// different collections are independent.
func (s *Store) lockFor(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *Store) pathFor(collection string) string {
	return filepath.Join(s.baseDir, collection+".json")
}

// readDoc decodes the collection document {"<key>": <payload>} into out.
// A missing file or missing key leaves out untouched (first-run bootstrap).
// The caller must hold the collection lock.
func (s *Store) readDoc(collection string, out any) error {
	raw, err := os.ReadFile(s.pathFor(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read collection %s: %w", collection, err)
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode collection %s: %w", collection, err)
	}
	payload, ok := doc[collection]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode collection %s records: %w", collection, err)
	}
	return nil
}

// writeDoc persists {"<key>": <payload>} crash-safely: the live file is first
// copied to a .backup sibling (best effort), the new content goes to a .tmp
// sibling, and the rename over the target is atomic so a crash mid-write can
// never corrupt the live file. The caller must hold the collection lock.
func (s *Store) writeDoc(collection string, payload any) error {
	path := s.pathFor(collection)
	if current, err := os.ReadFile(path); err == nil {
		// Best effort; a failed backup must not block the write.
		_ = os.WriteFile(path+".backup", current, 0o644)
	}
	encoded, err := json.MarshalIndent(map[string]any{collection: payload}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit collection %s: %w", collection, err)
	}
	return nil
}
