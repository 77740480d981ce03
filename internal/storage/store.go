package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Store is the persistence port for draft/session state keyed by file path.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// FileStore keeps the whole store as one JSON document on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
	data string
}

// NewFileStore opens (or initializes) the JSON store at path.
func NewFileStore(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open store %s: %w", path, err)
		}
		data = nil
	}
	if len(data) == 0 {
		data = []byte("{}")
	}
	return &FileStore{path: path, data: string(data)}, nil
}

// Get returns the stored value for key.
func (f *FileStore) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := gjson.Get(f.data, escapeKey(key))
	if !res.Exists() {
		return "", false
	}
	return res.String(), true
}

// Set stores value under key and persists the document.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next, err := sjson.Set(f.data, escapeKey(key), value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	f.data = next
	return f.persist()
}

// Remove deletes key and persists the document. Removing an absent key is
// not an error.
func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next, err := sjson.Delete(f.data, escapeKey(key))
	if err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	f.data = next
	return f.persist()
}

// persist writes the document to a temp file and renames it into place.
func (f *FileStore) persist() error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(f.data), 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// escapeKey neutralizes JSON-path metacharacters so arbitrary file paths
// (which contain dots) address a single flat key.
func escapeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *MemStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

// Set stores value under key.
func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Remove deletes key.
func (m *MemStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
