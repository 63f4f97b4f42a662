package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// DefaultDir is the directory used by DirStore when none is given
const DefaultDir = "transactions"

// Store persists a named artifact
type Store interface {
	Save(ctx context.Context, name string, data []byte) error
}

// DirStore saves artifacts as files in a local directory
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at dir. The directory is created
// lazily on the first save.
func NewDirStore(dir string) *DirStore {
	if dir == "" {
		dir = DefaultDir
	}
	return &DirStore{dir: dir}
}

// Dir returns the directory artifacts are written to
func (s *DirStore) Dir() string {
	return s.dir
}

// Save writes data to dir/name, creating the directory if needed
func (s *DirStore) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// MemoryStore keeps artifacts in memory
type MemoryStore struct {
	mu        sync.RWMutex
	artifacts map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{artifacts: make(map[string][]byte)}
}

// Save stores a copy of data under name
func (s *MemoryStore) Save(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts[name] = append([]byte(nil), data...)
	return nil
}

// Get returns the artifact stored under name
func (s *MemoryStore) Get(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.artifacts[name]
	return data, ok
}

// Names returns the stored artifact names in sorted order
func (s *MemoryStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.artifacts))
	for name := range s.artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
