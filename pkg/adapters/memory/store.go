package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/ipcli/pkg/domain"
)

// Store implements ports.ScriptStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]string),
	}
}

// Save keeps the script in memory.
func (s *Store) Save(ctx context.Context, name string, script string) error {
	if err := domain.ValidateScriptName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = script
	return nil
}

// Load retrieves the script from memory.
func (s *Store) Load(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	script, ok := s.data[name]
	if !ok {
		return "", domain.ErrScriptNotFound
	}
	return script, nil
}

// Delete removes the script.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the stored script names in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
