package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/ipcli/pkg/domain"
)

// Extension is appended to every script file name.
const Extension = ".ipcli"

// Store implements ports.ScriptStore using the local filesystem.
// Each script is a plain text file in a configured directory, in the same format dump prints.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".ipcli/scripts".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".ipcli", "scripts")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.BasePath, name+Extension)
}

// Save persists the script atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Save(ctx context.Context, name string, script string) error {
	if err := domain.ValidateScriptName(name); err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure script directory: %w", err)
	}

	// Same directory keeps the rename on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+name+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.WriteString(script); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	destPath := s.path(name)
	if _, err := os.Stat(destPath); err == nil {
		// os.Rename does not replace on Windows.
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing script for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to script: %w", err)
	}
	return nil
}

// Load reads the script file.
func (s *Store) Load(ctx context.Context, name string) (string, error) {
	if err := domain.ValidateScriptName(name); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrScriptNotFound
		}
		return "", fmt.Errorf("failed to read script file: %w", err)
	}
	return string(data), nil
}

// Delete removes the script file.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := domain.ValidateScriptName(name); err != nil {
		return err
	}

	err := os.Remove(s.path(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete script file: %w", err)
	}
	return nil
}

// List returns the names of all script files in the directory.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list scripts: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Extension))
	}
	sort.Strings(names)
	return names, nil
}
