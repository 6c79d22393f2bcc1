package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/ipcli/internal/config"
	"github.com/aretw0/ipcli/pkg/command"
	"github.com/aretw0/ipcli/pkg/ports"
)

// ScriptManager implements the 'script' subcommands over a ScriptStore.
type ScriptManager struct {
	Store ports.ScriptStore
	Out   io.Writer
	close func() error
}

// NewScriptManager opens the store selected by cfg.
func NewScriptManager(cfg config.Store, out io.Writer, debug bool) (*ScriptManager, error) {
	store, closeStore, err := OpenStore(cfg, createLogger(debug))
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}
	return &ScriptManager{Store: store, Out: out, close: closeStore}, nil
}

// Close releases the store.
func (m *ScriptManager) Close() error {
	if m.close == nil {
		return nil
	}
	return m.close()
}

// List prints one stored script name per line.
func (m *ScriptManager) List(ctx context.Context) error {
	names, err := m.Store.List(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(m.Out, "No scripts found.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(m.Out, name)
	}
	return nil
}

// Show prints a stored script as saved.
func (m *ScriptManager) Show(ctx context.Context, name string) error {
	script, err := m.Store.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load script %q: %w", name, err)
	}
	fmt.Fprint(m.Out, script)
	return nil
}

// Save imports the script file at path under name.
// Every command is parsed first so a broken file is never stored.
func (m *ScriptManager) Save(ctx context.Context, name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	script := string(data)
	for _, segment := range command.SplitScript(script) {
		if _, err := command.Parse(segment); err != nil {
			return fmt.Errorf("script %s is invalid: %w", path, err)
		}
	}
	if err := m.Store.Save(ctx, name, script); err != nil {
		return err
	}
	fmt.Fprintf(m.Out, "Script '%s' saved.\n", name)
	return nil
}

// Remove deletes a stored script.
func (m *ScriptManager) Remove(ctx context.Context, name string) error {
	if _, err := m.Store.Load(ctx, name); err != nil {
		return fmt.Errorf("failed to remove script %q: %w", name, err)
	}
	if err := m.Store.Delete(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(m.Out, "Script '%s' removed.\n", name)
	return nil
}
