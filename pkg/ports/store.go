package ports

import "context"

// ScriptStore defines the interface for persisting recorded scripts.
// A script is the text produced by dump, stored under a name so it can be
// replayed in a later session.
type ScriptStore interface {
	// Save persists the script under name, replacing any previous version.
	// Returns domain.ErrInvalidScriptName if name is not a valid key.
	Save(ctx context.Context, name string, script string) error

	// Load retrieves the script saved under name.
	// Returns domain.ErrScriptNotFound if the script does not exist.
	Load(ctx context.Context, name string) (string, error)

	// Delete removes the script. Deleting a missing script is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of every stored script.
	List(ctx context.Context) ([]string, error)
}
