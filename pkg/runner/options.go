package runner

import (
	"log/slog"

	"github.com/aretw0/ipcli"
	"github.com/aretw0/ipcli/pkg/domain"
	"github.com/aretw0/ipcli/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithEditor sets the editor driven by the runner. Required.
func WithEditor(editor *ipcli.Editor) Option {
	return func(r *Runner) {
		r.Editor = editor
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithStore configures the ScriptStore used to record the session.
func WithStore(store ports.ScriptStore) Option {
	return func(r *Runner) {
		r.Store = store
	}
}

// WithRecordAs saves the session dump under name when the session ends.
// This requires WithStore.
func WithRecordAs(name string) Option {
	return func(r *Runner) {
		r.RecordAs = name
	}
}

// WithHooks registers lifecycle callbacks. Repeated calls are merged.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.Hooks = domain.MergeHooks(r.Hooks, hooks)
	}
}

// WithPublisher configures where snapshots are sent after every redraw.
func WithPublisher(p Publisher) Option {
	return func(r *Runner) {
		r.Publisher = p
	}
}

// WithRenderer configures the renderer applied to the help text (e.g. markdown to ANSI).
func WithRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithWelcome sets the message shown when the interactive loop starts. Empty disables it.
func WithWelcome(msg string) Option {
	return func(r *Runner) {
		r.Welcome = msg
	}
}
