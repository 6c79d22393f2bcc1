package runner

import (
	"context"

	"github.com/aretw0/ipcli/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (terminal) and JSON (structured) modes.
type IOHandler interface {
	// Output presents events to the user. Error events go to the error channel.
	Output(ctx context.Context, events ...domain.OutputEvent) error

	// Input prompts for and reads one line, without the trailing newline.
	// It returns io.EOF when the input stream is exhausted.
	Input(ctx context.Context) (string, error)
}

// ContentRenderer is a function that transforms text before it is shown.
// The runner uses it for the help text (markdown to ANSI) without coupling to a terminal library.
type ContentRenderer func(string) (string, error)

// Publisher receives a snapshot of the session after every redraw.
type Publisher interface {
	Publish(domain.Snapshot)
}
