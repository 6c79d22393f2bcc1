package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/ipcli"
	"github.com/aretw0/ipcli/pkg/command"
	"github.com/aretw0/ipcli/pkg/domain"
	"github.com/aretw0/ipcli/pkg/ports"
)

// DefaultWelcome is printed when an interactive session starts.
const DefaultWelcome = "Welcome to ipcli. Type 'help' for help. Type 'quit' to quit."

// Runner handles the read-execute-render loop of an Editor using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Editor owns the image and the history. Required.
	Editor *ipcli.Editor

	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Store persists the session dump under RecordAs when the session ends.
	// If either is unset, sessions are not recorded.
	Store    ports.ScriptStore
	RecordAs string

	Hooks     domain.LifecycleHooks
	Publisher Publisher
	Renderer  ContentRenderer
	Welcome   string

	// dirty is set while the canvas on screen is stale.
	dirty bool
}

// NewRunner creates a Runner. The first frame is always drawn.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Welcome: DefaultWelcome,
		dirty:   true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run executes the interactive loop until quit, end of input or context cancellation.
// The canvas is drawn before the first prompt and afterwards only when a command changed it.
func (r *Runner) Run(ctx context.Context) error {
	if r.Editor == nil {
		return errors.New("runner: no editor configured")
	}
	handler := r.resolveHandler()

	if r.Welcome != "" {
		if err := handler.Output(ctx, domain.OutputEvent{Kind: domain.OutputSystem, Text: r.Welcome}); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}

	for {
		if r.dirty {
			if err := r.redraw(ctx, handler); err != nil {
				return err
			}
		}

		line, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				r.Logger.Debug("input closed", "err", err)
				break
			}
			return fmt.Errorf("input error: %w", err)
		}

		quit, err := r.step(ctx, handler, line)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}

	return r.Record(context.WithoutCancel(ctx))
}

// Replay runs script against the editor without recording it in the history.
// The start and end of the run are announced as system messages; failing commands are
// reported on the error channel and the replay continues.
// It returns true if the script contained a quit command.
func (r *Runner) Replay(ctx context.Context, source, script string) (bool, error) {
	if r.Editor == nil {
		return false, errors.New("runner: no editor configured")
	}
	handler := r.resolveHandler()
	r.fireReplay(ctx, domain.EventReplayStart, source, ipcli.ReplayReport{})
	if err := r.output(ctx, handler, domain.OutputEvent{Kind: domain.OutputSystem, Text: "replaying " + source}); err != nil {
		return false, err
	}

	before := r.Editor.Image().Clone()
	var outErr error
	report := r.Editor.Replay(script, func(res command.Result) {
		r.fireCommand(ctx, res, false, true)
		if res.Err == nil || outErr != nil {
			return
		}
		outErr = handler.Output(ctx, domain.OutputEvent{Kind: domain.OutputError, Text: describe(res)})
	})
	if !before.Equal(r.Editor.Image()) {
		r.dirty = true
	}

	r.fireReplay(ctx, domain.EventReplayEnd, source, report)
	r.Logger.Debug("replay finished", "source", source, "commands", report.Commands, "errors", report.Errors)
	if outErr != nil {
		return report.Quit, fmt.Errorf("output error: %w", outErr)
	}
	return report.Quit, r.output(ctx, handler, domain.OutputEvent{Kind: domain.OutputSystem, Text: summarize(source, report)})
}

// step runs one input line. It returns true when the session should end.
func (r *Runner) step(ctx context.Context, handler IOHandler, line string) (bool, error) {
	clean, err := SanitizeInput(line)
	if err != nil {
		r.Logger.Debug("input rejected", "err", err)
		return false, r.output(ctx, handler, domain.OutputEvent{Kind: domain.OutputError, Text: err.Error()})
	}

	before := r.Editor.Image().Clone()
	res := r.Editor.Execute(clean)
	changed := !before.Equal(r.Editor.Image())
	if changed {
		r.dirty = true
	}
	r.fireCommand(ctx, res, changed, false)
	if res.Accepted() && !changed {
		// No redraw follows, but the history grew.
		r.publish(r.Editor.Render())
	}

	var events []domain.OutputEvent
	if res.Err != nil {
		events = append(events, domain.OutputEvent{Kind: domain.OutputError, Text: describe(res)})
	}
	quit := false
	switch res.Command.(type) {
	case command.Help:
		events = append(events, domain.OutputEvent{Kind: domain.OutputText, Text: r.help()})
	case command.Dump:
		events = append(events, domain.OutputEvent{Kind: domain.OutputText, Text: r.Editor.Dump()})
	case command.Quit:
		quit = true
	}
	if len(events) == 0 {
		return quit, nil
	}
	return quit, r.output(ctx, handler, events...)
}

func (r *Runner) output(ctx context.Context, handler IOHandler, events ...domain.OutputEvent) error {
	if err := handler.Output(ctx, events...); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}

func (r *Runner) redraw(ctx context.Context, handler IOHandler) error {
	frame := r.Editor.Render()
	if err := r.output(ctx, handler, domain.OutputEvent{Kind: domain.OutputCanvas, Text: frame}); err != nil {
		return err
	}
	r.dirty = false

	if r.Hooks.OnRedraw != nil {
		img := r.Editor.Image()
		r.Hooks.OnRedraw(ctx, &domain.RedrawEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRedraw},
			Width:     img.Width(),
			Height:    img.Height(),
			PixelsOn:  img.CountOn(),
		})
	}
	r.publish(frame)
	return nil
}

func (r *Runner) publish(frame string) {
	if r.Publisher == nil {
		return
	}
	img := r.Editor.Image()
	r.Publisher.Publish(domain.Snapshot{
		Frame:     frame,
		Script:    r.Editor.Dump(),
		Width:     img.Width(),
		Height:    img.Height(),
		PixelsOn:  img.CountOn(),
		Commands:  len(r.Editor.History()),
		UpdatedAt: time.Now(),
	})
}

func (r *Runner) help() string {
	text := command.HelpText()
	if r.Renderer == nil {
		return text
	}
	rendered, err := r.Renderer(text)
	if err != nil {
		r.Logger.Debug("help render failed", "err", err)
		return text
	}
	return rendered
}

// Record saves the session dump if a store and a name are configured.
// Run calls it when the loop ends; callers that skip the loop call it themselves.
func (r *Runner) Record(ctx context.Context) error {
	if r.Store == nil || r.RecordAs == "" {
		return nil
	}
	if err := r.Store.Save(ctx, r.RecordAs, r.Editor.Dump()); err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	r.Logger.Debug("session recorded", "name", r.RecordAs, "commands", len(r.Editor.History()))
	return nil
}

func (r *Runner) fireCommand(ctx context.Context, res command.Result, changed, replayed bool) {
	if r.Hooks.OnCommand == nil {
		return
	}
	ev := &domain.CommandEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventCommand},
		Line:      res.Line,
		Command:   res.Name(),
		Result:    res.Kind.String(),
		Accepted:  res.Accepted() && !replayed,
		Changed:   changed,
		PixelsOn:  r.Editor.Image().CountOn(),
		Replayed:  replayed,
	}
	if res.Kind == command.KindOK && res.Err != nil {
		ev.Warning = res.Err.Error()
	}
	r.Hooks.OnCommand(ctx, ev)
}

func (r *Runner) fireReplay(ctx context.Context, typ domain.EventType, source string, report ipcli.ReplayReport) {
	if r.Hooks.OnReplay == nil {
		return
	}
	r.Hooks.OnReplay(ctx, &domain.ReplayEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
		Source:    source,
		Commands:  report.Commands,
		Errors:    report.Errors,
		Quit:      report.Quit,
	})
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r.Handler
}

func summarize(source string, report ipcli.ReplayReport) string {
	return fmt.Sprintf("replayed %s: %d commands, %d errors, %d warnings",
		source, report.Commands, report.Errors, report.Warnings)
}

// describe formats a failed or warned command for the error channel.
// Usage and unknown-command errors carry their own text; warnings are prefixed with the command name.
func describe(res command.Result) string {
	if res.Kind == command.KindOK {
		return fmt.Sprintf("%s: %v", res.Name(), res.Err)
	}
	return res.Err.Error()
}
