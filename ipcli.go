package ipcli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/ipcli/pkg/command"
	"github.com/aretw0/ipcli/pkg/raster"
	"github.com/aretw0/ipcli/pkg/render"
)

// Version is the current release of ipcli.
const Version = "0.4.0"

// Editor is the high-level entry point for the ipcli library.
// It exclusively owns the image, the interpreter bound to it, and the history of
// accepted commands.
type Editor struct {
	image   *raster.Image
	interp  *command.Interpreter
	history []string
	render  render.Options
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Editor.
type Option func(*Editor)

// WithRenderOptions sets the glyphs and frame used by Render.
func WithRenderOptions(opts render.Options) Option {
	return func(e *Editor) {
		e.render = opts
	}
}

// WithLogger sets a custom structured logger for the editor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// New creates an editor over a width x height image filled with color.
// It fails with raster.ErrInvalidDimensions if either dimension is below 1.
func New(width, height int, color bool, opts ...Option) (*Editor, error) {
	img, err := raster.New(width, height, color)
	if err != nil {
		return nil, err
	}
	e := &Editor{
		image:  img,
		interp: command.NewInterpreter(img),
		render: render.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e, nil
}

// Image returns the image owned by the editor. Callers must not keep it across commands.
func (e *Editor) Image() *raster.Image {
	return e.image
}

// Render returns the current image as text using the editor's render options.
func (e *Editor) Render() string {
	return render.Text(e.image, e.render)
}

// Execute runs one command line and appends it to the history if it was accepted.
func (e *Editor) Execute(line string) command.Result {
	line = strings.TrimSpace(line)
	res := e.interp.Run(line)
	if res.Accepted() {
		e.history = append(e.history, line)
	}
	e.logger.Debug("command executed",
		"command", res.Name(),
		"result", res.Kind.String(),
		"accepted", res.Accepted(),
		"err", res.Err,
	)
	return res
}

// History returns the accepted commands in input order.
func (e *Editor) History() []string {
	return append([]string(nil), e.history...)
}

// Dump returns the history as a script that Replay accepts.
func (e *Editor) Dump() string {
	return command.FormatScript(e.history)
}

// ReplayReport summarizes a script replay.
type ReplayReport struct {
	// Commands counts the non-empty segments that were run.
	Commands int
	// Errors counts usage errors and unrecognized commands.
	Errors int
	// Warnings counts accepted commands that raised a recoverable warning.
	Warnings int
	// Quit is set when the script contained a quit command; later segments were skipped.
	Quit bool
}

// Replay runs every command of script against the image without recording them.
// Failing segments are passed to observe and do not stop the replay.
// observe may be nil.
func (e *Editor) Replay(script string, observe func(command.Result)) ReplayReport {
	var report ReplayReport
	for _, segment := range command.SplitScript(script) {
		res := e.interp.Run(strings.TrimSpace(segment))
		if res.Kind == command.KindEmpty {
			continue
		}
		report.Commands++
		switch {
		case res.Kind != command.KindOK:
			report.Errors++
		case res.Err != nil:
			report.Warnings++
		}
		if observe != nil {
			observe(res)
		}
		if _, ok := res.Command.(command.Quit); ok {
			report.Quit = true
			break
		}
	}
	e.logger.Debug("script replayed",
		"commands", report.Commands,
		"errors", report.Errors,
		"warnings", report.Warnings,
		"quit", report.Quit,
	)
	return report
}
