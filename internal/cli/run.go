package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/ipcli"
	"github.com/aretw0/ipcli/internal/config"
	"github.com/aretw0/ipcli/internal/presentation/tui"
	httpview "github.com/aretw0/ipcli/pkg/adapters/http"
	"github.com/aretw0/ipcli/pkg/domain"
	"github.com/aretw0/ipcli/pkg/observability"
	"github.com/aretw0/ipcli/pkg/ports"
	"github.com/aretw0/ipcli/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/term"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Config config.Config

	ScriptPath string // replayed from disk before the loop
	Load       string // replayed from the store before the loop
	Record     string // session dump is saved under this name on exit
	JSON       bool
	Debug      bool

	// Stdin, Stdout and Stderr default to the process streams.
	// Colors, banner and markdown help are only used on a real terminal.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Store overrides the store built from Config.Store.
	Store ports.ScriptStore

	// onListen is called with the bound address of the HTTP view.
	onListen func(addr string)
}

// Execute handles the 'run' command logic: it boots the editor, replays any
// requested script and hands over to the interactive loop.
func Execute(opts RunOptions) error {
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	err := execute(sigCtx, opts)
	logCompletion(stdoutOf(opts), sigCtx.Signal(), opts.JSON)
	return handleExecutionError(err)
}

func execute(ctx context.Context, opts RunOptions) error {
	logger := createLogger(opts.Debug)
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	editor, err := ipcli.New(cfg.Width, cfg.Height, cfg.Color,
		ipcli.WithRenderOptions(cfg.RenderOptions()),
		ipcli.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	terminal := opts.Stdin == nil && opts.Stdout == nil &&
		term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	stdin, stdout, stderr := opts.Stdin, stdoutOf(opts), opts.Stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	runnerOpts := []runner.Option{
		runner.WithEditor(editor),
		runner.WithLogger(logger),
		runner.WithWelcome(""),
	}
	if opts.Debug {
		runnerOpts = append(runnerOpts, runner.WithHooks(createDebugHooks(logger)))
	}

	var handler runner.IOHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(stdin, stdout)
	} else {
		textOpts := []runner.TextHandlerOption{
			runner.WithPrompt(cfg.Prompt),
			runner.WithErrorWriter(stderr),
		}
		if terminal {
			tui.PrintBanner(stdout)
			textOpts = append(textOpts, runner.WithErrorStyle(tui.ErrorStyle()))
			runnerOpts = append(runnerOpts, runner.WithRenderer(tui.NewRenderer()))
		}
		handler = runner.NewTextHandler(stdin, stdout, textOpts...)
	}
	runnerOpts = append(runnerOpts, runner.WithInputHandler(handler))

	store := opts.Store
	if store == nil && (opts.Load != "" || opts.Record != "") {
		s, closeStore, err := OpenStore(cfg.Store, logger)
		if err != nil {
			return fmt.Errorf("failed to open script store: %w", err)
		}
		defer closeStore()
		store = s
	}
	if store != nil && opts.Record != "" {
		if err := domain.ValidateScriptName(opts.Record); err != nil {
			return err
		}
		runnerOpts = append(runnerOpts, runner.WithStore(store), runner.WithRecordAs(opts.Record))
	}

	if cfg.Listen != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		metrics := observability.NewMetrics(reg)
		view := httpview.NewView(logger)

		srv, err := startViewServer(cfg.Listen, view, reg, logger)
		if err != nil {
			return fmt.Errorf("failed to start HTTP view: %w", err)
		}
		defer srv.Shutdown()
		if opts.onListen != nil {
			opts.onListen(srv.Addr())
		}
		runnerOpts = append(runnerOpts, runner.WithHooks(metrics.Hooks()), runner.WithPublisher(view))
	}

	r := runner.NewRunner(runnerOpts...)

	if err := handler.Output(ctx, domain.OutputEvent{Kind: domain.OutputSystem, Text: runner.DefaultWelcome}); err != nil {
		return err
	}

	if opts.ScriptPath != "" {
		data, err := os.ReadFile(opts.ScriptPath)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		quit, err := r.Replay(ctx, opts.ScriptPath, string(data))
		if err != nil {
			return err
		}
		if quit {
			return r.Record(context.WithoutCancel(ctx))
		}
	}
	if opts.Load != "" {
		script, err := store.Load(ctx, opts.Load)
		if err != nil {
			return fmt.Errorf("failed to load script %q: %w", opts.Load, err)
		}
		quit, err := r.Replay(ctx, opts.Load, script)
		if err != nil {
			return err
		}
		if quit {
			return r.Record(context.WithoutCancel(ctx))
		}
	}

	return r.Run(ctx)
}

func stdoutOf(opts RunOptions) io.Writer {
	if opts.Stdout != nil {
		return opts.Stdout
	}
	return os.Stdout
}

