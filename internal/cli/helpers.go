package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/ipcli/internal/logging"
	"github.com/aretw0/ipcli/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the canvas on Stdout).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(ctx context.Context, e *domain.CommandEvent) {
			if e.Warning != "" {
				logger.Debug("Command (Warning)", "command", e.Command, "result", e.Result, "changed", e.Changed, "err", e.Warning)
				return
			}
			logger.Debug("Command", "command", e.Command, "result", e.Result, "changed", e.Changed, "replayed", e.Replayed)
		},
		OnRedraw: func(ctx context.Context, e *domain.RedrawEvent) {
			logger.Debug("Redraw", "width", e.Width, "height", e.Height, "pixels_on", e.PixelsOn)
		},
		OnReplay: func(ctx context.Context, e *domain.ReplayEvent) {
			logger.Debug("Replay", "phase", e.Type, "source", e.Source, "commands", e.Commands, "errors", e.Errors)
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

// handleExecutionError maps interruptions to a clean exit.
func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}

// logCompletion prints how an interactive session ended when a signal stopped it.
func logCompletion(w io.Writer, sig os.Signal, quiet bool) {
	if quiet || sig == nil {
		return
	}
	if sig == os.Interrupt {
		fmt.Fprintf(w, "[CTRL+C]\n")
		return
	}
	fmt.Fprintf(w, "\n")
}
