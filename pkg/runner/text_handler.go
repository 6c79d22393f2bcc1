package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/ipcli/pkg/domain"
)

// DefaultPrompt is printed before every interactive read.
const DefaultPrompt = "ipcli> "

// TextHandler implements the standard line-oriented terminal interface.
type TextHandler struct {
	Reader    *bufio.Reader
	Writer    io.Writer
	ErrWriter io.Writer
	Prompt    string

	// ErrorStyle decorates error-channel messages (e.g. red foreground). Nil leaves them plain.
	ErrorStyle func(string) string

	pumpOnce sync.Once
	lines    chan readResult
}

type readResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithPrompt sets the prompt string.
func WithPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// WithErrorWriter routes error events to w instead of stderr.
func WithErrorWriter(w io.Writer) TextHandlerOption {
	return func(h *TextHandler) {
		h.ErrWriter = w
	}
}

// WithErrorStyle configures the decoration applied to error events.
func WithErrorStyle(style func(string) string) TextHandlerOption {
	return func(h *TextHandler) {
		h.ErrorStyle = style
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:    bufio.NewReader(r),
		Writer:    w,
		ErrWriter: os.Stderr,
		Prompt:    DefaultPrompt,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Output(ctx context.Context, events ...domain.OutputEvent) error {
	for _, ev := range events {
		var err error
		switch ev.Kind {
		case domain.OutputError:
			msg := ev.Text
			if h.ErrorStyle != nil {
				msg = h.ErrorStyle(msg)
			}
			_, err = fmt.Fprintln(h.ErrWriter, msg)
		case domain.OutputText:
			_, err = fmt.Fprintln(h.Writer, strings.TrimRight(ev.Text, "\n"))
		default:
			_, err = fmt.Fprintln(h.Writer, ev.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Input prints the prompt and blocks until a full line is read or ctx is done.
// A final line without a newline is returned before io.EOF.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	h.pumpOnce.Do(h.startPump)
	fmt.Fprint(h.Writer, h.Prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-h.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

// startPump reads lines in the background so a blocked read never outlives a cancelled context.
func (h *TextHandler) startPump() {
	h.lines = make(chan readResult)
	go func() {
		defer close(h.lines)
		for {
			text, err := h.Reader.ReadString('\n')
			if err != nil {
				if err == io.EOF && text != "" {
					h.lines <- readResult{text: strings.TrimRight(text, "\r\n")}
				}
				h.lines <- readResult{err: err}
				return
			}
			h.lines <- readResult{text: strings.TrimRight(text, "\r\n")}
		}
	}()
}
