// Package render turns a pixel grid into a human-readable text block.
package render

import "strings"

// Default glyphs used by the interactive editor. Each pixel is two columns wide so the
// grid keeps a roughly square aspect ratio in a terminal.
const (
	DefaultFill       = "██"
	DefaultBackground = "  "
)

// Source is the read-only view of a grid needed for rendering.
type Source interface {
	Width() int
	Height() int
	At(x, y int) bool
}

// Options controls how a grid is rendered.
type Options struct {
	Fill       string
	Background string
	Framed     bool
}

// DefaultOptions returns the glyphs and frame used by the interactive editor.
func DefaultOptions() Options {
	return Options{Fill: DefaultFill, Background: DefaultBackground, Framed: true}
}

// Text renders one line per row, replacing each pixel with the fill or background glyph.
// A framed render is wrapped in a "+--+" rule sized to twice the width and "|" borders.
// The result has no trailing newline.
func Text(src Source, opts Options) string {
	var b strings.Builder
	rule := ""
	side := ""
	if opts.Framed {
		rule = "+" + strings.Repeat("-", 2*src.Width()) + "+"
		side = "|"
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	for y := 0; y < src.Height(); y++ {
		b.WriteString(side)
		for x := 0; x < src.Width(); x++ {
			if src.At(x, y) {
				b.WriteString(opts.Fill)
			} else {
				b.WriteString(opts.Background)
			}
		}
		b.WriteString(side)
		if y < src.Height()-1 || opts.Framed {
			b.WriteByte('\n')
		}
	}
	b.WriteString(rule)
	return b.String()
}
