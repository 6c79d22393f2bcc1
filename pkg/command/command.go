/*
Package command parses and executes ipcli command lines.

A line is tokenized, matched against the command table by long name or alias, and
validated against the entry's argument list. Parsing produces one of a closed set of
Command variants, so arity and argument types are checked once, before anything touches
the image.

# Results

The Interpreter reports every line as one of:

  - KindOK: the command parsed and ran (Result.Err may carry a recoverable warning).
  - KindUsage: a known command with the wrong arguments (*UsageError).
  - KindUnrecognized: an unknown command name (*UnknownCommandError).
  - KindEmpty: a blank line.
*/
package command

import (
	"github.com/aretw0/ipcli/pkg/draw"
	"github.com/aretw0/ipcli/pkg/raster"
)

// Command is a parsed command line. The set of implementations is closed.
type Command interface {
	// Name returns the long command name.
	Name() string
	command()
}

// Applier is a Command that mutates the image.
type Applier interface {
	Command
	Apply(img *raster.Image) error
}

// Empty is a blank line.
type Empty struct{}

// Help shows the help text.
type Help struct{}

// Dump prints the session history as a script.
type Dump struct{}

// Quit ends the session.
type Quit struct{}

// Invert flips every pixel.
type Invert struct{}

// Write sets one pixel.
type Write struct {
	X, Y  int
	Color bool
}

// Fill flood-fills the region around a seed pixel.
type Fill struct {
	X, Y  int
	Color bool
}

// Resize changes the canvas dimensions.
type Resize struct {
	W, H int
}

// Clear sets every pixel.
type Clear struct {
	Color bool
}

// DrawRectangle fills a box.
type DrawRectangle struct {
	X, Y, W, H int
	Color      bool
}

// DrawRectangleOutline draws the border of a box.
type DrawRectangleOutline struct {
	X, Y, W, H int
	Color      bool
}

// DrawLine draws a segment between two points.
type DrawLine struct {
	X1, Y1, X2, Y2 int
	Color          bool
}

// DrawCurve draws a quadratic Bezier curve through three control points.
type DrawCurve struct {
	X0, Y0, X1, Y1, X2, Y2 int
	Color                  bool
}

// DrawCircle fills a disk.
type DrawCircle struct {
	X, Y, R int
	Color   bool
}

// DrawCircleOutline draws a circle border.
type DrawCircleOutline struct {
	X, Y, R int
	Color   bool
}

func (Empty) Name() string                { return "" }
func (Help) Name() string                 { return "help" }
func (Dump) Name() string                 { return "dump" }
func (Quit) Name() string                 { return "quit" }
func (Invert) Name() string               { return "invert" }
func (Write) Name() string                { return "write" }
func (Fill) Name() string                 { return "fill" }
func (Resize) Name() string               { return "resize" }
func (Clear) Name() string                { return "clear" }
func (DrawRectangle) Name() string        { return "draw_rectangle" }
func (DrawRectangleOutline) Name() string { return "draw_rectangle_outline" }
func (DrawLine) Name() string             { return "draw_line" }
func (DrawCurve) Name() string            { return "draw_curve" }
func (DrawCircle) Name() string           { return "draw_circle" }
func (DrawCircleOutline) Name() string    { return "draw_circle_outline" }

func (Empty) command()                {}
func (Help) command()                 {}
func (Dump) command()                 {}
func (Quit) command()                 {}
func (Invert) command()               {}
func (Write) command()                {}
func (Fill) command()                 {}
func (Resize) command()               {}
func (Clear) command()                {}
func (DrawRectangle) command()        {}
func (DrawRectangleOutline) command() {}
func (DrawLine) command()             {}
func (DrawCurve) command()            {}
func (DrawCircle) command()           {}
func (DrawCircleOutline) command()    {}

func (Invert) Apply(img *raster.Image) error {
	img.Invert()
	return nil
}

func (c Write) Apply(img *raster.Image) error {
	return img.WritePixel(c.X, c.Y, c.Color)
}

func (c Fill) Apply(img *raster.Image) error {
	return draw.FloodFill(img, c.X, c.Y, c.Color)
}

func (c Resize) Apply(img *raster.Image) error {
	return img.Resize(c.W, c.H)
}

func (c Clear) Apply(img *raster.Image) error {
	img.Clear(c.Color)
	return nil
}

func (c DrawRectangle) Apply(img *raster.Image) error {
	return draw.Rectangle(img, c.X, c.Y, c.W, c.H, c.Color)
}

func (c DrawRectangleOutline) Apply(img *raster.Image) error {
	return draw.RectangleOutline(img, c.X, c.Y, c.W, c.H, c.Color)
}

func (c DrawLine) Apply(img *raster.Image) error {
	return draw.Line(img, c.X1, c.Y1, c.X2, c.Y2, c.Color)
}

func (c DrawCurve) Apply(img *raster.Image) error {
	return draw.Curve(img, c.X0, c.Y0, c.X1, c.Y1, c.X2, c.Y2, c.Color)
}

func (c DrawCircle) Apply(img *raster.Image) error {
	return draw.Circle(img, c.X, c.Y, c.R, c.Color)
}

func (c DrawCircleOutline) Apply(img *raster.Image) error {
	return draw.CircleOutline(img, c.X, c.Y, c.R, c.Color)
}
