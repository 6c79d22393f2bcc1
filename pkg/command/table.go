package command

import (
	"fmt"
	"strings"
)

// ArgKind is the type of a command argument.
type ArgKind int

const (
	// ArgNumber is a signed 32-bit integer (coordinates, sizes, radii).
	ArgNumber ArgKind = iota
	// ArgColor is a boolean; "t" and "f" are accepted as shorthands.
	ArgColor
)

// Arg describes one positional argument.
type Arg struct {
	Name string
	Kind ArgKind
}

func (a Arg) String() string {
	if a.Kind == ArgColor {
		return fmt.Sprintf("[%s: {t | f}]", a.Name)
	}
	return fmt.Sprintf("[%s: number]", a.Name)
}

// Spec is an entry of the command table.
type Spec struct {
	Name    string
	Alias   string
	Args    []Arg
	Summary string

	// build receives the parsed numbers in order and the color, if any.
	build func(n []int, color bool) Command
}

// Usage returns the argument synopsis, e.g. "[x: number] [y: number] [color: {t | f}]".
func (s Spec) Usage() string {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

func num(name string) Arg   { return Arg{Name: name, Kind: ArgNumber} }
func color(name string) Arg { return Arg{Name: name, Kind: ArgColor} }

var table = []Spec{
	{
		Name: "help", Alias: "h", Summary: "show this help",
		build: func([]int, bool) Command { return Help{} },
	},
	{
		Name: "dump", Alias: "d", Summary: "print the session history as a script",
		build: func([]int, bool) Command { return Dump{} },
	},
	{
		Name: "write", Alias: "w", Summary: "set one pixel",
		Args: []Arg{num("x"), num("y"), color("color")},
		build: func(n []int, c bool) Command {
			return Write{X: n[0], Y: n[1], Color: c}
		},
	},
	{
		Name: "fill", Alias: "f", Summary: "flood fill the region around a pixel",
		Args: []Arg{num("x"), num("y"), color("color")},
		build: func(n []int, c bool) Command {
			return Fill{X: n[0], Y: n[1], Color: c}
		},
	},
	{
		Name: "resize", Alias: "r", Summary: "resize the canvas (new pixels are off)",
		Args: []Arg{num("w"), num("h")},
		build: func(n []int, _ bool) Command {
			return Resize{W: n[0], H: n[1]}
		},
	},
	{
		Name: "clear", Alias: "c", Summary: "set every pixel",
		Args: []Arg{color("color")},
		build: func(_ []int, c bool) Command {
			return Clear{Color: c}
		},
	},
	{
		Name: "draw_rectangle", Alias: "dr", Summary: "fill a rectangle",
		Args: []Arg{num("x"), num("y"), num("w"), num("h"), color("color")},
		build: func(n []int, c bool) Command {
			return DrawRectangle{X: n[0], Y: n[1], W: n[2], H: n[3], Color: c}
		},
	},
	{
		Name: "draw_rectangle_outline", Alias: "dro", Summary: "draw a rectangle border",
		Args: []Arg{num("x"), num("y"), num("w"), num("h"), color("color")},
		build: func(n []int, c bool) Command {
			return DrawRectangleOutline{X: n[0], Y: n[1], W: n[2], H: n[3], Color: c}
		},
	},
	{
		Name: "draw_line", Alias: "dl", Summary: "draw a line",
		Args: []Arg{num("x1"), num("y1"), num("x2"), num("y2"), color("color")},
		build: func(n []int, c bool) Command {
			return DrawLine{X1: n[0], Y1: n[1], X2: n[2], Y2: n[3], Color: c}
		},
	},
	{
		Name: "draw_curve", Alias: "db", Summary: "draw a quadratic bezier curve",
		Args: []Arg{num("x0"), num("y0"), num("x1"), num("y1"), num("x2"), num("y2"), color("color")},
		build: func(n []int, c bool) Command {
			return DrawCurve{X0: n[0], Y0: n[1], X1: n[2], Y1: n[3], X2: n[4], Y2: n[5], Color: c}
		},
	},
	{
		Name: "draw_circle", Alias: "dc", Summary: "fill a disk",
		Args: []Arg{num("x"), num("y"), num("r"), color("color")},
		build: func(n []int, c bool) Command {
			return DrawCircle{X: n[0], Y: n[1], R: n[2], Color: c}
		},
	},
	{
		Name: "draw_circle_outline", Alias: "dco", Summary: "draw a circle border",
		Args: []Arg{num("x"), num("y"), num("r"), color("color")},
		build: func(n []int, c bool) Command {
			return DrawCircleOutline{X: n[0], Y: n[1], R: n[2], Color: c}
		},
	},
	{
		Name: "invert", Alias: "i", Summary: "invert every pixel",
		build: func([]int, bool) Command { return Invert{} },
	},
	{
		Name: "quit", Alias: "q", Summary: "leave the editor",
		build: func([]int, bool) Command { return Quit{} },
	},
}

var index = func() map[string]*Spec {
	m := make(map[string]*Spec, 2*len(table))
	for i := range table {
		m[table[i].Name] = &table[i]
		m[table[i].Alias] = &table[i]
	}
	return m
}()

// Specs returns a copy of the command table in display order.
func Specs() []Spec {
	return append([]Spec(nil), table...)
}

// Lookup finds a command by long name or alias (case-insensitive).
func Lookup(name string) (Spec, bool) {
	s, ok := index[strings.ToLower(name)]
	if !ok {
		return Spec{}, false
	}
	return *s, true
}
