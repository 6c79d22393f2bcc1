package command

import (
	"errors"

	"github.com/aretw0/ipcli/pkg/raster"
)

// Kind classifies the outcome of one command line.
type Kind int

const (
	KindOK Kind = iota
	KindUsage
	KindUnrecognized
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindUsage:
		return "usage_error"
	case KindUnrecognized:
		return "unrecognized"
	case KindEmpty:
		return "empty"
	}
	return "unknown"
}

// Result is the outcome of running one command line.
type Result struct {
	Line    string
	Kind    Kind
	Command Command
	// Err is the usage or unrecognized-command error, or for KindOK a recoverable
	// warning raised while the command ran.
	Err error
}

// Accepted reports whether the line belongs in the session history: it parsed, ran
// without a usage error, and is not one of the session commands help, dump or quit.
func (r Result) Accepted() bool {
	if r.Kind != KindOK {
		return false
	}
	switch r.Command.(type) {
	case Help, Dump, Quit:
		return false
	}
	return true
}

// Name returns the long name of the parsed command, or "" if it did not parse.
func (r Result) Name() string {
	if r.Command == nil {
		return ""
	}
	return r.Command.Name()
}

// Interpreter runs command lines against an image it borrows for each call.
type Interpreter struct {
	image *raster.Image
}

// NewInterpreter creates an interpreter bound to img.
func NewInterpreter(img *raster.Image) *Interpreter {
	return &Interpreter{image: img}
}

// Run parses line and, if it is valid, applies it to the image.
// Session commands (help, dump, quit) are parsed but have no effect here.
func (in *Interpreter) Run(line string) Result {
	res := Result{Line: line}
	cmd, err := Parse(line)
	if err != nil {
		res.Err = err
		var unknown *UnknownCommandError
		if errors.As(err, &unknown) {
			res.Kind = KindUnrecognized
		} else {
			res.Kind = KindUsage
		}
		return res
	}

	res.Command = cmd
	if _, ok := cmd.(Empty); ok {
		res.Kind = KindEmpty
		return res
	}
	res.Kind = KindOK
	if a, ok := cmd.(Applier); ok {
		res.Err = a.Apply(in.image)
	}
	return res
}
