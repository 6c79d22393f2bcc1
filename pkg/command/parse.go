package command

import (
	"fmt"
	"strconv"
	"strings"
)

// UsageError reports a known command invoked with the wrong number or type of arguments.
type UsageError struct {
	// Name is the command name as typed (long name or alias).
	Name  string
	Usage string
	Err   error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: invalid options\nusage: %s", e.Name, strings.TrimSpace(e.Name+" "+e.Usage))
}

func (e *UsageError) Unwrap() error { return e.Err }

// UnknownCommandError reports an unrecognized command name.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unrecognized option '%s'", e.Name)
}

// Tokenize lowercases a line and splits it on whitespace.
func Tokenize(line string) []string {
	return strings.Fields(strings.ToLower(line))
}

// ParseColor parses a color argument. The whole tokens "t" and "f" are shorthands for
// "true" and "false"; the match is case-insensitive and never applied to substrings.
func ParseColor(token string) (bool, error) {
	switch strings.ToLower(token) {
	case "t", "true":
		return true, nil
	case "f", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid color %q", token)
}

// ParseNumber parses a signed 32-bit integer argument.
func ParseNumber(token string) (int, error) {
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// Parse turns a command line into a Command.
// A blank line yields Empty. Unknown names yield *UnknownCommandError; arity or argument
// type mismatches yield *UsageError.
func Parse(line string) (Command, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Empty{}, nil
	}
	name, args := tokens[0], tokens[1:]
	spec, ok := Lookup(name)
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}

	usage := func(err error) error {
		return &UsageError{Name: name, Usage: spec.Usage(), Err: err}
	}
	if len(args) != len(spec.Args) {
		return nil, usage(fmt.Errorf("expected %d arguments, got %d", len(spec.Args), len(args)))
	}

	var (
		numbers []int
		c       bool
	)
	for i, a := range spec.Args {
		switch a.Kind {
		case ArgColor:
			v, err := ParseColor(args[i])
			if err != nil {
				return nil, usage(err)
			}
			c = v
		default:
			v, err := ParseNumber(args[i])
			if err != nil {
				return nil, usage(fmt.Errorf("argument %s: %w", a.Name, err))
			}
			numbers = append(numbers, v)
		}
	}
	return spec.build(numbers, c), nil
}
