package command

import (
	"fmt"
	"strings"
)

// HelpText returns the help body listing every command with its alias and arguments.
// It is markdown that also reads well as plain text.
func HelpText() string {
	var b strings.Builder
	b.WriteString("# ipcli\n\n")
	b.WriteString("Commands are case-insensitive. Colors are `t` (on) or `f` (off).\n\n")
	for _, s := range table {
		usage := ""
		if len(s.Args) > 0 {
			usage = " " + s.Usage()
		}
		fmt.Fprintf(&b, "- `%s`, `%s`%s: %s\n", s.Name, s.Alias, usage, s.Summary)
	}
	fmt.Fprintf(&b, "\nSeparate commands with `%s` in a script file.\n", ScriptDelimiter)
	return b.String()
}
