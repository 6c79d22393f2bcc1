package command

import "strings"

// ScriptDelimiter separates commands in a script.
const ScriptDelimiter = ";"

// SplitScript splits a script into its command segments, top to bottom.
// Segments are returned as written; blank segments parse as Empty.
func SplitScript(script string) []string {
	return strings.Split(script, ScriptDelimiter)
}

// FormatScript writes commands one per line, each terminated by the delimiter,
// so the result can be replayed with SplitScript.
func FormatScript(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString(ScriptDelimiter)
		b.WriteByte('\n')
	}
	return b.String()
}
