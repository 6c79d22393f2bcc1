package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ipcli banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _            _ _ ", "#818cf8"},
		{"(_)_ __   ___| (_)", "#a78bfa"},
		{"| | '_ \\ / __| | |", "#c084fc"},
		{"| | |_) | (__| | |", "#e879f9"},
		{"|_| .__/ \\___|_|_|", "#f472b6"},
		{"  |_|             ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// ErrorStyle returns a function that paints error-channel messages red.
// On terminals without color support the text is returned unchanged.
func ErrorStyle() func(string) string {
	p := termenv.ColorProfile()
	if p == termenv.Ascii {
		return nil
	}
	red := p.Color("1")
	return func(s string) string {
		return termenv.String(s).Foreground(red).String()
	}
}
