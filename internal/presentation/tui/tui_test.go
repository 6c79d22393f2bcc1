package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/ipcli/pkg/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Help(t *testing.T) {
	render := NewRenderer()
	out, err := render(command.HelpText())
	require.NoError(t, err)
	assert.Contains(t, out, "draw_circle_outline")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Equal(t, 8, strings.Count(buf.String(), "\n"))
}
