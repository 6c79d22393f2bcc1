package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/ipcli/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONHandler_Output(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewJSONHandler(strings.NewReader(""), buf)

	err := handler.Output(context.Background(),
		domain.OutputEvent{Kind: domain.OutputCanvas, Text: "+--+\n+--+"},
		domain.OutputEvent{Kind: domain.OutputError, Text: "clear: invalid options"},
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "one JSON object per line")

	var first map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "canvas", first["type"])
	assert.Equal(t, "+--+\n+--+", first["text"])

	var second domain.OutputEvent
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, domain.OutputError, second.Kind)
}

func TestJSONHandler_Input(t *testing.T) {
	in := strings.NewReader("\"w 1 1 t\"\ndc 4 4 2 t\n")
	handler := NewJSONHandler(in, io.Discard)
	ctx := context.Background()

	val, err := handler.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "w 1 1 t", val, "JSON strings are decoded")

	val, err = handler.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dc 4 4 2 t", val, "plain text passes through")

	_, err = handler.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
}
