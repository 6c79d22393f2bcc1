package ipcli_test

import (
	"strings"
	"testing"

	"github.com/aretw0/ipcli"
	"github.com/aretw0/ipcli/pkg/command"
	"github.com/aretw0/ipcli/pkg/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidDimensions(t *testing.T) {
	_, err := ipcli.New(0, 10, false)
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
}

func TestEditor_History(t *testing.T) {
	ed, err := ipcli.New(10, 10, false)
	require.NoError(t, err)

	lines := []string{
		"  Write 1 1 T  ",   // accepted, trimmed, case kept
		"help",              // never recorded
		"write 1",           // usage error
		"paint",             // unrecognized
		"",                  // empty
		"dump",              // never recorded
		"w -3 0 t",          // warning, still accepted
		"dc 5 5 2 t",        // accepted
		"quit",              // never recorded
	}
	for _, l := range lines {
		ed.Execute(l)
	}

	assert.Equal(t, []string{"Write 1 1 T", "w -3 0 t", "dc 5 5 2 t"}, ed.History())
	assert.Equal(t, "Write 1 1 T;\nw -3 0 t;\ndc 5 5 2 t;\n", ed.Dump())
}

func TestEditor_DumpReplayFidelity(t *testing.T) {
	ed, err := ipcli.New(12, 8, false)
	require.NoError(t, err)

	for _, l := range []string{
		"dr 1 1 5 3 t",
		"r 16 10",
		"dl 0 9 15 0 t",
		"f 0 0 t",
		"i",
		"dco 8 5 4 t",
		"db 0 0 8 9 15 0 f",
		"c t",
		"dro 2 2 6 4 f",
		"w 3 3 t",
	} {
		res := ed.Execute(l)
		require.Equal(t, command.KindOK, res.Kind, l)
	}

	fresh, err := ipcli.New(12, 8, false)
	require.NoError(t, err)
	report := fresh.Replay(ed.Dump(), nil)

	assert.Equal(t, 10, report.Commands)
	assert.Zero(t, report.Errors)
	assert.True(t, ed.Image().Equal(fresh.Image()))
	assert.Empty(t, fresh.History(), "replayed commands are not recorded")
}

func TestEditor_ReplayContinuesPastErrors(t *testing.T) {
	ed, err := ipcli.New(10, 10, false)
	require.NoError(t, err)

	var seen []command.Kind
	report := ed.Replay("w 1 1 t; bogus 1; w 2; w -1 -1 t;;w 3 3 t", func(res command.Result) {
		seen = append(seen, res.Kind)
	})

	assert.Equal(t, 5, report.Commands)
	assert.Equal(t, 2, report.Errors)
	assert.Equal(t, 1, report.Warnings)
	assert.False(t, report.Quit)
	assert.Equal(t, []command.Kind{
		command.KindOK, command.KindUnrecognized, command.KindUsage, command.KindOK, command.KindOK,
	}, seen)
	assert.True(t, ed.Image().At(1, 1))
	assert.True(t, ed.Image().At(3, 3))
}

func TestEditor_ReplayStopsAtQuit(t *testing.T) {
	ed, err := ipcli.New(10, 10, false)
	require.NoError(t, err)

	report := ed.Replay("w 1 1 t;q;w 2 2 t;", nil)
	assert.True(t, report.Quit)
	assert.Equal(t, 2, report.Commands)
	assert.True(t, ed.Image().At(1, 1))
	assert.False(t, ed.Image().At(2, 2))
}

func TestEditor_ScriptLeavesCanvasUnchanged(t *testing.T) {
	ed, err := ipcli.New(10, 10, false)
	require.NoError(t, err)
	before := ed.Image().Clone()

	ed.Replay("write 2 2 t;fill 2 2 f;", nil)
	assert.True(t, before.Equal(ed.Image()))
}

func TestEditor_Render(t *testing.T) {
	ed, err := ipcli.New(2, 1, false)
	require.NoError(t, err)
	ed.Execute("w 0 0 t")

	frame := ed.Render()
	assert.True(t, strings.HasPrefix(frame, "+----+\n"))
	assert.Contains(t, frame, "|██  |")
}
