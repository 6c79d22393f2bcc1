package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/ipcli/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBootArgs(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, applyBootArgs(&cfg, nil))
	assert.Equal(t, 10, cfg.Width)

	require.NoError(t, applyBootArgs(&cfg, []string{"20", "15", "T"}))
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 15, cfg.Height)
	assert.True(t, cfg.Color)

	for _, args := range [][]string{
		{"x", "5", "t"},
		{"5", "5", "maybe"},
		{"5", "99999999999", "f"},
	} {
		err := applyBootArgs(&cfg, args)
		require.ErrorIs(t, err, errBootArgs, args)
		assert.Equal(t, "ipcli: invalid options\nusage: "+bootUsage, err.Error())
	}
}

func TestValidateBootArgs(t *testing.T) {
	assert.NoError(t, validateBootArgs(rootCmd, nil))
	assert.NoError(t, validateBootArgs(rootCmd, []string{"1", "2", "t"}))
	assert.ErrorIs(t, validateBootArgs(rootCmd, []string{"1"}), errBootArgs)
	assert.ErrorIs(t, validateBootArgs(rootCmd, []string{"1", "2", "t", "x"}), errBootArgs)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "ipcli version ")
}

func TestScriptCommands(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.ipcli")
	require.NoError(t, os.WriteFile(file, []byte("i;\n"), 0644))
	store := filepath.Join(dir, "scripts")

	run := func(args ...string) string {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(append(args, "--store", "file", "--store-dir", store))
		require.NoError(t, rootCmd.Execute(), args)
		return out.String()
	}
	defer rootCmd.SetArgs(nil)

	assert.Equal(t, "Script 'inv' saved.\n", run("script", "save", "inv", file))
	assert.Equal(t, "inv\n", run("script", "ls"))
	assert.Equal(t, "i;\n", run("script", "show", "inv"))
	assert.Equal(t, "Script 'inv' removed.\n", run("script", "rm", "inv"))
}
