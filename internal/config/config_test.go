package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/ipcli/pkg/raster"
	"github.com/aretw0/ipcli/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, render.DefaultOptions(), cfg.RenderOptions())
	assert.Equal(t, 10, cfg.Width)
	assert.False(t, cfg.Color)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "ipcli.yaml", `
prompt: "> "
width: 20
height: "15"
color: true
frame: false
glyphs:
  fill: "#"
store:
  kind: redis
  redis_url: redis://localhost:6379/0
  prefix: "test:"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 15, cfg.Height, "weakly typed numbers are accepted")
	assert.True(t, cfg.Color)
	assert.Equal(t, render.Options{Fill: "#", Background: render.DefaultBackground}, cfg.RenderOptions())
	assert.Equal(t, StoreRedis, cfg.Store.Kind)
	assert.Equal(t, "test:", cfg.Store.Prefix)
	assert.Equal(t, Default().Store.Dir, cfg.Store.Dir, "unset keys keep their default")
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "ipcli.json", `{"width": 4, "store": {"kind": "memory"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Width)
	assert.Equal(t, StoreMemory, cfg.Store.Kind)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit missing file is an error")

	_, err = Load(writeFile(t, "bad.yaml", "width: [1"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "typo.yaml", "widht: 3"))
	assert.ErrorContains(t, err, "widht")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	cfg.Store.Kind = "s3"
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
	assert.ErrorContains(t, err, "s3")

	cfg = Default()
	cfg.Store.Kind = StoreRedis
	assert.ErrorContains(t, cfg.Validate(), "redis_url")
}
