package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/ipcli/pkg/raster"
	"github.com/aretw0/ipcli/pkg/render"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing default file is not an error.
const DefaultPath = "ipcli.yaml"

// Store kinds.
const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the user configuration of an ipcli session.
type Config struct {
	Prompt string `mapstructure:"prompt"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Color  bool   `mapstructure:"color"`
	Frame  bool   `mapstructure:"frame"`
	Glyphs Glyphs `mapstructure:"glyphs"`
	Store  Store  `mapstructure:"store"`
	Listen string `mapstructure:"listen"`
}

// Glyphs are the strings drawn for each pixel state.
type Glyphs struct {
	Fill       string `mapstructure:"fill"`
	Background string `mapstructure:"background"`
}

// Store selects the ScriptStore backend.
type Store struct {
	Kind     string `mapstructure:"kind"`
	Dir      string `mapstructure:"dir"`
	RedisURL string `mapstructure:"redis_url"`
	Prefix   string `mapstructure:"prefix"`

	// EncryptionKey is a base64 AES-256 key. When set, scripts are encrypted at rest.
	EncryptionKey string `mapstructure:"encryption_key"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Prompt: "ipcli> ",
		Width:  10,
		Height: 10,
		Frame:  true,
		Glyphs: Glyphs{
			Fill:       render.DefaultFill,
			Background: render.DefaultBackground,
		},
		Store: Store{
			Kind: StoreFile,
			Dir:  filepath.Join(".ipcli", "scripts"),
		},
	}
}

// RenderOptions converts the glyph and frame settings.
func (c Config) RenderOptions() render.Options {
	return render.Options{
		Fill:       c.Glyphs.Fill,
		Background: c.Glyphs.Background,
		Framed:     c.Frame,
	}
}

// Validate reports settings that cannot start a session.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 1 || c.Height < 1 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", raster.ErrInvalidDimensions, c.Width, c.Height))
	}
	if c.Glyphs.Fill == "" || c.Glyphs.Background == "" {
		errs = append(errs, errors.New("glyphs must not be empty"))
	}
	switch c.Store.Kind {
	case StoreFile, StoreMemory:
	case StoreRedis:
		if c.Store.RedisURL == "" {
			errs = append(errs, errors.New("store.redis_url is required for the redis store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store kind %q", c.Store.Kind))
	}
	return errors.Join(errs...)
}

// Load reads path (YAML, or JSON by extension) over the defaults.
// If path is DefaultPath and the file does not exist, the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode applies raw settings onto cfg. Unknown keys are an error.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
