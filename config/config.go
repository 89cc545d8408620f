// Package config loads the demo's optional TOML settings file.
//
// A missing file is not an error: every field has a default, and the file
// only needs the keys it changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is read when LEARNGL_CONFIG is unset.
const DefaultPath = "learngl.toml"

// EnvPath names the environment variable that overrides DefaultPath.
const EnvPath = "LEARNGL_CONFIG"

type Config struct {
	LogLevel       string `toml:"log_level"`
	StrictUniforms bool   `toml:"strict_uniforms"`
	// Scene is the name of the scene shown first.
	Scene string `toml:"scene"`

	Window   Window   `toml:"window"`
	Shaders  Shaders  `toml:"shaders"`
	Textures Textures `toml:"textures"`
	Model    Model    `toml:"model"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Shaders struct {
	// Dir holds .vert/.frag overrides on disk; empty uses the embedded sources.
	Dir string `toml:"dir"`
}

type Textures struct {
	// Container and Face are image paths on disk; empty uses the embedded images.
	Container string `toml:"container"`
	Face      string `toml:"face"`
	// MaxSize caps the longer image side; 0 disables downscaling.
	MaxSize int `toml:"max_size"`
	// Fallback substitutes a checkerboard for images that fail to load
	// instead of failing the scene.
	Fallback bool `toml:"fallback"`
}

type Model struct {
	// Cube is an optional .gltf/.glb whose first mesh replaces the built-in cube.
	Cube string `toml:"cube"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Scene:    "two-triangles",
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "LearnOpenGL",
			VSync:  true,
		},
		Textures: Textures{
			MaxSize:  1024,
			Fallback: true,
		},
	}
}

// Load reads the file named by $LEARNGL_CONFIG, or DefaultPath. It returns
// the defaults when the file does not exist.
func Load() (*Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		path = DefaultPath
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) && os.Getenv(EnvPath) == "" {
		return Default(), nil
	}
	return cfg, err
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode applies the TOML in r on top of Default and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Textures.MaxSize < 0 {
		return fmt.Errorf("textures.max_size %d must not be negative", c.Textures.MaxSize)
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}
