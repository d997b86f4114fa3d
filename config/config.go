package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override file settings
const (
	EnvCellSize      = "MAZE_CELL_SIZE"
	EnvWallThickness = "MAZE_WALL_THICKNESS"
	EnvOutput        = "MAZE_OUTPUT"
	EnvWindowTitle   = "MAZE_WINDOW_TITLE"
)

// ErrInvalidArgument is matched by every *ArgumentError
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a drawing parameter that is not a positive integer
type ArgumentError struct {
	Name  string
	Value string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s must be a positive integer, got %q", ErrInvalidArgument, e.Name, e.Value)
}

// Is lets errors.Is(err, ErrInvalidArgument) match any ArgumentError
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Config holds the drawing settings
type Config struct {
	Render RenderConfig `toml:"render"`
	Window WindowConfig `toml:"window"`
}

// RenderConfig holds static image settings
type RenderConfig struct {
	CellSize      int    `toml:"cell_size"`
	WallThickness int    `toml:"wall_thickness"`
	Output        string `toml:"output"`
	Labels        bool   `toml:"labels"`
}

// WindowConfig holds live window settings
type WindowConfig struct {
	Title     string `toml:"title"`
	CellSize  int    `toml:"cell_size"`
	Stroke    int    `toml:"stroke"`
	FixedSize int    `toml:"fixed_size"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			CellSize:      CellSize,
			WallThickness: WallThickness,
			Output:        OutputFile,
		},
		Window: WindowConfig{
			Title:    WindowTitle,
			CellSize: CellSize,
			Stroke:   WindowStroke,
		},
	}
}

// Load builds the configuration from defaults, an optional TOML file and the
// environment. An empty path skips the file. A .env file in the working
// directory is loaded first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[CONFIG] [WARN] .env file could not be loaded: %v", err)
	}

	cfg := Default()

	if path != "" {
		path = os.ExpandEnv(path)
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// applyEnv overrides settings from MAZE_* environment variables
func (c *Config) applyEnv() error {
	if value, ok := os.LookupEnv(EnvCellSize); ok {
		size, err := ParseIntArgument(EnvCellSize, value)
		if err != nil {
			return err
		}
		c.Render.CellSize = size
		c.Window.CellSize = size
	}
	if value, ok := os.LookupEnv(EnvWallThickness); ok {
		thickness, err := ParseIntArgument(EnvWallThickness, value)
		if err != nil {
			return err
		}
		c.Render.WallThickness = thickness
	}
	if value, ok := os.LookupEnv(EnvOutput); ok && value != "" {
		c.Render.Output = value
	}
	if value, ok := os.LookupEnv(EnvWindowTitle); ok && value != "" {
		c.Window.Title = value
	}
	return nil
}

// Validate checks that every size is positive
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"render.cell_size", c.Render.CellSize},
		{"render.wall_thickness", c.Render.WallThickness},
		{"window.cell_size", c.Window.CellSize},
		{"window.stroke", c.Window.Stroke},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return &ArgumentError{Name: check.name, Value: strconv.Itoa(check.value)}
		}
	}
	if c.Window.FixedSize < 0 {
		return &ArgumentError{Name: "window.fixed_size", Value: strconv.Itoa(c.Window.FixedSize)}
	}
	if c.Render.Output == "" {
		c.Render.Output = OutputFile
	}
	return nil
}

// ParseIntArgument converts a user-supplied drawing parameter
func ParseIntArgument(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, &ArgumentError{Name: name, Value: raw}
	}
	return value, nil
}
