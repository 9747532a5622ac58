package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/povdisplay/internal/surface"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth       = 320
	DefaultHeight      = 200
	DefaultSeed        = 1
	DefaultTickMillis  = 16
	DefaultFocal       = 100.0
	DefaultHalfExtent  = 100.0
	DefaultDepth       = 800.0
	DefaultRandomLines = 10
)

// DefaultLines is the ticker's playback order when none is configured.
var DefaultLines = []string{"My", "password", "is", "-redacted-"}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Width           int            `yaml:"width"`
	Height          int            `yaml:"height"`
	Seed            int64          `yaml:"seed"`
	TickMillis      int            `yaml:"tick_ms"`
	Focal           float64        `yaml:"focal"`
	Font            string         `yaml:"font"`
	EraseBackground bool           `yaml:"erase_background"`
	RandomLines     int            `yaml:"random_lines"`
	Elements        ElementsConfig `yaml:"elements"`
	Cube            CubeConfig     `yaml:"cube"`
	Text            TextConfig     `yaml:"text"`
}

type ElementsConfig struct {
	Line bool `yaml:"line"`
	Cube bool `yaml:"cube"`
	Text bool `yaml:"text"`
}

type CubeConfig struct {
	HalfExtent float64 `yaml:"half_extent"`
	Depth      float64 `yaml:"depth"`
}

type TextConfig struct {
	Lines []string `yaml:"lines"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Seed:        DefaultSeed,
		TickMillis:  DefaultTickMillis,
		Focal:       DefaultFocal,
		Font:        surface.DefaultFont,
		RandomLines: DefaultRandomLines,
		Elements:    ElementsConfig{Line: true, Cube: true, Text: true},
		Cube:        CubeConfig{HalfExtent: DefaultHalfExtent, Depth: DefaultDepth},
		Text:        TextConfig{Lines: append([]string(nil), DefaultLines...)},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads a YAML file over base, so keys the file leaves out keep
// base's values. base is modified in place.
func LoadOnto(path string, cfg *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// TickPeriod is the interval between animation frames.
func (c *Config) TickPeriod() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Width > surface.MaxDim:
		return fmt.Errorf("%w: width %d", ErrInvalidConfig, c.Width)
	case c.Height <= 0 || c.Height > surface.MaxDim:
		return fmt.Errorf("%w: height %d", ErrInvalidConfig, c.Height)
	case c.TickMillis <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalidConfig, c.TickMillis)
	case c.Focal <= 0:
		return fmt.Errorf("%w: focal must be positive, got %f", ErrInvalidConfig, c.Focal)
	case c.Cube.HalfExtent <= 0:
		return fmt.Errorf("%w: cube half_extent must be positive, got %f", ErrInvalidConfig, c.Cube.HalfExtent)
	case c.RandomLines < 0:
		return fmt.Errorf("%w: random_lines must not be negative, got %d", ErrInvalidConfig, c.RandomLines)
	}
	if _, ok := surface.Fonts[c.Font]; !ok {
		return fmt.Errorf("%w: unknown font %q (available: %v)", ErrInvalidConfig, c.Font, surface.FontNames())
	}
	return nil
}
