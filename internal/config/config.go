package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 240
	DefaultHeight    = 120
	DefaultRes       = 3
	DefaultLimit     = 10
	DefaultSpeed     = 5
	DefaultFPS       = 60
	DefaultMaxFrames = 6000
	DefaultTheme     = "retro"
)

// ErrInvalidConfig indicates a configuration that would produce a
// malformed grid.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Width     int    `yaml:"width" json:"width"`
	Height    int    `yaml:"height" json:"height"`
	Res       int    `yaml:"res" json:"res"`
	Limit     int    `yaml:"limit" json:"limit"`
	Speed     int    `yaml:"speed" json:"speed"`
	Seed      int64  `yaml:"seed" json:"seed"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	MaxFrames int    `yaml:"max_frames" json:"max_frames"`
	FPS       int    `yaml:"fps" json:"fps"`
	Theme     string `yaml:"theme,omitempty" json:"theme,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Res:       DefaultRes,
		Limit:     DefaultLimit,
		Speed:     DefaultSpeed,
		MaxFrames: DefaultMaxFrames,
		FPS:       DefaultFPS,
		Theme:     DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to read file: %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "[Save] failed to marshal config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "[Save] failed to write file: %s", path)
}

// Validate rejects settings that cannot produce a well-formed grid. The
// cell size must divide both surface dimensions.
func (c *Config) Validate() error {
	switch {
	case c.Res <= 0:
		return errors.Wrapf(ErrInvalidConfig, "res must be positive, got %d", c.Res)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "surface must be positive, got %dx%d", c.Width, c.Height)
	case c.Width%c.Res != 0 || c.Height%c.Res != 0:
		return errors.Wrapf(ErrInvalidConfig, "res %d does not divide surface %dx%d", c.Res, c.Width, c.Height)
	case c.Limit < 0 || c.Limit > 100:
		return errors.Wrapf(ErrInvalidConfig, "limit must be within 0..100, got %d", c.Limit)
	case c.Speed < 1:
		return errors.Wrapf(ErrInvalidConfig, "speed must be at least 1, got %d", c.Speed)
	case c.FPS < 0:
		return errors.Wrapf(ErrInvalidConfig, "fps must not be negative, got %d", c.FPS)
	case c.MaxFrames < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_frames must not be negative, got %d", c.MaxFrames)
	}
	return nil
}

// GridSize returns the grid dimensions in cells.
func (c *Config) GridSize() (w, h int) {
	return c.Width / c.Res, c.Height / c.Res
}

// FrameInterval converts FPS to a frame period. Zero FPS means unpaced.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}
