package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortvis/internal/algo"
	"github.com/san-kum/sortvis/internal/apperrors"
	"github.com/san-kum/sortvis/internal/present"
	"github.com/san-kum/sortvis/internal/sim"
)

const (
	DefaultBars      = 100
	DefaultTUIBars   = 48
	DefaultAlgorithm = "bubble"
	DefaultTheme     = "classic"
	DefaultWidth     = 1000
	DefaultHeight    = 600
	DefaultTitle     = "Sorting Visualizer"
	DefaultMargin    = 40
	MinBars          = 2
	MaxBars          = 1000
)

type Config struct {
	Bars      int          `yaml:"bars"`
	Speed     int          `yaml:"speed"`
	Algorithm string       `yaml:"algorithm"`
	Seed      int64        `yaml:"seed"`
	Theme     string       `yaml:"theme"`
	Window    WindowConfig `yaml:"window"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Margin int    `yaml:"margin"`
	// FPS caps the redraw rate; 0 leaves pacing entirely to the speed delay.
	FPS int `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Bars:      DefaultBars,
		Speed:     sim.DefaultSpeed,
		Algorithm: DefaultAlgorithm,
		Theme:     DefaultTheme,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			Margin: DefaultMargin,
		},
	}
}

// Load reads and validates a config file over the defaults.
func Load(path string) (*Config, error) {
	cfg, err := LoadOver(path, DefaultConfig())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOver reads path on top of base, so keys missing from the file keep
// base's values. base is modified and returned unvalidated; callers apply
// their own overrides and then call Validate.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigError("read config %s: %v", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.NewConfigError("invalid config %s: %v", path, err)
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

// Validate rejects values the controller or the front-ends cannot honour.
func (c *Config) Validate() error {
	if c.Bars < MinBars || c.Bars > MaxBars {
		return apperrors.NewConfigError("bars must be in [%d, %d], got %d", MinBars, MaxBars, c.Bars)
	}
	if c.Speed < sim.MinSpeed || c.Speed > sim.MaxSpeed {
		return apperrors.NewConfigError("speed must be in [%d, %d], got %d", sim.MinSpeed, sim.MaxSpeed, c.Speed)
	}
	if _, err := algo.Parse(c.Algorithm); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if _, ok := present.LookupTheme(c.Theme); !ok {
		return apperrors.NewConfigError("unknown theme: %s (available: %v)", c.Theme, present.ThemeNames())
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return apperrors.NewConfigError("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Margin < 0 || c.Window.Margin >= c.Window.Height {
		return apperrors.NewConfigError("margin must be in [0, %d), got %d", c.Window.Height, c.Window.Margin)
	}
	if c.Window.FPS < 0 {
		return apperrors.NewConfigError("fps must not be negative, got %d", c.Window.FPS)
	}
	return nil
}

// SimConfig converts the file-level settings into a controller config.
// Call Validate first; an unparsable algorithm falls back to bubble.
func (c *Config) SimConfig() sim.Config {
	kind, _ := algo.Parse(c.Algorithm)
	return sim.Config{
		Bars:      c.Bars,
		Speed:     c.Speed,
		Algorithm: kind,
		Seed:      c.Seed,
	}
}
