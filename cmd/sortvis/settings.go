package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortvis/internal/algo"
	"github.com/san-kum/sortvis/internal/apperrors"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/sim"
)

// settings holds the persistent flag values shared by every command.
type settings struct {
	configFile string
	preset     string
	bars       int
	speed      int
	seed       int64
	algorithm  string
	theme      string
	logLevel   string
}

func (s *settings) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&s.configFile, "config", "", "config file path (yaml)")
	f.StringVar(&s.preset, "preset", "", "start from a named preset")
	f.IntVarP(&s.bars, "bars", "n", config.DefaultBars, "number of bars")
	f.IntVar(&s.speed, "speed", sim.DefaultSpeed, "delay between steps in ms (1-100)")
	f.Int64Var(&s.seed, "seed", 0, "shuffle seed (0 = time based)")
	f.StringVarP(&s.algorithm, "algorithm", "a", config.DefaultAlgorithm, "sorting algorithm")
	f.StringVar(&s.theme, "theme", config.DefaultTheme, "colour theme")
	f.StringVar(&s.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// resolve builds the effective config: preset, then config file, then any
// flag the user set explicitly.
func (s *settings) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.preset != "" {
		cfg = config.GetPreset(s.preset)
		if cfg == nil {
			return nil, apperrors.NewConfigError("unknown preset: %s (available: %v)", s.preset, config.ListPresets())
		}
	}
	if s.configFile != "" {
		loaded, err := config.LoadOver(s.configFile, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if changed(cmd, "bars") {
		cfg.Bars = s.bars
	}
	if changed(cmd, "speed") {
		cfg.Speed = s.speed
	}
	if changed(cmd, "seed") {
		cfg.Seed = s.seed
	}
	if changed(cmd, "algorithm") {
		cfg.Algorithm = s.algorithm
	}
	if changed(cmd, "theme") {
		cfg.Theme = s.theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// explicitBars reports whether the bar count came from the user rather than
// the built-in default.
func (s *settings) explicitBars(cmd *cobra.Command) bool {
	return changed(cmd, "bars") || s.preset != "" || s.configFile != ""
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), apperrors.NewConfigError("invalid log level %q", level)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger(), nil
}

func newController(cfg *config.Config, logger zerolog.Logger) (*sim.Controller, error) {
	c, err := sim.New(cfg.SimConfig())
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}
	c.SetLogger(logger)
	return c, nil
}

func parseAlgorithm(name string) (algo.Kind, error) {
	k, err := algo.Parse(name)
	if err != nil {
		return k, apperrors.NewConfigError("%v", err)
	}
	return k, nil
}
