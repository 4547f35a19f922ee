package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/sortvis/internal/algo"
	"github.com/san-kum/sortvis/internal/bars"
)

// Controller owns the bar array, the active step machine and the run flags.
// It is not safe for concurrent use; a single presentation loop drives it.
type Controller struct {
	n       int
	bars    *bars.Array
	kind    algo.Kind
	stepper algo.Stepper
	rng     *rand.Rand

	running bool
	paused  bool
	sorted  bool
	speed   int
	steps   int

	observers []Observer
	logger    zerolog.Logger
}

func New(cfg Config) (*Controller, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c := &Controller{
		n:      cfg.Bars,
		bars:   bars.New(cfg.Bars),
		kind:   cfg.Algorithm,
		rng:    rand.New(rand.NewSource(seed)),
		speed:  clampSpeed(cfg.Speed),
		logger: zerolog.Nop(),
	}
	c.Reset()
	return c, nil
}

func validateConfig(cfg Config) error {
	if cfg.Bars <= 0 {
		return fmt.Errorf("bar count must be positive, got %d", cfg.Bars)
	}
	if _, err := algo.New(cfg.Algorithm, cfg.Bars); err != nil {
		return err
	}
	return nil
}

func (c *Controller) SetLogger(l zerolog.Logger) { c.logger = l }
func (c *Controller) AddObserver(o Observer)     { c.observers = append(c.observers, o) }

// Reset restores 1..N, reshuffles, clears the run flags and rewinds the
// active algorithm.
func (c *Controller) Reset() {
	c.bars.Identity(c.n)
	c.Shuffle()
	c.logger.Debug().Str("algorithm", c.kind.String()).Int("bars", c.n).Msg("reset")
}

// Shuffle permutes the current values uniformly without changing N.
func (c *Controller) Shuffle() {
	c.bars.Shuffle(c.rng)
	c.rewind()
	c.logger.Debug().Msg("shuffled")
}

// Load replaces the array contents with a specific permutation of 1..N and
// rewinds the active algorithm. Used to replay a known starting order.
func (c *Controller) Load(values []int) error {
	if len(values) != c.n {
		return fmt.Errorf("expected %d values, got %d", c.n, len(values))
	}
	if err := c.bars.Load(values); err != nil {
		return err
	}
	c.rewind()
	return nil
}

func (c *Controller) rewind() {
	c.bars.Paint(bars.Normal)
	c.running = false
	c.paused = false
	c.sorted = false
	c.steps = 0
	// the kind was validated in New and only ever cycles within the built-in set
	c.stepper, _ = algo.New(c.kind, c.n)
}

// SelectAlgorithm cycles the active algorithm and resets.
func (c *Controller) SelectAlgorithm(d Direction) {
	prev := c.kind
	if d == Previous {
		c.kind = c.kind.Prev()
	} else {
		c.kind = c.kind.Next()
	}
	c.logger.Debug().Str("from", prev.String()).Str("to", c.kind.String()).Msg("algorithm selected")
	c.Reset()
}

func (c *Controller) ToggleRunning() { c.running = !c.running }
func (c *Controller) TogglePaused()  { c.paused = !c.paused }

// AdjustSpeed moves the per-step delay by delta, clamped to [MinSpeed, MaxSpeed].
func (c *Controller) AdjustSpeed(delta int) { c.speed = clampSpeed(c.speed + delta) }

// CanStep reports whether Step would dispatch to the active algorithm.
func (c *Controller) CanStep() bool { return c.running && !c.paused && !c.sorted }

// Step performs one unit of work on the active algorithm. It reports whether
// anything was dispatched; when the flags forbid stepping it touches nothing.
func (c *Controller) Step() bool {
	if !c.CanStep() {
		return false
	}
	done := c.stepper.Step(c.bars)
	c.steps++
	stats := c.bars.Stats()
	for _, o := range c.observers {
		o.OnStep(c.steps, stats)
	}
	if done {
		c.finish()
	}
	return true
}

func (c *Controller) finish() {
	c.bars.Paint(bars.Sorted)
	c.running = false
	c.sorted = true
	stats := c.bars.Stats()
	c.logger.Info().
		Str("algorithm", c.kind.String()).
		Int("bars", c.n).
		Int("steps", c.steps).
		Int("comparisons", stats.Comparisons).
		Int("swaps", stats.Swaps).
		Int("writes", stats.Writes).
		Msg("sorted")
}

func (c *Controller) Algorithm() algo.Kind { return c.kind }
func (c *Controller) Running() bool        { return c.running }
func (c *Controller) Paused() bool         { return c.paused }
func (c *Controller) Sorted() bool         { return c.sorted }
func (c *Controller) Speed() int           { return c.speed }
func (c *Controller) Len() int             { return c.n }

// Bars returns a copy of the current bars for drawing.
func (c *Controller) Bars() []bars.Bar { return c.bars.Bars() }

func (c *Controller) Values() []int { return c.bars.Values() }

// Stepper exposes the active machine so callers can inspect its cursors.
func (c *Controller) Stepper() algo.Stepper { return c.stepper }

func (c *Controller) Stats() Stats {
	return Stats{Steps: c.steps, Counters: c.bars.Stats()}
}

// Status is a one-word summary of the run flags.
func (c *Controller) Status() string {
	switch {
	case c.sorted:
		return "sorted"
	case c.running && c.paused:
		return "paused"
	case c.running:
		return "running"
	case c.paused:
		return "paused"
	}
	return "idle"
}

func clampSpeed(s int) int {
	if s < MinSpeed {
		return MinSpeed
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}
