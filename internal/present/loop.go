package present

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/sortvis/internal/sim"
)

const (
	DefaultUnit      = time.Millisecond
	DefaultIdleDelay = 10 * DefaultUnit
)

// Loop is the single-threaded driver: poll input, maybe step once, draw,
// then sleep for the controller's speed (or the idle delay).
type Loop struct {
	Controller *sim.Controller
	Renderer   Renderer
	Input      InputSource
	Layout     Layout
	Palette    Palette

	// Unit scales Speed into a delay. IdleDelay is used when not stepping.
	Unit      time.Duration
	IdleDelay time.Duration
	// Sleep defaults to time.Sleep; tests replace it.
	Sleep func(time.Duration)

	logger zerolog.Logger
}

func NewLoop(c *sim.Controller, r Renderer, in InputSource, l Layout, p Palette) *Loop {
	return &Loop{
		Controller: c,
		Renderer:   r,
		Input:      in,
		Layout:     l,
		Palette:    p,
		Unit:       DefaultUnit,
		IdleDelay:  DefaultIdleDelay,
		Sleep:      time.Sleep,
		logger:     zerolog.Nop(),
	}
}

func (l *Loop) SetLogger(logger zerolog.Logger) { l.logger = logger }

// Run blocks until a quit event arrives or ctx is done. Both are a normal
// shutdown; the caller releases the renderer afterwards.
func (l *Loop) Run(ctx context.Context) error {
	frames := 0
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug().Int("frames", frames).Msg("loop canceled")
			return nil
		default:
		}

		for _, ev := range l.Input.Poll() {
			if ev.Type == EventQuit {
				l.logger.Debug().Int("frames", frames).Msg("quit requested")
				return nil
			}
			if Dispatch(l.Controller, ev.Key) {
				l.logger.Debug().Int("frames", frames).Str("key", ev.Key.String()).Msg("quit requested")
				return nil
			}
		}

		delay := l.IdleDelay
		if l.Controller.Step() {
			delay = time.Duration(l.Controller.Speed()) * l.Unit
		}
		DrawFrame(l.Renderer, l.Controller, l.Layout, l.Palette)
		frames++
		l.Sleep(delay)
	}
}
