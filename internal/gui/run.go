package gui

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/san-kum/sortvis/internal/present"
	"github.com/san-kum/sortvis/internal/sim"
)

// Run opens a window, drives the controller until the user quits or ctx is
// done, and closes the window on the way out.
func Run(ctx context.Context, c *sim.Controller, opts Options, layout present.Layout, theme present.Theme, logger zerolog.Logger) error {
	w, err := Open(opts)
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Debug().Int("width", opts.Width).Int("height", opts.Height).Str("theme", theme.Name).Msg("window open")

	loop := present.NewLoop(c, w, w, layout, theme.Palette)
	loop.SetLogger(logger)
	return loop.Run(ctx)
}
