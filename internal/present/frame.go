package present

import (
	"fmt"

	"github.com/san-kum/sortvis/internal/sim"
)

const hudSize = 20

// DrawFrame renders the controller's bars, plus a status line when r can
// draw text.
func DrawFrame(r Renderer, c *sim.Controller, l Layout, p Palette) {
	r.Clear(p.Background)

	w, h := r.ViewportSize()
	bs := c.Bars()
	for i, b := range bs {
		rect := l.BarRect(i, b.Value, len(bs), w, h)
		if rect.W == 0 || rect.H == 0 {
			continue
		}
		r.DrawFilledRect(rect.X, rect.Y, rect.W, rect.H, p.For(b.State))
	}

	if td, ok := r.(TextDrawer); ok {
		td.DrawText(StatusLine(c), 10, 10, hudSize, p.Text)
	}

	r.Present()
}

// StatusLine summarises the controller for the HUD.
func StatusLine(c *sim.Controller) string {
	return fmt.Sprintf("%s  %s  delay %dms  n=%d  %s",
		c.Algorithm().Title(), c.Status(), c.Speed(), c.Len(), FormatCounters(c.Stats()))
}

// FormatCounters renders the step count and the array counters. Swaps and
// merge buffer writes are reported separately.
func FormatCounters(s sim.Stats) string {
	return fmt.Sprintf("steps %d  cmp %d  swp %d  wr %d", s.Steps, s.Comparisons, s.Swaps, s.Writes)
}
