package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortvis/internal/present"
	"github.com/san-kum/sortvis/internal/sim"
)

type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	key    lipgloss.Style
	status map[string]lipgloss.Style
}

func fg(c present.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

func newStyles(p present.Palette) styles {
	return styles{
		title: fg(p.Normal).Bold(true),
		muted: fg(p.Muted),
		key:   fg(p.Text),
		status: map[string]lipgloss.Style{
			"idle":    fg(p.Muted),
			"running": fg(p.Comparing),
			"paused":  fg(p.Swapping),
			"sorted":  fg(p.Sorted),
		},
	}
}

func formatStats(speed, n int, s sim.Stats) string {
	return fmt.Sprintf("delay %dms  n=%d  %s", speed, n, present.FormatCounters(s))
}
