package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortvis/internal/present"
)

const block = "█"

// Canvas is a grid of terminal cells that implements present.Renderer, so
// the terminal shares the bar layout with the window front-end. One unit is
// one cell.
type Canvas struct {
	w, h   int
	cells  []present.Color
	filled []bool
	frames int
	styles map[present.Color]lipgloss.Style
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{styles: make(map[present.Color]lipgloss.Style)}
	c.Resize(w, h)
	return c
}

func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.w, c.h = w, h
	c.cells = make([]present.Color, w*h)
	c.filled = make([]bool, w*h)
}

// Clear empties every cell. The terminal's own background shows through, so
// the colour is ignored.
func (c *Canvas) Clear(present.Color) {
	for i := range c.filled {
		c.filled[i] = false
	}
}

func (c *Canvas) DrawFilledRect(x, y, width, height int, col present.Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, c.w), min(y+height, c.h)
	for row := y0; row < y1; row++ {
		for col0 := x0; col0 < x1; col0++ {
			i := row*c.w + col0
			c.cells[i] = col
			c.filled[i] = true
		}
	}
}

func (c *Canvas) Present() { c.frames++ }

func (c *Canvas) ViewportSize() (int, int) { return c.w, c.h }

func (c *Canvas) Frames() int { return c.frames }

// At reports the colour of a cell and whether anything was drawn there.
func (c *Canvas) At(x, y int) (present.Color, bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return present.Color{}, false
	}
	i := y*c.w + x
	return c.cells[i], c.filled[i]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.h; row++ {
		col := 0
		for col < c.w {
			i := row*c.w + col
			run := 1
			for col+run < c.w {
				j := i + run
				if c.filled[j] != c.filled[i] || (c.filled[i] && c.cells[j] != c.cells[i]) {
					break
				}
				run++
			}
			if c.filled[i] {
				b.WriteString(c.style(c.cells[i]).Render(strings.Repeat(block, run)))
			} else {
				b.WriteString(strings.Repeat(" ", run))
			}
			col += run
		}
		if row < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Canvas) style(col present.Color) lipgloss.Style {
	s, ok := c.styles[col]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
		c.styles[col] = s
	}
	return s
}
