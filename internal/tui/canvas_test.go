package tui

import (
	"strings"
	"testing"

	"github.com/san-kum/sortvis/internal/algo"
	"github.com/san-kum/sortvis/internal/present"
	"github.com/san-kum/sortvis/internal/sim"
)

func TestCanvasDrawClips(t *testing.T) {
	c := NewCanvas(4, 3)
	red := present.RGB(255, 0, 0)
	c.DrawFilledRect(2, 1, 5, 5, red)

	if col, ok := c.At(3, 2); !ok || col != red {
		t.Errorf("expected red at (3,2), got %v %v", col, ok)
	}
	if _, ok := c.At(1, 1); ok {
		t.Error("expected (1,1) to stay empty")
	}
	if _, ok := c.At(4, 0); ok {
		t.Error("out of range cell should report empty")
	}

	c.Clear(present.Color{})
	if _, ok := c.At(3, 2); ok {
		t.Error("clear should empty the canvas")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawFilledRect(0, 1, 2, 1, present.RGB(1, 2, 3))
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if lines[0] != "   " {
		t.Errorf("expected blank first row, got %q", lines[0])
	}
	if strings.Count(lines[1], block) != 2 {
		t.Errorf("expected two blocks on the second row, got %q", lines[1])
	}
}

func TestCanvasAsRenderer(t *testing.T) {
	ctrl, err := sim.New(sim.Config{Bars: 10, Algorithm: algo.Bubble, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(20, 11)
	present.DrawFrame(c, ctrl, present.Layout{Margin: 1, Gap: 1}, present.ThemeClassic.Palette)

	if c.Frames() != 1 {
		t.Errorf("expected one presented frame, got %d", c.Frames())
	}
	// the tallest bar fills every row below the margin
	tallest := -1
	for i, b := range ctrl.Bars() {
		if b.Value == 10 {
			tallest = i
		}
	}
	for row := 1; row < 11; row++ {
		if _, ok := c.At(tallest*2, row); !ok {
			t.Errorf("row %d of the tallest bar is empty", row)
		}
	}
	if _, ok := c.At(tallest*2+1, 5); ok {
		t.Error("gap column should stay empty")
	}
}
