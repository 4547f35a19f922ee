package present

type Rect struct {
	X, Y, W, H int
}

// Layout places N bars left to right across a viewport. Bar heights are
// proportional to value over the viewport height minus Margin, which also
// leaves room for the HUD. Gap units are left empty right of each bar.
type Layout struct {
	Margin int
	Gap    int
}

// BarRect returns the rectangle for a bar with the given value at index i of n.
// Bars that do not fit the viewport come back with a zero width.
func (l Layout) BarRect(i, value, n, viewW, viewH int) Rect {
	if n <= 0 || viewW <= 0 || viewH <= 0 {
		return Rect{}
	}
	slot := viewW / n
	if slot < 1 {
		slot = 1
	}
	x := i * slot
	if x >= viewW {
		return Rect{X: x}
	}

	w := slot - l.Gap
	if w < 1 {
		w = 1
	}

	usable := viewH - l.Margin
	if usable < 1 {
		usable = 1
	}
	h := value * usable / n
	return Rect{X: x, Y: viewH - h, W: w, H: h}
}
