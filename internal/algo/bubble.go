package algo

import "github.com/san-kum/sortvis/internal/bars"

// BubbleSort compares one adjacent pair per step.
type BubbleSort struct {
	n int
	i int // completed passes
	j int // left index of the pair under comparison
}

func NewBubble(n int) *BubbleSort { return &BubbleSort{n: n} }

func (b *BubbleSort) Kind() Kind { return Bubble }

func (b *BubbleSort) Done() bool { return b.i >= b.n-1 }

func (b *BubbleSort) Cursor() (i, j int) { return b.i, b.j }

func (b *BubbleSort) Step(a *bars.Array) bool {
	if b.Done() {
		return true
	}
	a.Paint(bars.Normal)

	a.Mark(b.j, bars.Comparing)
	a.Mark(b.j+1, bars.Comparing)
	if a.Less(b.j+1, b.j) {
		a.Swap(b.j, b.j+1)
		a.Mark(b.j, bars.Swapping)
		a.Mark(b.j+1, bars.Swapping)
	}

	b.j++
	if b.j >= b.n-1-b.i {
		b.i++
		b.j = 0
	}
	return b.Done()
}
