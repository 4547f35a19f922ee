package algo

import "github.com/san-kum/sortvis/internal/bars"

// Span is an inclusive index range awaiting partition.
type Span struct {
	Low, High int
}

// QuickSort keeps an explicit LIFO of pending spans. Each step pops one span
// and, when it holds more than one element, runs a full Lomuto partition
// around its last element.
type QuickSort struct {
	stack []Span
	pops  int
}

func NewQuick(n int) *QuickSort {
	q := &QuickSort{stack: make([]Span, 0, 16)}
	if n > 0 {
		q.stack = append(q.stack, Span{0, n - 1})
	}
	return q
}

func (q *QuickSort) Kind() Kind { return Quick }

func (q *QuickSort) Done() bool { return len(q.stack) == 0 }

// Pending returns a copy of the stack, bottom first.
func (q *QuickSort) Pending() []Span {
	out := make([]Span, len(q.stack))
	copy(out, q.stack)
	return out
}

func (q *QuickSort) Pops() int { return q.pops }

func (q *QuickSort) Step(a *bars.Array) bool {
	if q.Done() {
		return true
	}
	a.Paint(bars.Normal)

	top := q.stack[len(q.stack)-1]
	q.stack = q.stack[:len(q.stack)-1]
	q.pops++
	if top.Low >= top.High {
		return q.Done()
	}

	p := q.partition(a, top.Low, top.High)
	q.stack = append(q.stack, Span{top.Low, p - 1}, Span{p + 1, top.High})
	return q.Done()
}

// partition places a[high] at its final position and returns that position.
func (q *QuickSort) partition(a *bars.Array, low, high int) int {
	boundary := low - 1
	for j := low; j < high; j++ {
		a.Mark(j, bars.Comparing)
		if a.Less(j, high) {
			boundary++
			a.Swap(boundary, j)
			a.Mark(boundary, bars.Swapping)
			a.Mark(j, bars.Swapping)
		}
	}
	a.Swap(boundary+1, high)
	a.Mark(boundary+1, bars.Swapping)
	a.Mark(high, bars.Swapping)
	return boundary + 1
}
