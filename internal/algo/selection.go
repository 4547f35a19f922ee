package algo

import "github.com/san-kum/sortvis/internal/bars"

// SelectionSort scans the whole unsorted suffix in a single step, so one step
// places one element. This is coarser than the other machines.
type SelectionSort struct {
	n   int
	i   int
	j   int
	min int
}

func NewSelection(n int) *SelectionSort { return &SelectionSort{n: n} }

func (s *SelectionSort) Kind() Kind { return Selection }

func (s *SelectionSort) Done() bool { return s.i >= s.n-1 }

func (s *SelectionSort) Cursor() (i, j, minIndex int) { return s.i, s.j, s.min }

func (s *SelectionSort) Step(a *bars.Array) bool {
	if s.Done() {
		return true
	}
	a.Paint(bars.Normal)

	s.min = s.i
	for s.j = s.i + 1; s.j < s.n; s.j++ {
		a.Mark(s.j, bars.Comparing)
		if a.Less(s.j, s.min) {
			s.min = s.j
		}
	}

	if s.min != s.i {
		a.Swap(s.i, s.min)
		a.Mark(s.min, bars.Swapping)
	}
	a.Mark(s.i, bars.Swapping)

	s.i++
	return s.Done()
}
