package algo

import "github.com/san-kum/sortvis/internal/bars"

// InsertionSort settles the element at i into the sorted prefix each step.
type InsertionSort struct {
	n int
	i int
	j int // where the last element came to rest
}

func NewInsertion(n int) *InsertionSort { return &InsertionSort{n: n, i: 1} }

func (s *InsertionSort) Kind() Kind { return Insertion }

func (s *InsertionSort) Done() bool { return s.i >= s.n }

func (s *InsertionSort) Cursor() (i, j int) { return s.i, s.j }

func (s *InsertionSort) Step(a *bars.Array) bool {
	if s.Done() {
		return true
	}
	a.Paint(bars.Normal)

	j := s.i
	for j > 0 && a.Less(j, j-1) {
		a.Swap(j, j-1)
		a.Mark(j, bars.Swapping)
		a.Mark(j-1, bars.Swapping)
		j--
	}
	a.Mark(j, bars.Comparing)

	s.j = j
	s.i++
	return s.Done()
}
