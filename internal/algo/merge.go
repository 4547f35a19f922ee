package algo

import "github.com/san-kum/sortvis/internal/bars"

// MergeSort is the bottom-up variant: one step is one full pass that merges
// every adjacent pair of runs of the current width, then doubles the width.
type MergeSort struct {
	n     int
	width int
	buf   []int
}

func NewMerge(n int) *MergeSort {
	return &MergeSort{n: n, width: 1, buf: make([]int, n)}
}

func (m *MergeSort) Kind() Kind { return Merge }

func (m *MergeSort) Done() bool { return m.width >= m.n }

func (m *MergeSort) Width() int { return m.width }

func (m *MergeSort) Step(a *bars.Array) bool {
	if m.Done() {
		return true
	}
	a.Paint(bars.Normal)

	for left := 0; left < m.n; left += 2 * m.width {
		mid := min(left+m.width-1, m.n-1)
		right := min(left+2*m.width-1, m.n-1)
		m.mergeRuns(a, left, mid, right)
	}

	m.width *= 2
	return m.Done()
}

// mergeRuns merges [left, mid] and [mid+1, right], both already sorted.
func (m *MergeSort) mergeRuns(a *bars.Array, left, mid, right int) {
	if mid >= right {
		return
	}
	size := right - left + 1
	buf := m.buf[:size]
	for k := range buf {
		buf[k] = a.Value(left + k)
	}

	i, iEnd := 0, mid-left+1
	j, jEnd := iEnd, size
	k := left
	for i < iEnd && j < jEnd {
		a.CountComparison()
		if buf[i] <= buf[j] {
			a.Set(k, buf[i])
			i++
		} else {
			a.Set(k, buf[j])
			j++
		}
		a.Mark(k, bars.Comparing)
		k++
	}
	for ; i < iEnd; i++ {
		a.Set(k, buf[i])
		a.Mark(k, bars.Comparing)
		k++
	}
	for ; j < jEnd; j++ {
		a.Set(k, buf[j])
		a.Mark(k, bars.Comparing)
		k++
	}
}
