package bars

import (
	"fmt"
	"math/rand"
)

type Highlight int

const (
	Normal Highlight = iota
	Comparing
	Swapping
	Sorted
)

func (h Highlight) String() string {
	switch h {
	case Normal:
		return "normal"
	case Comparing:
		return "comparing"
	case Swapping:
		return "swapping"
	case Sorted:
		return "sorted"
	}
	return fmt.Sprintf("highlight(%d)", int(h))
}

type Bar struct {
	Value int
	State Highlight
}

// Counters accumulate the work done on an Array since the last Reset.
type Counters struct {
	Comparisons int
	Swaps       int
	Writes      int
}

func (c *Counters) Reset() { *c = Counters{} }

// Array is the mutable bar sequence the step machines operate on. Values are
// only ever relocated, never created or dropped, except through Identity.
type Array struct {
	bars  []Bar
	stats Counters
}

func New(n int) *Array {
	a := &Array{}
	a.Identity(n)
	return a
}

// Identity restores 1..n in order with every bar Normal.
func (a *Array) Identity(n int) {
	if n < 0 {
		panic(fmt.Sprintf("bars: negative length %d", n))
	}
	if cap(a.bars) >= n {
		a.bars = a.bars[:n]
	} else {
		a.bars = make([]Bar, n)
	}
	for i := range a.bars {
		a.bars[i] = Bar{Value: i + 1}
	}
	a.stats.Reset()
}

// Shuffle applies a uniform Fisher-Yates permutation and clears highlights.
func (a *Array) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(a.bars), func(i, j int) {
		a.bars[i], a.bars[j] = a.bars[j], a.bars[i]
	})
	a.Paint(Normal)
	a.stats.Reset()
}

// Load replaces the contents with values, which must be a permutation of 1..len(values).
func (a *Array) Load(values []int) error {
	seen := make([]bool, len(values)+1)
	for _, v := range values {
		if v < 1 || v > len(values) || seen[v] {
			return fmt.Errorf("bars: %v is not a permutation of 1..%d", values, len(values))
		}
		seen[v] = true
	}
	a.bars = make([]Bar, len(values))
	for i, v := range values {
		a.bars[i] = Bar{Value: v}
	}
	a.stats.Reset()
	return nil
}

func (a *Array) Len() int { return len(a.bars) }

func (a *Array) At(i int) Bar {
	a.check(i)
	return a.bars[i]
}

func (a *Array) Value(i int) int {
	a.check(i)
	return a.bars[i].Value
}

func (a *Array) Mark(i int, h Highlight) {
	a.check(i)
	a.bars[i].State = h
}

// Paint sets every bar to h.
func (a *Array) Paint(h Highlight) {
	for i := range a.bars {
		a.bars[i].State = h
	}
}

// Less compares the values at i and j and counts the comparison.
func (a *Array) Less(i, j int) bool {
	a.check(i)
	a.check(j)
	a.stats.Comparisons++
	return a.bars[i].Value < a.bars[j].Value
}

// Swap exchanges the bars at i and j, highlight included.
func (a *Array) Swap(i, j int) {
	a.check(i)
	a.check(j)
	a.stats.Swaps++
	a.bars[i], a.bars[j] = a.bars[j], a.bars[i]
}

// Set writes value v at i. Callers are responsible for keeping the array a
// permutation; the merge pass uses it to drain its auxiliary buffer.
func (a *Array) Set(i, v int) {
	a.check(i)
	a.stats.Writes++
	a.bars[i].Value = v
}

// CountComparison records a comparison made outside Less, e.g. against a
// buffered value.
func (a *Array) CountComparison() { a.stats.Comparisons++ }

func (a *Array) Stats() Counters { return a.stats }

func (a *Array) Values() []int {
	out := make([]int, len(a.bars))
	for i, b := range a.bars {
		out[i] = b.Value
	}
	return out
}

func (a *Array) Bars() []Bar {
	out := make([]Bar, len(a.bars))
	copy(out, a.bars)
	return out
}

func (a *Array) IsSorted() bool {
	for i := 1; i < len(a.bars); i++ {
		if a.bars[i-1].Value > a.bars[i].Value {
			return false
		}
	}
	return true
}

// IsPermutation reports whether the values are exactly 1..Len in some order.
func (a *Array) IsPermutation() bool {
	seen := make([]bool, len(a.bars)+1)
	for _, b := range a.bars {
		if b.Value < 1 || b.Value > len(a.bars) || seen[b.Value] {
			return false
		}
		seen[b.Value] = true
	}
	return true
}

func (a *Array) check(i int) {
	if i < 0 || i >= len(a.bars) {
		panic(fmt.Sprintf("bars: index %d out of range [0,%d)", i, len(a.bars)))
	}
}
