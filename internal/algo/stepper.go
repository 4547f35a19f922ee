package algo

import (
	"fmt"

	"github.com/san-kum/sortvis/internal/bars"
)

// Stepper is a sorting algorithm rewritten as a resumable state machine.
//
// Each call to Step clears every highlight, performs one bounded unit of work
// on the array, advances the machine's own cursors and reports whether the
// terminal state has been reached. Calling Step on a finished machine does no
// work and returns true.
type Stepper interface {
	Kind() Kind
	Step(a *bars.Array) bool
	Done() bool
}

var registry = map[Kind]func(n int) Stepper{
	Bubble:    func(n int) Stepper { return NewBubble(n) },
	Selection: func(n int) Stepper { return NewSelection(n) },
	Insertion: func(n int) Stepper { return NewInsertion(n) },
	Merge:     func(n int) Stepper { return NewMerge(n) },
	Quick:     func(n int) Stepper { return NewQuick(n) },
}

// New returns a freshly initialised machine of kind k for an array of n bars.
func New(k Kind, n int) (Stepper, error) {
	fn, ok := registry[k]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", k)
	}
	if n < 0 {
		return nil, fmt.Errorf("bar count must not be negative, got %d", n)
	}
	return fn(n), nil
}
