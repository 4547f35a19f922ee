package algo

import (
	"fmt"
	"strings"
)

// Kind identifies one of the built-in algorithms. The zero value is Bubble.
type Kind int

const (
	Bubble Kind = iota
	Selection
	Insertion
	Merge
	Quick
	numKinds
)

var kindNames = [numKinds]string{"bubble", "selection", "insertion", "merge", "quick"}

var kindTitles = [numKinds]string{"Bubble Sort", "Selection Sort", "Insertion Sort", "Merge Sort", "Quick Sort"}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Title is the display name used by the front-ends.
func (k Kind) Title() string {
	if k < 0 || k >= numKinds {
		return k.String()
	}
	return kindTitles[k]
}

// Next cycles forward through the built-in set, wrapping after Quick.
func (k Kind) Next() Kind { return (k + 1) % numKinds }

// Prev cycles backward, wrapping before Bubble.
func (k Kind) Prev() Kind { return (k - 1 + numKinds) % numKinds }

func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func Names() []string {
	out := make([]string, numKinds)
	copy(out, kindNames[:])
	return out
}

// Parse accepts the short name ("quick") or the title ("Quick Sort"), case-insensitively.
func Parse(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := range kindNames {
		if n == kindNames[i] || n == strings.ToLower(kindTitles[i]) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm: %s (available: %s)", name, strings.Join(kindNames[:], ", "))
}
