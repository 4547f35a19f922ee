package sim

import (
	"github.com/san-kum/sortvis/internal/algo"
	"github.com/san-kum/sortvis/internal/bars"
)

const (
	MinSpeed     = 1
	MaxSpeed     = 100
	DefaultSpeed = 15
	SpeedStep    = 5
)

type Direction int

const (
	Next Direction = iota
	Previous
)

// Config fixes the bar count for the lifetime of a Controller.
type Config struct {
	Bars      int
	Speed     int
	Algorithm algo.Kind
	Seed      int64
}

// Observer is notified after every dispatched step with the counters so far.
type Observer interface {
	OnStep(step int, stats bars.Counters)
}

type Stats struct {
	Steps int
	bars.Counters
}

type Result struct {
	Algorithm algo.Kind
	Bars      int
	Sorted    bool
	Stats
}
