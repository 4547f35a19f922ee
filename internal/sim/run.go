package sim

import (
	"context"
	"fmt"
)

// RunToCompletion drives the active algorithm without any pacing until the
// array is sorted. It fails if maxSteps dispatches are not enough.
func (c *Controller) RunToCompletion(ctx context.Context, maxSteps int) (*Result, error) {
	return c.RunWithCallback(ctx, maxSteps, func(int, *Controller) bool { return true })
}

// RunWithCallback is RunToCompletion with a hook after every step; returning
// false from callback stops the run early without error.
func (c *Controller) RunWithCallback(ctx context.Context, maxSteps int, callback func(step int, c *Controller) bool) (*Result, error) {
	if maxSteps <= 0 {
		return nil, fmt.Errorf("max steps must be positive, got %d", maxSteps)
	}

	if c.sorted {
		return c.result(), nil
	}

	c.running = true
	c.paused = false
	for !c.sorted {
		select {
		case <-ctx.Done():
			c.running = false
			return c.result(), ctx.Err()
		default:
		}

		if c.steps >= maxSteps {
			c.running = false
			return c.result(), fmt.Errorf("%s did not finish within %d steps", c.kind, maxSteps)
		}
		c.Step()
		if !callback(c.steps, c) {
			c.running = false
			return c.result(), nil
		}
	}
	return c.result(), nil
}

// StepBudget is a safe upper bound on dispatches for any built-in algorithm
// on n bars; bubble sort's n(n-1)/2 comparisons dominate.
func StepBudget(n int) int {
	return n*(n-1)/2 + 2*n + 1
}

func (c *Controller) result() *Result {
	return &Result{
		Algorithm: c.kind,
		Bars:      c.n,
		Sorted:    c.sorted,
		Stats:     c.Stats(),
	}
}
