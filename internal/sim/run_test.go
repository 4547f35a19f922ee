package sim

import (
	"context"
	"testing"

	"github.com/san-kum/sortvis/internal/algo"
)

func TestRunToCompletion(t *testing.T) {
	for _, k := range algo.Kinds() {
		c, err := New(Config{Bars: 40, Algorithm: k, Seed: 5})
		if err != nil {
			t.Fatal(err)
		}
		res, err := c.RunToCompletion(context.Background(), StepBudget(40))
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if !res.Sorted || res.Algorithm != k || res.Bars != 40 {
			t.Errorf("%s: unexpected result %+v", k, res)
		}
		if res.Steps == 0 {
			t.Errorf("%s: expected steps to be counted", k)
		}
	}
}

func TestRunToCompletionBudget(t *testing.T) {
	c, err := New(Config{Bars: 30, Algorithm: algo.Bubble, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.RunToCompletion(context.Background(), 3); err == nil {
		t.Error("expected budget error")
	}
	if c.Running() {
		t.Error("run flag should be cleared after a failed run")
	}
	if _, err := c.RunToCompletion(context.Background(), 0); err == nil {
		t.Error("expected error for zero budget")
	}
}

func TestRunToCompletionCanceled(t *testing.T) {
	c, err := New(Config{Bars: 30, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := c.RunToCompletion(ctx, StepBudget(30))
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if res.Sorted {
		t.Error("canceled run should not be sorted")
	}
}

func TestRunWithCallbackStopsEarly(t *testing.T) {
	c, err := New(Config{Bars: 30, Algorithm: algo.Insertion, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	res, err := c.RunWithCallback(context.Background(), StepBudget(30), func(step int, _ *Controller) bool {
		return step < 4
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Steps != 4 || res.Sorted {
		t.Errorf("expected to stop after 4 steps, got %+v", res)
	}
}

func TestStatus(t *testing.T) {
	c, err := New(Config{Bars: 3, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		running, paused, sorted bool
		want                    string
	}{
		{false, false, false, "idle"},
		{true, false, false, "running"},
		{true, true, false, "paused"},
		{false, false, true, "sorted"},
	}
	for _, tt := range tests {
		c.running, c.paused, c.sorted = tt.running, tt.paused, tt.sorted
		if got := c.Status(); got != tt.want {
			t.Errorf("Status() = %q, want %q", got, tt.want)
		}
	}
}

func TestRunToCompletionWhenAlreadySorted(t *testing.T) {
	c, err := New(Config{Bars: 12, Algorithm: algo.Merge, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	first, err := c.RunToCompletion(context.Background(), StepBudget(12))
	if err != nil {
		t.Fatal(err)
	}

	again, err := c.RunToCompletion(context.Background(), StepBudget(12))
	if err != nil {
		t.Fatal(err)
	}
	if c.Running() || !c.Sorted() || c.Status() != "sorted" {
		t.Errorf("expected idle sorted controller, got running=%v sorted=%v", c.Running(), c.Sorted())
	}
	if again.Stats != first.Stats {
		t.Errorf("second run should do no work: %+v vs %+v", again.Stats, first.Stats)
	}
}
