package sim_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/sortvis/internal/algo"
	"github.com/san-kum/sortvis/internal/bars"
	"github.com/san-kum/sortvis/internal/sim"
)

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

type recorder struct {
	steps []int
	stats []bars.Counters
}

func (r *recorder) OnStep(step int, s bars.Counters) {
	r.steps = append(r.steps, step)
	r.stats = append(r.stats, s)
}

var _ = Describe("Controller", func() {
	var c *sim.Controller

	BeforeEach(func() {
		var err error
		c, err = sim.New(sim.Config{Bars: 50, Speed: sim.DefaultSpeed, Algorithm: algo.Bubble, Seed: 11})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("starts shuffled and idle", func() {
			Expect(c.Len()).To(Equal(50))
			Expect(c.Values()).To(ConsistOf(identity(50)))
			Expect(c.Values()).NotTo(Equal(identity(50)))
			Expect(c.Running()).To(BeFalse())
			Expect(c.Paused()).To(BeFalse())
			Expect(c.Sorted()).To(BeFalse())
			Expect(c.Status()).To(Equal("idle"))
		})

		It("rejects a non-positive bar count", func() {
			_, err := sim.New(sim.Config{Bars: 0})
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown algorithm", func() {
			_, err := sim.New(sim.Config{Bars: 5, Algorithm: algo.Kind(42)})
			Expect(err).To(HaveOccurred())
		})

		It("clamps the initial speed", func() {
			fast, err := sim.New(sim.Config{Bars: 5, Speed: -3})
			Expect(err).NotTo(HaveOccurred())
			Expect(fast.Speed()).To(Equal(sim.MinSpeed))
		})
	})

	Describe("Step", func() {
		It("does nothing while not running", func() {
			before := c.Bars()
			Expect(c.Step()).To(BeFalse())
			Expect(c.Bars()).To(Equal(before))
			Expect(c.Stats().Steps).To(BeZero())
		})

		It("does nothing while paused", func() {
			c.ToggleRunning()
			c.TogglePaused()
			before := c.Bars()
			Expect(c.Step()).To(BeFalse())
			Expect(c.Bars()).To(Equal(before))
			Expect(c.Status()).To(Equal("paused"))
		})

		It("performs one unit of work per call", func() {
			c.ToggleRunning()
			Expect(c.Step()).To(BeTrue())
			Expect(c.Stats().Steps).To(Equal(1))
			Expect(c.Stats().Comparisons).To(Equal(1))
			Expect(c.Sorted()).To(BeFalse())
		})

		It("marks everything sorted and stops at the end", func() {
			c.ToggleRunning()
			for i := 0; i < sim.StepBudget(50) && !c.Sorted(); i++ {
				c.Step()
			}
			Expect(c.Sorted()).To(BeTrue())
			Expect(c.Running()).To(BeFalse())
			Expect(c.Values()).To(Equal(identity(50)))
			for _, b := range c.Bars() {
				Expect(b.State).To(Equal(bars.Sorted))
			}
		})

		It("is a no-op once sorted", func() {
			c.ToggleRunning()
			for !c.Sorted() {
				c.Step()
			}
			c.ToggleRunning()
			before, stats := c.Bars(), c.Stats()
			Expect(c.Step()).To(BeFalse())
			Expect(c.Bars()).To(Equal(before))
			Expect(c.Stats()).To(Equal(stats))
		})

		It("notifies observers after every step", func() {
			r := &recorder{}
			c.AddObserver(r)
			c.ToggleRunning()
			c.Step()
			c.Step()
			Expect(r.steps).To(Equal([]int{1, 2}))
			Expect(r.stats[0].Comparisons).To(Equal(1))
			Expect(r.stats[1].Comparisons).To(Equal(2))
			Expect(r.stats[1]).To(Equal(c.Stats().Counters))
		})
	})

	Describe("lifecycle", func() {
		It("reset reshuffles a sorted array and clears the flags", func() {
			c.ToggleRunning()
			for !c.Sorted() {
				c.Step()
			}
			c.Reset()
			Expect(c.Sorted()).To(BeFalse())
			Expect(c.Running()).To(BeFalse())
			Expect(c.Values()).To(ConsistOf(identity(50)))
			Expect(c.Values()).NotTo(Equal(identity(50)))
			for _, b := range c.Bars() {
				Expect(b.State).To(Equal(bars.Normal))
			}
			Expect(c.Stats()).To(Equal(sim.Stats{}))
		})

		It("shuffle keeps N and rewinds the algorithm", func() {
			c.ToggleRunning()
			c.TogglePaused()
			c.Shuffle()
			Expect(c.Len()).To(Equal(50))
			Expect(c.Running()).To(BeFalse())
			Expect(c.Paused()).To(BeFalse())
			Expect(c.Values()).To(ConsistOf(identity(50)))
			i, j := c.Stepper().(*algo.BubbleSort).Cursor()
			Expect(i).To(BeZero())
			Expect(j).To(BeZero())
		})

		It("toggling running leaves paused alone", func() {
			c.TogglePaused()
			c.ToggleRunning()
			Expect(c.Paused()).To(BeTrue())
			c.ToggleRunning()
			Expect(c.Paused()).To(BeTrue())
		})

		It("cycles through all five algorithms and back", func() {
			start := c.Algorithm()
			seen := map[algo.Kind]bool{}
			for i := 0; i < 5; i++ {
				c.SelectAlgorithm(sim.Next)
				seen[c.Algorithm()] = true
			}
			Expect(c.Algorithm()).To(Equal(start))
			Expect(seen).To(HaveLen(5))
		})

		It("wraps backwards from the first algorithm", func() {
			c.SelectAlgorithm(sim.Previous)
			Expect(c.Algorithm()).To(Equal(algo.Quick))
			Expect(c.Stepper().Kind()).To(Equal(algo.Quick))
		})

		It("switching algorithms resets the run", func() {
			c.ToggleRunning()
			c.Step()
			c.SelectAlgorithm(sim.Next)
			Expect(c.Running()).To(BeFalse())
			Expect(c.Stats().Steps).To(BeZero())
		})

		It("loads a known permutation", func() {
			Expect(c.Load([]int{1, 2})).To(HaveOccurred())
			small, err := sim.New(sim.Config{Bars: 5, Algorithm: algo.Quick, Seed: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(small.Load([]int{5, 4, 3, 2, 1})).To(Succeed())
			Expect(small.Values()).To(Equal([]int{5, 4, 3, 2, 1}))
		})
	})

	Describe("AdjustSpeed", func() {
		It("never leaves [1, 100]", func() {
			for i := 0; i < 50; i++ {
				c.AdjustSpeed(-sim.SpeedStep)
			}
			Expect(c.Speed()).To(Equal(sim.MinSpeed))
			for i := 0; i < 50; i++ {
				c.AdjustSpeed(sim.SpeedStep)
			}
			Expect(c.Speed()).To(Equal(sim.MaxSpeed))
			c.AdjustSpeed(-1000)
			Expect(c.Speed()).To(Equal(sim.MinSpeed))
		})
	})

	Describe("logging", func() {
		It("reports completion", func() {
			var buf bytes.Buffer
			c.SetLogger(zerolog.New(&buf))
			c.ToggleRunning()
			for !c.Sorted() {
				c.Step()
			}
			Expect(buf.String()).To(ContainSubstring(`"message":"sorted"`))
			Expect(buf.String()).To(ContainSubstring(`"algorithm":"bubble"`))
		})
	})

	DescribeTable("every algorithm sorts the same shuffle",
		func(k algo.Kind) {
			ctrl, err := sim.New(sim.Config{Bars: 64, Algorithm: k, Seed: 99})
			Expect(err).NotTo(HaveOccurred())
			ctrl.ToggleRunning()
			for i := 0; i < sim.StepBudget(64) && !ctrl.Sorted(); i++ {
				ctrl.Step()
			}
			Expect(ctrl.Sorted()).To(BeTrue())
			Expect(ctrl.Values()).To(Equal(identity(64)))
		},
		Entry("bubble", algo.Bubble),
		Entry("selection", algo.Selection),
		Entry("insertion", algo.Insertion),
		Entry("merge", algo.Merge),
		Entry("quick", algo.Quick),
	)
})
