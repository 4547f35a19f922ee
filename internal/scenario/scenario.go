package scenario

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortvis/internal/algo"
	"github.com/san-kum/sortvis/internal/apperrors"
	"github.com/san-kum/sortvis/internal/bars"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/sim"
)

// Scenario is a scripted list of headless runs.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Runs        []Run  `yaml:"runs"`
}

// Run sorts one array. Values, when set, replaces the shuffle and fixes the
// bar count.
type Run struct {
	Algorithm string `yaml:"algorithm"`
	Bars      int    `yaml:"bars"`
	Seed      int64  `yaml:"seed"`
	Values    []int  `yaml:"values,omitempty"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigError("read scenario %s: %v", path, err)
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, apperrors.NewConfigError("parse scenario: %v", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *Scenario) Validate() error {
	if len(s.Runs) == 0 {
		return apperrors.NewConfigError("scenario has no runs")
	}
	for i, r := range s.Runs {
		if _, err := algo.Parse(r.Algorithm); err != nil {
			return apperrors.NewConfigError("run %d: %v", i+1, err)
		}
		n := r.Bars
		if len(r.Values) > 0 {
			if r.Bars != 0 && r.Bars != len(r.Values) {
				return apperrors.NewConfigError("run %d: bars %d does not match %d values", i+1, r.Bars, len(r.Values))
			}
			n = len(r.Values)
		}
		if n < config.MinBars || n > config.MaxBars {
			return apperrors.NewConfigError("run %d: bars must be in [%d, %d], got %d",
				i+1, config.MinBars, config.MaxBars, n)
		}
		if len(r.Values) > 0 {
			if err := bars.New(0).Load(r.Values); err != nil {
				return apperrors.NewConfigError("run %d: %v", i+1, err)
			}
		}
	}
	return nil
}

// RunScenario executes every run in order and stops at the first failure,
// returning the results gathered so far.
func RunScenario(ctx context.Context, sc *Scenario, logger zerolog.Logger) ([]sim.Result, error) {
	results := make([]sim.Result, 0, len(sc.Runs))

	for i, r := range sc.Runs {
		kind, err := algo.Parse(r.Algorithm)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}

		n := r.Bars
		if len(r.Values) > 0 {
			n = len(r.Values)
		}
		logger.Info().Int("run", i+1).Int("of", len(sc.Runs)).Str("algorithm", kind.String()).Int("bars", n).Msg("running")

		c, err := sim.New(sim.Config{Bars: n, Speed: sim.DefaultSpeed, Algorithm: kind, Seed: r.Seed})
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}
		c.SetLogger(logger)
		if len(r.Values) > 0 {
			if err := c.Load(r.Values); err != nil {
				return results, fmt.Errorf("run %d: %w", i+1, err)
			}
		}

		res, err := c.RunToCompletion(ctx, sim.StepBudget(n))
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}
		results = append(results, *res)
	}

	return results, nil
}

// TrialConfig describes repeated runs of one or more algorithms over fresh
// shuffles.
type TrialConfig struct {
	Bars   int
	Trials int
	Seed   int64
}

// Summary holds mean counters over a set of trials.
type Summary struct {
	Algorithm       algo.Kind
	Trials          int
	Failed          int
	MeanSteps       float64
	MeanComparisons float64
	MeanSwaps       float64
	MeanWrites      float64
	MaxSteps        int
}

// trialSeeds derives one non-zero seed per trial so every algorithm in a
// comparison sorts the same shuffles.
func trialSeeds(cfg TrialConfig) []int64 {
	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	seeds := make([]int64, cfg.Trials)
	for i := range seeds {
		s := rng.Int63()
		if s == 0 {
			s = 1
		}
		seeds[i] = s
	}
	return seeds
}

func (cfg TrialConfig) validate() error {
	if cfg.Trials < 1 {
		return apperrors.NewConfigError("trials must be positive, got %d", cfg.Trials)
	}
	if cfg.Bars < config.MinBars || cfg.Bars > config.MaxBars {
		return apperrors.NewConfigError("bars must be in [%d, %d], got %d",
			config.MinBars, config.MaxBars, cfg.Bars)
	}
	return nil
}

// RunTrials sorts cfg.Trials shuffles of cfg.Bars with kind.
func RunTrials(ctx context.Context, kind algo.Kind, cfg TrialConfig) ([]sim.Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return runTrials(ctx, kind, cfg.Bars, trialSeeds(cfg))
}

func runTrials(ctx context.Context, kind algo.Kind, n int, seeds []int64) ([]sim.Result, error) {
	results := make([]sim.Result, 0, len(seeds))
	for _, seed := range seeds {
		c, err := sim.New(sim.Config{Bars: n, Speed: sim.DefaultSpeed, Algorithm: kind, Seed: seed})
		if err != nil {
			return results, err
		}
		res, err := c.RunToCompletion(ctx, sim.StepBudget(n))
		if err != nil {
			return results, err
		}
		results = append(results, *res)
	}
	return results, nil
}

// Compare runs the same trials for each kind and summarises them in order.
func Compare(ctx context.Context, kinds []algo.Kind, cfg TrialConfig, logger zerolog.Logger) ([]Summary, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seeds := trialSeeds(cfg)

	out := make([]Summary, 0, len(kinds))
	for _, k := range kinds {
		start := time.Now()
		results, err := runTrials(ctx, k, cfg.Bars, seeds)
		if err != nil {
			return out, fmt.Errorf("%s: %w", k, err)
		}
		logger.Debug().Str("algorithm", k.String()).Int("trials", len(results)).Dur("elapsed", time.Since(start)).Msg("trials complete")
		s := Summarize(results)
		s.Algorithm = k
		out = append(out, s)
	}
	return out, nil
}

// Summarize averages the counters of results. Unsorted results count as
// failures and are left out of the means.
func Summarize(results []sim.Result) Summary {
	var s Summary
	if len(results) > 0 {
		s.Algorithm = results[0].Algorithm
	}
	ok := 0
	for _, r := range results {
		s.Trials++
		if !r.Sorted {
			s.Failed++
			continue
		}
		ok++
		s.MeanSteps += float64(r.Steps)
		s.MeanComparisons += float64(r.Comparisons)
		s.MeanSwaps += float64(r.Swaps)
		s.MeanWrites += float64(r.Writes)
		if r.Steps > s.MaxSteps {
			s.MaxSteps = r.Steps
		}
	}
	if ok > 0 {
		f := float64(ok)
		s.MeanSteps /= f
		s.MeanComparisons /= f
		s.MeanSwaps /= f
		s.MeanWrites /= f
	}
	return s
}
