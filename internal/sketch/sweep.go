package sketch

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SeedResult summarises how many grid points survived each pass for a seed.
type SeedResult struct {
	Seed      string
	Points    int
	PerPass   []int
	Segments  int
	Retention float64
}

// SeedStats builds the plan for cfg with the given seed, without painting.
func SeedStats(cfg Config, seed string) (SeedResult, error) {
	cfg.Seed = seed
	sk := NewWithConfig(cfg)
	plan, err := sk.Build()
	if err != nil {
		return SeedResult{Seed: seed}, err
	}
	res := SeedResult{Seed: seed, Points: len(sk.Grid()), PerPass: make([]int, len(plan))}
	for i, pass := range plan {
		res.PerPass[i] = len(pass.Segments)
		res.Segments += len(pass.Segments)
	}
	if draws := res.Points * len(plan); draws > 0 {
		res.Retention = float64(res.Segments) / float64(draws)
	}
	return res, nil
}

// SweepSeeds evaluates every seed on a bounded worker pool. Results keep the
// order of seeds. Each worker builds its own sketch and generator.
func SweepSeeds(cfg Config, seeds []string, workers int) ([]SeedResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]SeedResult, len(seeds))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			res, err := SeedStats(cfg, seed)
			if err != nil {
				return fmt.Errorf("seed %q: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MeanRetention averages the retention rate across results weighted by draws.
func MeanRetention(results []SeedResult) float64 {
	var kept, draws int
	for _, r := range results {
		kept += r.Segments
		draws += r.Points * len(r.PerPass)
	}
	if draws == 0 {
		return 0
	}
	return float64(kept) / float64(draws)
}
