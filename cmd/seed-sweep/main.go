package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"sort"
	"strconv"
	"time"

	"gridlines/internal/app"
	"gridlines/internal/core"
	"gridlines/internal/sketch"
)

func main() {
	count := flag.Int("seeds", 1000, "number of seeds to evaluate")
	prefix := flag.String("prefix", "seed-", "prefix prepended to each numeric seed")
	grid := flag.Int("grid", sketch.DefaultConfig().GridSize, "grid divisor (2-50)")
	layout := flag.String("layout", string(core.LayoutPerAxis), "grid layout: per-axis or legacy")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "number of densest seeds to print")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	seeds, err := seedNames(*prefix, *count)
	if err != nil {
		log.Fatal(err)
	}
	logger := app.NewLogger(os.Stderr, *logLevel)

	cfg := sketch.FromMap(map[string]string{
		"grid":   strconv.Itoa(*grid),
		"layout": *layout,
	})

	logger.Info("sweeping seeds", "count", len(seeds), "grid", cfg.GridSize, "workers", *workers)

	start := time.Now()
	results, err := sketch.SweepSeeds(cfg, seeds, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	mean := sketch.MeanRetention(results)
	points := 0
	if len(results) > 0 {
		points = results[0].Points
	}
	fmt.Printf("Grid %d (%d points): mean retention %.4f over %d seeds (expected %.4f), elapsed %s\n",
		cfg.GridSize, points, mean, len(results), expectedRetention, elapsed.Round(time.Millisecond))

	sort.SliceStable(results, func(i, j int) bool { return results[i].Segments > results[j].Segments })
	fmt.Printf("\nTop %d seeds by segment count:\n", *top)
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%q segments=%d retention=%.3f per-pass=%v\n",
			i+1, res.Seed, res.Segments, res.Retention, res.PerPass)
	}
}

// seedNames returns prefix0 .. prefix(count-1).
func seedNames(prefix string, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("-seeds must be non-negative, got %d", count)
	}
	seeds := make([]string, count)
	for i := range seeds {
		seeds[i] = prefix + strconv.Itoa(i)
	}
	return seeds, nil
}

// expectedRetention is P(Z > threshold) for a standard normal Z.
var expectedRetention = 0.5 * math.Erfc(core.KeepThreshold/math.Sqrt2)
