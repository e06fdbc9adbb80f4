package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"backdrop/internal/core"
	"backdrop/internal/sims/flow"
	"backdrop/internal/sims/flowers"
	"backdrop/internal/sims/rain"
	"backdrop/internal/sims/waves"
)

type scenario struct {
	kind core.Kind
	seed int64
	dt   float64
}

type result struct {
	scenario
	frames   int
	recycled int
	ripples  int
	peak     int
	flashes  int
	foam     int
	elapsed  time.Duration
}

func main() {
	frames := flag.Int("frames", 3600, "frames to simulate per scenario")
	seeds := flag.Int("seeds", 4, "seeds per animation kind")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	var scenarios []scenario
	for _, kind := range core.Kinds() {
		for s := 0; s < *seeds; s++ {
			for _, dt := range []float64{1.0 / 60, 1.0 / 30, 0.25} {
				scenarios = append(scenarios, scenario{kind: kind, seed: int64(1000 + s), dt: dt})
			}
		}
	}

	fmt.Printf("Running %d scenarios (%d workers, %d frames)\n", len(scenarios), *workers, *frames)

	jobs := make(chan scenario)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res, err := run(sc, *frames)
				if err != nil {
					log.Printf("%s seed=%d dt=%.4f: %v", sc.kind, sc.seed, sc.dt, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	var all []result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].kind != all[j].kind {
			return all[i].kind < all[j].kind
		}
		if all[i].dt != all[j].dt {
			return all[i].dt < all[j].dt
		}
		return all[i].seed < all[j].seed
	})

	for _, res := range all {
		fmt.Printf("%-8s seed=%d dt=%.4f recycled/s=%.1f ripples=%d peak=%d flashes=%d foam=%d (%s)\n",
			res.kind, res.seed, res.dt, float64(res.recycled)/(float64(res.frames)*res.dt),
			res.ripples, res.peak, res.flashes, res.foam, res.elapsed.Round(time.Millisecond))
	}
}

func run(sc scenario, frames int) (result, error) {
	start := time.Now()
	res := result{scenario: sc, frames: frames}
	ctrl, err := core.NewController(sc.kind, nil, sc.seed)
	if err != nil {
		return result{}, fmt.Errorf("build controller: %w", err)
	}
	for i := 0; i < frames; i++ {
		ctrl.Step(sc.dt)
		switch a := ctrl.Active().(type) {
		case *flow.Flow:
			res.recycled += a.Recycled()
		case *flowers.Flowers:
			res.recycled += a.Recycled()
		case *rain.Rain:
			res.recycled += a.Recycled()
			res.peak = max(res.peak, a.RippleTrack().Count())
		case *waves.Waves:
			res.recycled += a.Recycled()
			res.foam += a.Shed()
			res.peak = max(res.peak, len(a.Foam()))
		}
	}
	if r, ok := ctrl.Active().(*rain.Rain); ok {
		res.ripples = r.Impacts()
		res.flashes = r.Lightning().Flashes()
	}
	res.elapsed = time.Since(start)
	return res, nil
}
