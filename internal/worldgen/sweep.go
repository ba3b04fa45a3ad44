package worldgen

import (
	"io"
	"log/slog"
	"sort"
	"sync"
)

// SweepResult summarises the world generated for one seed.
type SweepResult struct {
	Seed          int64
	Islets        int
	IsletAttempts int
	MainlandPorts int
	FallbackPorts int
	Repairs       int
	Err           error
}

// Score ranks seeds: more islets and mainland ports are better, fallback
// ports and repaired spawns are penalised.
func (r SweepResult) Score() int {
	if r.Err != nil {
		return -1 << 30
	}
	return r.Islets*10 + r.MainlandPorts*6 - r.FallbackPorts*8 - r.Repairs*2
}

// SweepSeeds generates a headless world for every seed using up to workers
// goroutines and returns the results sorted best first.
func SweepSeeds(base Config, spawn Spawn, seeds []int64, workers int) []SweepResult {
	if workers <= 0 {
		workers = 1
	}
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	results := make([]SweepResult, len(seeds))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s int64) {
			defer wg.Done()
			cfg := base
			cfg.Seed = s
			cfg.RasterCell = 0
			results[i] = evaluateSeed(cfg, spawn, quiet)
			<-sem
		}(idx, seed)
	}

	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		si, sj := results[i].Score(), results[j].Score()
		if si == sj {
			return results[i].Seed < results[j].Seed
		}
		return si > sj
	})
	return results
}

func evaluateSeed(cfg Config, spawn Spawn, logger *slog.Logger) SweepResult {
	res := SweepResult{Seed: cfg.Seed}
	w, err := Generate(cfg, spawn, logger)
	if err != nil {
		res.Err = err
		return res
	}
	st := w.Stats()
	res.Islets = len(w.islets)
	res.IsletAttempts = st.Islets.Attempts
	res.MainlandPorts = len(w.ports) - len(w.islets)
	res.FallbackPorts = st.FallbackPorts
	for rep, n := range st.Repairs {
		if rep != RepairNone {
			res.Repairs += n
		}
	}
	return res
}
