package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"graph-forest/internal/forest"
	"graph-forest/internal/geom"
	"graph-forest/pkg/core"
)

type paramSet struct {
	ignition     int
	transmission int
	respawn      int
}

func (p paramSet) String() string {
	return fmt.Sprintf("ignition=%d%% transmission=%d%% respawn=%d%%", p.ignition, p.transmission, p.respawn)
}

type scenarioResult struct {
	params       paramSet
	treeFraction float64
	peakBurning  int
	finalTrees   int
	finalRocks   int
	finalBurning int
}

func main() {
	steps := flag.Int("steps", 200, "steps to simulate per scenario")
	edges := flag.Int("edges", 120, "edge count of the generated graph")
	firefighters := flag.Int("firefighters", 5, "firefighters per scenario")
	skill := flag.Int("skill", 25, "firefighter suppression skill")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	flag.Parse()

	ignitionOptions := []int{0, 1, 2, 5}
	transmissionOptions := []int{10, 30, 50, 80}
	respawnOptions := []int{0, 1, 5}

	var sets []paramSet
	for _, ign := range ignitionOptions {
		for _, tr := range transmissionOptions {
			for _, re := range respawnOptions {
				if ign+tr+re > 100 {
					continue
				}
				sets = append(sets, paramSet{ignition: ign, transmission: tr, respawn: re})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %d edges)\n",
		len(sets), *workers, *steps, *edges)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				res, err := runScenario(params, *edges, *firefighters, *skill, *steps, *seed)
				if err != nil {
					log.Fatalf("scenario %s: %v", params, err)
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
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].treeFraction > all[j].treeFraction })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 surviving forests (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		fmt.Printf("%2d) forest=%.1f%% peakBurning=%d final[trees=%d rocks=%d burning=%d] %s\n",
			i+1, res.treeFraction*100, res.peakBurning, res.finalTrees, res.finalRocks, res.finalBurning, res.params)
	}

	worst := all[len(all)-1]
	fmt.Printf("\nWorst: forest=%.1f%% peakBurning=%d %s\n",
		worst.treeFraction*100, worst.peakBurning, worst.params)
}

// runScenario builds a fresh land for one probability combination and steps
// it to the end. Each scenario is fully sequential; only independent
// scenarios run in parallel.
func runScenario(params paramSet, edgeCount, firefighters, skill, steps int, seed int64) (scenarioResult, error) {
	rng := core.NewRNG(seed)
	edges, positions, err := geom.Generate(edgeCount, rng)
	if err != nil {
		return scenarioResult{}, err
	}

	cfg := forest.DefaultConfig()
	cfg.Probabilities = forest.Probabilities{
		Ignition:     params.ignition,
		Transmission: params.transmission,
		Respawn:      params.respawn,
	}
	cfg.Firefighters = firefighters
	cfg.Skill = skill
	cfg.Iterations = steps
	cfg.Seed = seed

	land, err := forest.NewLand(cfg, edges, positions, geom.CrossingFree)
	if err != nil {
		return scenarioResult{}, err
	}

	res := scenarioResult{params: params}
	for i := 0; i < steps; i++ {
		land.Step()
		c := land.Counts()
		if c.Burning > res.peakBurning {
			res.peakBurning = c.Burning
		}
	}

	final := land.Counts()
	res.finalTrees = final.Trees
	res.finalRocks = final.Rocks
	res.finalBurning = final.Burning
	res.treeFraction = float64(final.Trees) / float64(land.PatchCount())
	return res, nil
}
