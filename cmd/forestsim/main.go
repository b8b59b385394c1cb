package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/paulmach/orb"

	simcore "graph-forest/internal/core"
	"graph-forest/internal/forest"
	"graph-forest/internal/geom"
	"graph-forest/internal/graphio"
	"graph-forest/pkg/core"
)

// cliConfig represents the command-line parameters for the runner.
type cliConfig struct {
	GraphFile    string
	Edges        int
	ForestRatio  int
	Ignition     int
	Transmission int
	Respawn      int
	Firefighters int
	Skill        int
	Iterations   int
	Ignite       int
	Seed         int64
	TPS          int
}

// newCLIConfig returns a cliConfig populated with sensible defaults.
func newCLIConfig() *cliConfig {
	def := forest.DefaultConfig()
	return &cliConfig{
		Edges:        120,
		ForestRatio:  def.ForestRatio,
		Ignition:     def.Probabilities.Ignition,
		Transmission: def.Probabilities.Transmission,
		Respawn:      def.Probabilities.Respawn,
		Firefighters: def.Firefighters,
		Skill:        def.Skill,
		Iterations:   def.Iterations,
		Ignite:       -1,
		Seed:         def.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *cliConfig) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.GraphFile, "graph", c.GraphFile, "edge-list file; empty generates a planar graph")
	fs.IntVar(&c.Edges, "edges", c.Edges, "edge count for the generated graph")
	fs.IntVar(&c.ForestRatio, "forest", c.ForestRatio, "target tree percentage")
	fs.IntVar(&c.Ignition, "ignition", c.Ignition, "autocombustion chance in percent")
	fs.IntVar(&c.Transmission, "transmission", c.Transmission, "fire spread chance in percent")
	fs.IntVar(&c.Respawn, "respawn", c.Respawn, "rock regrowth chance in percent")
	fs.IntVar(&c.Firefighters, "firefighters", c.Firefighters, "number of firefighters")
	fs.IntVar(&c.Skill, "skill", c.Skill, "firefighter suppression skill")
	fs.IntVar(&c.Iterations, "iterations", c.Iterations, "simulation steps to run")
	fs.IntVar(&c.Ignite, "ignite", c.Ignite, "patch id to set on fire before step 1 (-1 for none)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random stream")
	fs.IntVar(&c.TPS, "tps", c.TPS, "steps per second (0 runs unpaced)")
}

func main() {
	cfg := newCLIConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := forest.Config{
		ForestRatio: cfg.ForestRatio,
		Probabilities: forest.Probabilities{
			Ignition:     cfg.Ignition,
			Transmission: cfg.Transmission,
			Respawn:      cfg.Respawn,
		},
		Firefighters: cfg.Firefighters,
		Skill:        cfg.Skill,
		Iterations:   cfg.Iterations,
		Seed:         cfg.Seed,
	}

	rng := core.NewRNG(cfg.Seed)

	var (
		edges     []forest.Edge
		positions map[int]orb.Point
		planar    forest.PlanarityFunc
		err       error
	)
	if cfg.GraphFile != "" {
		var skipped []graphio.SyntaxError
		edges, skipped, err = graphio.ReadEdgeList(cfg.GraphFile)
		for _, se := range skipped {
			log.Printf("skipping %v", se)
		}
		if err != nil {
			log.Fatal(err)
		}
		positions = graphio.RandomPositions(edges, rng)
		// File positions are random display hints, so planarity is judged
		// on the abstract edge set.
		planar = func(es []forest.Edge, _ map[int]orb.Point) bool {
			return geom.EdgesPlanar(es)
		}
	} else {
		edges, positions, err = geom.Generate(cfg.Edges, rng)
		if err != nil {
			log.Fatal(err)
		}
		planar = geom.CrossingFree
	}

	land, err := forest.NewLand(simCfg, edges, positions, planar)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Ignite >= 0 && !land.Ignite(cfg.Ignite) {
		log.Fatalf("patch %d is not a tree, cannot ignite it", cfg.Ignite)
	}

	start := land.Counts()
	fmt.Printf("land: %d patches, %d edges, %d trees, %d rocks, %d firefighters\n",
		land.PatchCount(), len(edges), start.Trees, start.Rocks, len(land.FirefighterPositions()))

	pacer := simcore.NewPacer(cfg.TPS)
	for i := 1; i <= cfg.Iterations; i++ {
		pacer.Wait()
		land.Step()
		c := land.Counts()
		fmt.Printf("step %4d: trees=%4d rocks=%4d burning=%4d\n", i, c.Trees, c.Rocks, c.Burning)
	}

	final := land.Counts()
	fmt.Printf("after %d steps: %d trees, %d rocks, %d burning\n",
		land.Steps(), final.Trees, final.Rocks, final.Burning)
}
