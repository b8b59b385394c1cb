package forest

import (
	"errors"
	"slices"
	"testing"

	"github.com/paulmach/orb"
)

func cycleEdges() []Edge {
	return []Edge{{1, 2}, {2, 3}, {3, 4}, {4, 1}}
}

func cyclePositions() map[int]orb.Point {
	return map[int]orb.Point{
		1: {0, 0},
		2: {1, 0},
		3: {1, 1},
		4: {0, 1},
	}
}

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.ForestRatio = 100
	cfg.Probabilities = Probabilities{}
	cfg.Firefighters = 0
	cfg.Skill = 0
	cfg.Iterations = 10
	cfg.Seed = 42
	return cfg
}

func newCycleLand(t *testing.T, cfg Config) *Land {
	t.Helper()
	land, err := NewLand(cfg, cycleEdges(), cyclePositions(), nil)
	if err != nil {
		t.Fatalf("NewLand failed: %v", err)
	}
	return land
}

func TestStableForestWithoutFire(t *testing.T) {
	land := newCycleLand(t, quietConfig())

	for i := 0; i < 5; i++ {
		land.Step()
		c := land.Counts()
		if c.Trees != 4 || c.Rocks != 0 || c.Burning != 0 {
			t.Fatalf("step %d counts = %+v, want 4 calm trees", i+1, c)
		}
		for id := 1; id <= 4; id++ {
			p := land.Patch(id)
			if p.Kind != KindTree || p.Health != HealthMax || p.Lit {
				t.Fatalf("step %d patch %d = %+v, want full-health unlit tree", i+1, id, p)
			}
		}
	}
}

func TestTransmissionIgnitesExactlyOneNeighbor(t *testing.T) {
	cfg := quietConfig()
	cfg.Probabilities.Transmission = 100
	land := newCycleLand(t, cfg)

	if !land.Ignite(1) {
		t.Fatal("patch 1 should be an ignitable tree")
	}
	land.Step()

	if got := land.Patch(1).Health; got != HealthMax-20 {
		t.Fatalf("burning tree health = %d, want %d", got, HealthMax-20)
	}
	if !land.Patch(1).Lit {
		t.Fatal("source tree must still be burning")
	}
	// Exactly one previously-unlit neighbor catches fire: the lowest-id one.
	if !land.Patch(2).Lit {
		t.Fatal("patch 2 must have caught fire")
	}
	if land.Patch(3).Lit || land.Patch(4).Lit {
		t.Fatal("fire must spread to at most one neighbor per step")
	}
	if c := land.Counts(); c.Burning != 2 {
		t.Fatalf("burning count = %d, want 2", c.Burning)
	}
}

func TestIgnoredTransmissionNeverSpreads(t *testing.T) {
	land := newCycleLand(t, quietConfig())
	land.Ignite(1)

	land.Step()
	if land.Patch(2).Lit || land.Patch(4).Lit {
		t.Fatal("transmission chance 0 must never spread fire")
	}
}

func TestBurnoutInstallsRockInTable(t *testing.T) {
	land := newCycleLand(t, quietConfig())
	p := land.Patch(1)
	p.Lit = true
	p.Health = 10

	land.Step()

	replaced := land.Patch(1)
	if replaced.Kind != KindRock {
		t.Fatalf("patch 1 kind = %v, want rock after burn-out", replaced.Kind)
	}
	if replaced.ID != 1 || !slices.Equal(replaced.Neighbors, []int{2, 4}) {
		t.Fatalf("replacement = id %d neighbors %v, want id 1 neighbors [2 4]", replaced.ID, replaced.Neighbors)
	}
	// Neighbors resolve the replacement through the shared table.
	for _, n := range land.Patch(2).Neighbors {
		if n == 1 && land.Patch(n).Kind != KindRock {
			t.Fatal("neighbor lookup observed a stale variant")
		}
	}
}

func TestEdgesReturnsIndependentCopy(t *testing.T) {
	land := newCycleLand(t, quietConfig())

	got := land.Edges()
	got[0] = Edge{99, 99}

	if !slices.Equal(land.Edges(), cycleEdges()) {
		t.Fatal("mutating the returned slice must not affect the land")
	}
}

func TestDisconnectedGraphRejected(t *testing.T) {
	edges := []Edge{{1, 2}, {3, 4}}
	_, err := NewLand(quietConfig(), edges, cyclePositions(), nil)
	if !errors.Is(err, ErrGraphNotConnected) {
		t.Fatalf("err = %v, want ErrGraphNotConnected", err)
	}
}

func TestPlanarityVerdictRespected(t *testing.T) {
	reject := func([]Edge, map[int]orb.Point) bool { return false }
	if _, err := NewLand(quietConfig(), cycleEdges(), cyclePositions(), reject); !errors.Is(err, ErrGraphNotPlanar) {
		t.Fatalf("err = %v, want ErrGraphNotPlanar", err)
	}

	accept := func([]Edge, map[int]orb.Point) bool { return true }
	if _, err := NewLand(quietConfig(), cycleEdges(), cyclePositions(), accept); err != nil {
		t.Fatalf("connected planar cycle rejected: %v", err)
	}
}

func TestFirefightersSpawnOnDistinctPatches(t *testing.T) {
	cfg := quietConfig()
	cfg.Firefighters = 3
	land := newCycleLand(t, cfg)

	positions := land.FirefighterPositions()
	if len(positions) != 3 {
		t.Fatalf("spawned %d firefighters, want 3", len(positions))
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1] {
			t.Fatalf("positions %v are not distinct", positions)
		}
	}
	for _, pos := range positions {
		if !land.Patch(pos).Occupied {
			t.Fatalf("patch %d hosts a firefighter but is not flagged occupied", pos)
		}
	}
}

func TestTooManyFirefightersRejected(t *testing.T) {
	cfg := quietConfig()
	cfg.Firefighters = 5
	_, err := NewLand(cfg, cycleEdges(), cyclePositions(), nil)
	if !errors.Is(err, ErrInput) {
		t.Fatalf("err = %v, want ErrInput", err)
	}
}

func TestFirefightersNeverCollide(t *testing.T) {
	cfg := quietConfig()
	cfg.Firefighters = 3
	cfg.Probabilities = Probabilities{Ignition: 2, Transmission: 30, Respawn: 1}
	land := newCycleLand(t, cfg)

	for i := 0; i < 25; i++ {
		land.Step()
		positions := land.FirefighterPositions()
		if len(positions) != 3 {
			t.Fatalf("step %d: %d occupied patches, want 3", i+1, len(positions))
		}
		occupied := 0
		for id := 1; id <= 4; id++ {
			if land.Patch(id).Occupied {
				occupied++
			}
		}
		if occupied != 3 {
			t.Fatalf("step %d: %d occupancy flags set, want 3", i+1, occupied)
		}
	}
}

func TestFirefighterSuppressesItsPatch(t *testing.T) {
	cfg := quietConfig()
	cfg.Firefighters = 1
	cfg.Skill = 25
	land := newCycleLand(t, cfg)

	pos := land.FirefighterPositions()[0]
	p := land.Patch(pos)
	p.Lit = true
	p.Health = 100

	land.Step()

	// Fight first (+25), then the burning tree's own update (-20).
	if p.Health != 105 {
		t.Fatalf("health = %d, want 105", p.Health)
	}
	if !p.Lit {
		t.Fatal("partial suppression leaves the tree burning")
	}
}

func TestMixedFillSnapshot(t *testing.T) {
	cfg := quietConfig()
	cfg.ForestRatio = 50
	land := newCycleLand(t, cfg)

	c := land.Counts()
	if c.Trees != 2 || c.Rocks != 2 {
		t.Fatalf("counts = %+v, want 2 trees and 2 rocks", c)
	}

	views := land.Snapshot()
	if len(views) != 4 {
		t.Fatalf("snapshot has %d views, want 4", len(views))
	}
	for i, v := range views {
		if v.ID != i+1 {
			t.Fatalf("snapshot order = %v, want ascending ids", views)
		}
		if (v.Kind == KindTree) != v.HasColor {
			t.Fatalf("patch %d: kind %v with HasColor=%v", v.ID, v.Kind, v.HasColor)
		}
	}
}

func TestRunsAreReproducible(t *testing.T) {
	cfg := quietConfig()
	cfg.Firefighters = 2
	cfg.Probabilities = Probabilities{Ignition: 5, Transmission: 40, Respawn: 2}

	a := newCycleLand(t, cfg)
	b := newCycleLand(t, cfg)
	for i := 0; i < 20; i++ {
		a.Step()
		b.Step()
	}

	if !slices.Equal(a.Snapshot(), b.Snapshot()) {
		t.Fatal("identical seeds must yield identical runs")
	}
	if !slices.Equal(a.FirefighterPositions(), b.FirefighterPositions()) {
		t.Fatal("identical seeds must yield identical firefighter positions")
	}
}
