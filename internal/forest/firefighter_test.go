package forest

import (
	"testing"

	"github.com/paulmach/orb"

	"graph-forest/pkg/core"
)

func TestFightFireRestoresHealth(t *testing.T) {
	f := NewFirefighter(0, 25)
	p := NewTree(1, orb.Point{}, 0)
	p.Lit = true
	p.SetHealth(100)

	f.FightFire(p)
	if p.Health != 125 {
		t.Fatalf("health = %d, want 125", p.Health)
	}
	if !p.Lit {
		t.Fatal("partial suppression must not extinguish")
	}

	p.SetHealth(240)
	f.FightFire(p)
	if p.Health != HealthMax {
		t.Fatalf("health = %d, want cap %d", p.Health, HealthMax)
	}
	if p.Lit {
		t.Fatal("reaching the cap must extinguish the fire")
	}
}

func TestFightFireIgnoresUnlitAndRock(t *testing.T) {
	f := NewFirefighter(0, 25)

	tree := NewTree(1, orb.Point{}, 0)
	tree.SetHealth(100)
	f.FightFire(tree)
	if tree.Health != 100 {
		t.Fatalf("unlit tree health changed to %d", tree.Health)
	}

	rock := NewRock(2, orb.Point{}, 0)
	f.FightFire(rock)
	if rock.Kind != KindRock {
		t.Fatal("rock must be left alone")
	}
}

func moveFixture() (map[int]*Patch, *Patch) {
	patches := map[int]*Patch{
		1: NewTree(1, orb.Point{}, 0),
		2: NewTree(2, orb.Point{}, 0),
		3: NewTree(3, orb.Point{}, 0),
		4: NewTree(4, orb.Point{}, 0),
	}
	current := patches[1]
	for _, id := range []int{2, 3, 4} {
		current.AddNeighbor(id)
	}
	return patches, current
}

func TestMovePrefersFirstBurningFreeNeighbor(t *testing.T) {
	rng := core.NewRNG(1)
	patches, current := moveFixture()
	patches[2].Lit = true
	patches[2].Occupied = true
	patches[3].Lit = true

	f := NewFirefighter(0, 10)
	if dest := f.Move(current, patches, rng); dest != 3 {
		t.Fatalf("dest = %d, want the first unoccupied burning tree 3", dest)
	}
}

func TestMoveStaysWhenAllNeighborsOccupied(t *testing.T) {
	rng := core.NewRNG(1)
	patches, current := moveFixture()
	for _, id := range []int{2, 3, 4} {
		patches[id].Occupied = true
	}

	f := NewFirefighter(0, 10)
	if dest := f.Move(current, patches, rng); dest != current.ID {
		t.Fatalf("dest = %d, want to stay at %d", dest, current.ID)
	}
}

func TestMovePicksTheOnlyFreeNeighbor(t *testing.T) {
	rng := core.NewRNG(1)
	patches, current := moveFixture()
	patches[2].Occupied = true
	patches[4].Occupied = true

	f := NewFirefighter(0, 10)
	if dest := f.Move(current, patches, rng); dest != 3 {
		t.Fatalf("dest = %d, want the only free neighbor 3", dest)
	}
}
