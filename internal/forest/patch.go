package forest

import (
	"slices"

	"github.com/paulmach/orb"

	"graph-forest/pkg/core"
)

// PatchKind tags the two patch variants.
type PatchKind uint8

const (
	KindRock PatchKind = iota
	KindTree
)

// String returns the lower-case variant name.
func (k PatchKind) String() string {
	if k == KindTree {
		return "tree"
	}
	return "rock"
}

const (
	// HealthMax is full tree vigor; reaching it extinguishes any fire.
	HealthMax = 256
	// HealthMin is the floor below which a burning tree turns to rock.
	HealthMin = 0

	healthGrowth = 10
	healthBurn   = 20
)

// Patch is one node of the simulation graph: a tree or a rock, identified by
// a stable id. Neighbors hold ids only; they are resolved through the Land
// patch table on every access so a mutated neighbor is always observed in its
// current variant.
type Patch struct {
	ID  int
	Pos orb.Point
	// Neighbors is kept sorted ascending and is fixed for the run.
	Neighbors []int
	Kind      PatchKind
	Occupied  bool

	// Tree fields. Health stays within [HealthMin, HealthMax].
	Health       int
	Lit          bool
	IgniteChance int

	// Rock field.
	RespawnChance int

	// Color is the display value: Health while growing, Health-HealthMax
	// while burning. Rocks carry no color (HasColor false).
	Color    int
	HasColor bool
}

// NewTree creates an unlit tree patch at full health.
func NewTree(id int, pos orb.Point, igniteChance int) *Patch {
	p := &Patch{
		ID:           id,
		Pos:          pos,
		Kind:         KindTree,
		Health:       HealthMax,
		IgniteChance: igniteChance,
	}
	p.refreshColor()
	return p
}

// NewRock creates a rock patch.
func NewRock(id int, pos orb.Point, respawnChance int) *Patch {
	p := &Patch{
		ID:            id,
		Pos:           pos,
		Kind:          KindRock,
		RespawnChance: respawnChance,
	}
	p.refreshColor()
	return p
}

// AddNeighbor records a neighboring patch id, keeping the set sorted and
// duplicate-free.
func (p *Patch) AddNeighbor(id int) {
	i, found := slices.BinarySearch(p.Neighbors, id)
	if found {
		return
	}
	p.Neighbors = slices.Insert(p.Neighbors, i, id)
}

// Ignite sets a tree on fire. Rocks ignore it.
func (p *Patch) Ignite() {
	if p.Kind == KindTree {
		p.Lit = true
		p.refreshColor()
	}
}

// SetHealth clamps health into [HealthMin, HealthMax]. Reaching the ceiling
// extinguishes the fire as a side effect.
func (p *Patch) SetHealth(health int) {
	p.Health = health
	if p.Health >= HealthMax {
		p.Health = HealthMax
		p.Lit = false
	}
	if p.Health < HealthMin {
		p.Health = HealthMin
	}
	p.refreshColor()
}

// Update advances the patch by one step and reports whether it must mutate
// into the opposite variant. A rock mutates on a successful respawn roll. A
// tree first rolls for spontaneous ignition, then grows while unlit or burns
// down while lit; it mutates when the burn decrement would cross below the
// health floor.
func (p *Patch) Update(rng *core.RNG) bool {
	if p.Kind == KindRock {
		return rng.Percent() <= p.RespawnChance
	}

	if rng.Percent() <= p.IgniteChance {
		p.Lit = true
	}

	if !p.Lit {
		p.SetHealth(p.Health + healthGrowth)
		return false
	}
	if p.Health-healthBurn < HealthMin {
		return true
	}
	p.SetHealth(p.Health - healthBurn)
	return false
}

// Mutate produces the replacement patch of the opposite variant. The
// replacement keeps the id, position, neighbor-id membership and occupancy of
// the outgoing patch; a tree born from rock starts at health 1, unlit.
func (p *Patch) Mutate(probs Probabilities) *Patch {
	var next *Patch
	if p.Kind == KindTree {
		next = NewRock(p.ID, p.Pos, probs.Respawn)
	} else {
		next = NewTree(p.ID, p.Pos, probs.Ignition)
		next.SetHealth(1)
	}
	next.Neighbors = slices.Clone(p.Neighbors)
	next.Occupied = p.Occupied
	return next
}

func (p *Patch) refreshColor() {
	if p.Kind != KindTree {
		p.Color = 0
		p.HasColor = false
		return
	}
	p.HasColor = true
	if p.Lit {
		p.Color = p.Health - HealthMax
	} else {
		p.Color = p.Health
	}
}
