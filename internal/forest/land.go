package forest

import (
	"fmt"
	"slices"

	"github.com/paulmach/orb"

	"graph-forest/pkg/core"
)

// PlanarityFunc decides whether an edge set is planar. It is supplied by an
// external geometric collaborator; the engine only consumes the verdict.
type PlanarityFunc func(edges []Edge, positions map[int]orb.Point) bool

// Land owns the patch table, the topology and the firefighter positions, and
// orchestrates one simulation step at a time. All randomness is drawn from a
// single seeded stream so runs are reproducible.
type Land struct {
	cfg Config

	patches   map[int]*Patch
	ids       []int // patch ids, ascending
	edges     []Edge
	positions map[int]orb.Point

	// firefighters maps patch id -> agent; at most one agent per patch.
	firefighters map[int]*Firefighter

	rng   *core.RNG
	steps int
}

// NewLand validates the configuration, builds the patch table, verifies the
// graph is connected and planar, and spawns the firefighters. Any failure
// aborts construction with a typed error; nothing is retried.
func NewLand(cfg Config, edges []Edge, positions map[int]orb.Point, planar PlanarityFunc) (*Land, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: empty edge list", ErrConstruction)
	}

	patches, err := BuildPatches(edges, positions, cfg.ForestRatio, cfg.Probabilities)
	if err != nil {
		return nil, err
	}
	if cfg.Firefighters > len(patches) {
		return nil, fmt.Errorf("%w: %d firefighters cannot share %d patches", ErrInput, cfg.Firefighters, len(patches))
	}

	ids := make([]int, 0, len(patches))
	for id := range patches {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	l := &Land{
		cfg:          cfg,
		patches:      patches,
		ids:          ids,
		edges:        slices.Clone(edges),
		positions:    positions,
		firefighters: make(map[int]*Firefighter, cfg.Firefighters),
		rng:          core.NewRNG(cfg.Seed),
	}

	if !l.connected() {
		return nil, ErrGraphNotConnected
	}
	if planar != nil && !planar(l.edges, l.positions) {
		return nil, ErrGraphNotPlanar
	}

	l.spawnFirefighters()
	return l, nil
}

// Step advances the simulation by one tick: firefighters act first and all
// relocations settle, then every patch transmits fire and updates in
// ascending id order, installing any mutation replacements.
func (l *Land) Step() {
	l.moveFirefighters()
	l.updatePatches()
	l.steps++
}

// Steps reports how many steps have run.
func (l *Land) Steps() int { return l.steps }

// PatchCount reports the number of patches in the table.
func (l *Land) PatchCount() int { return len(l.ids) }

// Patch returns the current patch stored under id, or nil.
func (l *Land) Patch(id int) *Patch { return l.patches[id] }

// Edges returns a copy of the edge list the land was built from.
func (l *Land) Edges() []Edge { return slices.Clone(l.edges) }

// Ignite sets the tree at id on fire, reporting whether it took. External
// runners use it to seed a fire deterministically.
func (l *Land) Ignite(id int) bool {
	p, ok := l.patches[id]
	if !ok || p.Kind != KindTree {
		return false
	}
	p.Ignite()
	return true
}

// spawnFirefighters places cfg.Firefighters agents on distinct random
// patches. Construction already guaranteed enough patches exist.
func (l *Land) spawnFirefighters() {
	for spawned := 0; spawned < l.cfg.Firefighters; {
		id := l.ids[l.rng.IntN(len(l.ids))]
		if l.patches[id].Occupied {
			continue
		}
		l.firefighters[id] = NewFirefighter(spawned, l.cfg.Skill)
		l.patches[id].Occupied = true
		spawned++
	}
}

// moveFirefighters resolves every agent for this step. Agents standing on a
// burning tree fight it and stay put; the rest relocate one at a time in
// ascending position order, so each later destination choice already sees
// the earlier arrivals.
func (l *Land) moveFirefighters() {
	positions := make([]int, 0, len(l.firefighters))
	for pos := range l.firefighters {
		positions = append(positions, pos)
	}
	slices.Sort(positions)

	movers := positions[:0]
	for _, pos := range positions {
		p := l.patches[pos]
		if p.Kind == KindTree && p.Lit {
			l.firefighters[pos].FightFire(p)
			continue
		}
		movers = append(movers, pos)
	}

	for _, pos := range movers {
		f := l.firefighters[pos]
		delete(l.firefighters, pos)
		l.patches[pos].Occupied = false

		dest := f.Move(l.patches[pos], l.patches, l.rng)
		l.firefighters[dest] = f
		l.patches[dest].Occupied = true
	}
}

// updatePatches runs fire transmission and the per-patch state machine in
// ascending id order. Transmission works from a snapshot of the trees that
// were burning when the phase began, so a fire front advances one hop per
// step regardless of iteration order.
func (l *Land) updatePatches() {
	burning := make(map[int]bool, len(l.ids))
	for _, id := range l.ids {
		p := l.patches[id]
		if p.Kind == KindTree && p.Lit {
			burning[id] = true
		}
	}

	for _, id := range l.ids {
		p := l.patches[id]
		if burning[id] {
			l.transmitFire(p)
		}
		if p.Update(l.rng) {
			l.patches[id] = p.Mutate(l.cfg.Probabilities)
		}
	}
}

// transmitFire gives a burning tree one chance to spread this step: the
// first unlit tree neighbor (ascending id) is ignited with the transmission
// probability. At most one neighbor catches fire per burning tree per step.
func (l *Land) transmitFire(p *Patch) {
	for _, id := range p.Neighbors {
		n := l.patches[id]
		if n.Kind != KindTree || n.Lit {
			continue
		}
		if l.rng.Percent() <= l.cfg.Probabilities.Transmission {
			n.Ignite()
		}
		return
	}
}

// connected reports whether every patch is reachable from the first id via
// the neighbor relation, using a breadth-first traversal.
func (l *Land) connected() bool {
	if len(l.ids) == 0 {
		return false
	}
	visited := make(map[int]bool, len(l.ids))
	queue := []int{l.ids[0]}
	visited[l.ids[0]] = true
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, n := range l.patches[id].Neighbors {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(l.ids)
}
