package forest

import "graph-forest/pkg/core"

// Firefighter is a mobile agent co-located with exactly one patch. Its
// position is tracked by the Land, not by the agent itself.
type Firefighter struct {
	ID    int
	Skill int
}

// NewFirefighter creates an agent with the given suppression skill.
func NewFirefighter(id, skill int) *Firefighter {
	return &Firefighter{ID: id, Skill: skill}
}

// FightFire restores Skill health to a burning tree, capped at HealthMax.
// Reaching the cap extinguishes the fire (see Patch.SetHealth). Unlit trees
// and rocks are left alone.
func (f *Firefighter) FightFire(p *Patch) {
	if p.Kind != KindTree || !p.Lit {
		return
	}
	p.SetHealth(p.Health + f.Skill)
}

// Move picks the destination patch id for a relocating firefighter. The
// first burning, unoccupied tree among the neighbors (ascending id) wins;
// otherwise a uniform draw over the unoccupied neighbors decides. When every
// neighbor is occupied the agent stays in place, which counts as a valid
// degenerate move.
func (f *Firefighter) Move(current *Patch, patches map[int]*Patch, rng *core.RNG) int {
	for _, id := range current.Neighbors {
		n := patches[id]
		if n.Kind == KindTree && n.Lit && !n.Occupied {
			return id
		}
	}

	free := make([]int, 0, len(current.Neighbors))
	for _, id := range current.Neighbors {
		if !patches[id].Occupied {
			free = append(free, id)
		}
	}
	if len(free) == 0 {
		return current.ID
	}
	return free[rng.IntN(len(free))]
}
