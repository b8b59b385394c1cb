package forest

import (
	"slices"

	"github.com/paulmach/orb"
)

// PatchView is the read-only per-patch state handed to external
// visualization and reporting collaborators.
type PatchView struct {
	ID       int
	Pos      orb.Point
	Kind     PatchKind
	Color    int
	HasColor bool
	Occupied bool
	Lit      bool
	Health   int
}

// Counts aggregates the patch population of one step.
type Counts struct {
	Trees   int
	Rocks   int
	Burning int
}

// Snapshot returns the current view of every patch in ascending id order.
func (l *Land) Snapshot() []PatchView {
	views := make([]PatchView, 0, len(l.ids))
	for _, id := range l.ids {
		p := l.patches[id]
		views = append(views, PatchView{
			ID:       p.ID,
			Pos:      p.Pos,
			Kind:     p.Kind,
			Color:    p.Color,
			HasColor: p.HasColor,
			Occupied: p.Occupied,
			Lit:      p.Lit,
			Health:   p.Health,
		})
	}
	return views
}

// Counts tallies trees, rocks and burning trees.
func (l *Land) Counts() Counts {
	var c Counts
	for _, id := range l.ids {
		p := l.patches[id]
		if p.Kind == KindTree {
			c.Trees++
			if p.Lit {
				c.Burning++
			}
		} else {
			c.Rocks++
		}
	}
	return c
}

// FirefighterPositions returns the occupied patch ids in ascending order.
func (l *Land) FirefighterPositions() []int {
	positions := make([]int, 0, len(l.firefighters))
	for pos := range l.firefighters {
		positions = append(positions, pos)
	}
	slices.Sort(positions)
	return positions
}
