package forest

import (
	"fmt"
	"slices"

	"github.com/paulmach/orb"
)

// Edge joins two patch ids. The relation it encodes is undirected.
type Edge [2]int

// BuildPatches creates the id-indexed patch table for the given topology.
// Ids are visited in ascending order; each becomes a tree when doing so keeps
// the tree count within the target fraction of the patches created so far,
// and a rock otherwise, so the realized fraction tracks the target as the
// graph grows. A ratio of 100 yields only trees, 0 only rocks. Edges are then
// applied symmetrically. An edge endpoint with no position fails the build
// with ErrConstruction.
func BuildPatches(edges []Edge, positions map[int]orb.Point, forestRatio int, probs Probabilities) (map[int]*Patch, error) {
	ids := make([]int, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	patches := make(map[int]*Patch, len(ids))
	trees := 0
	for _, id := range ids {
		// Integer form of trees/(created+1) < forestRatio/100, exact at the
		// boundaries.
		if trees*100 < forestRatio*(len(patches)+1) {
			patches[id] = NewTree(id, positions[id], probs.Ignition)
			trees++
		} else {
			patches[id] = NewRock(id, positions[id], probs.Respawn)
		}
	}

	for _, e := range edges {
		a, ok := patches[e[0]]
		if !ok {
			return nil, fmt.Errorf("%w: edge (%d,%d) references unknown patch %d", ErrConstruction, e[0], e[1], e[0])
		}
		b, ok := patches[e[1]]
		if !ok {
			return nil, fmt.Errorf("%w: edge (%d,%d) references unknown patch %d", ErrConstruction, e[0], e[1], e[1])
		}
		a.AddNeighbor(e[1])
		b.AddNeighbor(e[0])
	}
	return patches, nil
}
