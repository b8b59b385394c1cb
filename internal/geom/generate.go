package geom

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"graph-forest/internal/forest"
	"graph-forest/pkg/core"
)

const (
	// MinEdges and MaxEdges bound the accepted procedural edge count.
	MinEdges = 4
	MaxEdges = 1000

	// planeSize is the side of the square the nodes are sampled in.
	planeSize = 10.0
)

// Generate produces a connected planar graph with exactly edgeCount edges
// and true 2D positions for every node. Nodes are sampled uniformly in the
// plane; a Euclidean minimum spanning tree (whose segments never cross)
// connects them, and the remaining shortest non-crossing candidate edges
// fill up to the requested count. An out-of-range edge count fails with
// ErrInput.
func Generate(edgeCount int, rng *core.RNG) ([]forest.Edge, map[int]orb.Point, error) {
	if edgeCount < MinEdges || edgeCount > MaxEdges {
		return nil, nil, fmt.Errorf("%w: edge count %d outside [%d,%d]", forest.ErrInput, edgeCount, MinEdges, MaxEdges)
	}

	// Node count chosen so the spanning tree fits under the target and a
	// triangulation of the samples always offers enough fill edges.
	nodes := (2*edgeCount)/3 + 2
	if nodes < 4 {
		nodes = 4
	}

	pts := make([]orb.Point, nodes)
	positions := make(map[int]orb.Point, nodes)
	for i := range pts {
		p := orb.Point{rng.Uniform(0, planeSize), rng.Uniform(0, planeSize)}
		pts[i] = p
		positions[i] = p
	}

	edges := spanningTree(pts)

	tree := rtreego.NewTree(2, 25, 50)
	present := make(map[forest.Edge]bool, edgeCount)
	for _, e := range edges {
		present[normalize(e)] = true
		if seg, ok := newSegment(e[0], e[1], pts[e[0]], pts[e[1]]); ok {
			tree.Insert(seg)
		}
	}

	type candidate struct {
		a, b int
		dist float64
	}
	cands := make([]candidate, 0, nodes*(nodes-1)/2)
	for a := 0; a < nodes; a++ {
		for b := a + 1; b < nodes; b++ {
			if present[forest.Edge{a, b}] {
				continue
			}
			cands = append(cands, candidate{a: a, b: b, dist: planar.Distance(pts[a], pts[b])})
		}
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	for _, c := range cands {
		if len(edges) >= edgeCount {
			break
		}
		seg, ok := newSegment(c.a, c.b, pts[c.a], pts[c.b])
		if !ok {
			continue
		}
		crossing := false
		for _, item := range tree.SearchIntersect(seg.bbox) {
			if segmentsCross(seg, item.(*segment)) {
				crossing = true
				break
			}
		}
		if crossing {
			continue
		}
		edges = append(edges, forest.Edge{c.a, c.b})
		present[forest.Edge{c.a, c.b}] = true
		tree.Insert(seg)
	}

	if len(edges) != edgeCount {
		return nil, nil, fmt.Errorf("%w: only %d of %d non-crossing edges fit", forest.ErrConstruction, len(edges), edgeCount)
	}
	return edges, positions, nil
}

// spanningTree builds the Euclidean MST over the points with Prim's
// algorithm. MST segments of a planar point set never cross each other, so
// the backbone is planar and connected by construction.
func spanningTree(pts []orb.Point) []forest.Edge {
	n := len(pts)
	edges := make([]forest.Edge, 0, n-1)
	inTree := make([]bool, n)
	bestDist := make([]float64, n)
	bestFrom := make([]int, n)
	for i := range bestDist {
		bestDist[i] = planar.Distance(pts[0], pts[i])
		bestFrom[i] = 0
	}
	inTree[0] = true

	for added := 1; added < n; added++ {
		next := -1
		for i := 0; i < n; i++ {
			if inTree[i] {
				continue
			}
			if next == -1 || bestDist[i] < bestDist[next] {
				next = i
			}
		}
		edges = append(edges, normalize(forest.Edge{bestFrom[next], next}))
		inTree[next] = true
		for i := 0; i < n; i++ {
			if inTree[i] {
				continue
			}
			if d := planar.Distance(pts[next], pts[i]); d < bestDist[i] {
				bestDist[i] = d
				bestFrom[i] = next
			}
		}
	}
	return edges
}

func normalize(e forest.Edge) forest.Edge {
	if e[0] > e[1] {
		return forest.Edge{e[1], e[0]}
	}
	return e
}
