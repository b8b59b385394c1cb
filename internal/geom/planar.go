// Package geom is the geometric collaborator of the simulation core: it
// generates planar graphs and judges planarity of edge sets.
package geom

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"graph-forest/internal/forest"
)

// bboxPad keeps degenerate (axis-aligned) segment boxes valid for the R-tree.
const bboxPad = 1e-9

// segment wraps one embedded edge for R-tree storage.
type segment struct {
	a, b   orb.Point
	ai, bi int
	bbox   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (s *segment) Bounds() rtreego.Rect { return s.bbox }

func newSegment(ai, bi int, a, b orb.Point) (*segment, bool) {
	minX := math.Min(a[0], b[0])
	maxX := math.Max(a[0], b[0])
	minY := math.Min(a[1], b[1])
	maxY := math.Max(a[1], b[1])
	bbox, err := rtreego.NewRect(
		rtreego.Point{minX - bboxPad, minY - bboxPad},
		[]float64{maxX - minX + 2*bboxPad, maxY - minY + 2*bboxPad},
	)
	if err != nil {
		return nil, false
	}
	return &segment{a: a, b: b, ai: ai, bi: bi, bbox: bbox}, true
}

// CrossingFree reports whether the embedded edge set draws without any two
// segments crossing. Segments that share an endpoint do not count as
// crossing. Candidate pairs come from an R-tree over segment bounding boxes,
// so only nearby segments are tested. An edge endpoint without a position
// fails the check.
func CrossingFree(edges []forest.Edge, positions map[int]orb.Point) bool {
	tree := rtreego.NewTree(2, 25, 50)
	for _, e := range edges {
		a, okA := positions[e[0]]
		b, okB := positions[e[1]]
		if !okA || !okB {
			return false
		}
		seg, ok := newSegment(e[0], e[1], a, b)
		if !ok {
			return false
		}
		for _, item := range tree.SearchIntersect(seg.bbox) {
			if segmentsCross(seg, item.(*segment)) {
				return false
			}
		}
		tree.Insert(seg)
	}
	return true
}

// EdgesPlanar judges planarity of an abstract edge set, independent of any
// embedding, via edge-density bounds: a simple planar graph has at most
// 3V-6 edges, and at most 2V-4 when it contains no triangle. The test is a
// screen: graphs over the bound are certainly non-planar (it rejects both K5
// and K3,3), while sparse pathological graphs can pass.
func EdgesPlanar(edges []forest.Edge) bool {
	adj := make(map[int]map[int]bool)
	link := func(a, b int) {
		if adj[a] == nil {
			adj[a] = make(map[int]bool)
		}
		adj[a][b] = true
	}
	distinct := make(map[forest.Edge]bool)
	for _, e := range edges {
		a, b := e[0], e[1]
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if distinct[forest.Edge{a, b}] {
			continue
		}
		distinct[forest.Edge{a, b}] = true
		link(a, b)
		link(b, a)
	}

	v := len(adj)
	m := len(distinct)
	if v < 3 {
		return true
	}
	if m > 3*v-6 {
		return false
	}
	if !hasTriangle(adj) && m > 2*v-4 {
		return false
	}
	return true
}

func hasTriangle(adj map[int]map[int]bool) bool {
	for a, na := range adj {
		for b := range na {
			if b <= a {
				continue
			}
			for c := range adj[b] {
				if c > b && na[c] {
					return true
				}
			}
		}
	}
	return false
}

// segmentsCross reports a true crossing between two segments; shared
// endpoints (by id) never cross.
func segmentsCross(s, o *segment) bool {
	if s.ai == o.ai || s.ai == o.bi || s.bi == o.ai || s.bi == o.bi {
		return false
	}
	return doSegmentsIntersect(s.a, s.b, o.a, o.b)
}

func doSegmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func direction(p1, p2, p3 orb.Point) float64 {
	return (p3[0]-p1[0])*(p2[1]-p1[1]) - (p2[0]-p1[0])*(p3[1]-p1[1])
}

func onSegment(p, r, q orb.Point) bool {
	return q[0] <= math.Max(p[0], r[0]) && q[0] >= math.Min(p[0], r[0]) &&
		q[1] <= math.Max(p[1], r[1]) && q[1] >= math.Min(p[1], r[1])
}
