// Package graphio reads edge-list files and assigns display coordinates to
// file-sourced graphs.
package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"graph-forest/internal/forest"
	"graph-forest/pkg/core"
)

// planeMax bounds the random display plane for file-sourced graphs.
const planeMax = 10.0

// SyntaxError records a malformed edge-list line that was skipped.
type SyntaxError struct {
	Line int
	Text string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("graphio: line %d: %q is not a comma-separated pair of non-negative integers", e.Line, e.Text)
}

// ReadEdgeList parses a plain-text edge list: one "a,b" pair per line, blank
// lines and #-comments ignored. Malformed lines are skipped and reported in
// the returned SyntaxError slice rather than aborting the parse; the read
// fails only when the file cannot be opened or yields zero valid edges.
func ReadEdgeList(path string) ([]forest.Edge, []SyntaxError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", forest.ErrInput, err)
	}
	defer f.Close()

	var (
		edges  []forest.Edge
		bad    []SyntaxError
		lineNo int
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, b, ok := parsePair(line)
		if !ok {
			bad = append(bad, SyntaxError{Line: lineNo, Text: line})
			continue
		}
		edges = append(edges, forest.Edge{a, b})
	}
	if err := scanner.Err(); err != nil {
		return nil, bad, fmt.Errorf("%w: %v", forest.ErrInput, err)
	}
	if len(edges) == 0 {
		return nil, bad, fmt.Errorf("%w: no valid edges in %s", forest.ErrInput, path)
	}
	return edges, bad, nil
}

func parsePair(line string) (int, int, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errA != nil || errB != nil || a < 0 || b < 0 {
		return 0, 0, false
	}
	return a, b, true
}

// RandomPositions assigns every id referenced by the edges a uniform random
// coordinate in the display plane. The coordinates feed external rendering
// only; adjacency never depends on them.
func RandomPositions(edges []forest.Edge, rng *core.RNG) map[int]orb.Point {
	positions := make(map[int]orb.Point)
	for _, e := range edges {
		for _, id := range e {
			if _, ok := positions[id]; !ok {
				positions[id] = orb.Point{rng.Uniform(0, planeMax), rng.Uniform(0, planeMax)}
			}
		}
	}
	return positions
}
