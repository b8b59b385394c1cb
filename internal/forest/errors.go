package forest

import "errors"

// Sentinel errors for land construction. Callers match with errors.Is.
var (
	// ErrInput indicates a configuration or source value outside its allowed range.
	ErrInput = errors.New("forest: invalid input")
	// ErrConstruction indicates the graph build failed, e.g. an edge references
	// an id with no patch.
	ErrConstruction = errors.New("forest: graph construction failed")
	// ErrGraphNotConnected indicates the patch graph has more than one component.
	ErrGraphNotConnected = errors.New("forest: graph is not connected")
	// ErrGraphNotPlanar indicates the planarity collaborator rejected the edge set.
	ErrGraphNotPlanar = errors.New("forest: graph is not planar")
)
