package tilegrid

import (
	"context"
	"time"

	"github.com/beltlayout/engine/internal/boolmodel"
	"github.com/beltlayout/engine/pkg/graph"
	"github.com/beltlayout/engine/pkg/model"
)

// encoding is the fully built Boolean model for one trial rectangle,
// retained so a satisfying assignment can be decoded back into concrete
// placements and belt segments.
type encoding struct {
	grid         *grid
	placements   map[string]*nodePlacement
	routes       []*edgeRoute
	builder      *boolmodel.Builder
}

// build constructs the complete cell-based encoding for a W×H trial
// rectangle over g.
func build(g *graph.ProductionGraph, w, h int) *encoding {
	b := boolmodel.NewBuilder()
	gr := newGrid(w, h)
	allocateCells(b, g, gr)
	placements := buildPlacements(b, g, gr)
	routes := buildRoutes(b, g, gr, placements)
	return &encoding{grid: gr, placements: placements, routes: routes, builder: b}
}

// Attempt checks whether g fits in a w×h rectangle within timeout,
// returning the decoded placements and belt segments on StatusSat.
func Attempt(ctx context.Context, g *graph.ProductionGraph, w, h int, timeout time.Duration) (model.Status, []model.PlacedBuilding, []model.BeltSegment, error) {
	enc := build(g, w, h)
	status, assignment := boolmodel.Check(ctx, enc.builder.Build(), timeout)

	switch status {
	case boolmodel.StatusSat:
		placements, segments := enc.extract(assignment)
		return model.StatusSat, placements, segments, nil
	case boolmodel.StatusUnsat:
		return model.StatusUnsat, nil, nil, nil
	default:
		return model.StatusUnknown, nil, nil, nil
	}
}
