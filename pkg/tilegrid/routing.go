package tilegrid

import (
	"fmt"

	"github.com/beltlayout/engine/internal/boolmodel"
	"github.com/beltlayout/engine/pkg/graph"
	"github.com/beltlayout/engine/pkg/model"
)

// edgeRoute holds the per-cell flow variables tracing one material
// edge's belt path (one instance per parallel belt unit: an edge with
// Belts=3 gets three independent edgeRoutes, each routed as its own
// path).
type edgeRoute struct {
	id             string
	fromNode       string
	toNode         string
	enter, exit    [][4]boolmodel.Var // per cell index
	use, vert      []boolmodel.Var
	horiz          []boolmodel.Var
	src, snk       []boolmodel.Var
}

// wireBeltAdjacency encodes constraint 6 (belt-to-belt direction
// coherence), generalized so a conveyor or bridge facing directly into
// a machine cell also satisfies it: the machine side of a port is
// handled by the per-edge source/sink wiring in buildRoutes, not by an
// Out/In variable on the machine cell itself (machines carry none).
func wireBeltAdjacency(b *boolmodel.Builder, gr *grid) {
	for y := 0; y < gr.h; y++ {
		for x := 0; x < gr.w; x++ {
			c := gr.at(x, y)
			for _, d := range model.AllDirections {
				nx, ny, ok := gr.neighbor(x, y, d)
				if !ok {
					// An active direction pointing off the grid is
					// never valid.
					b.Clause(boolmodel.Neg(c.out[d]))
					b.Clause(boolmodel.Neg(c.in[d]))
					continue
				}
				nc := gr.at(nx, ny)
				// Out[d](c) ⇒ neighbor is a matching belt/bridge cell
				// or a machine cell (port boundary).
				b.Clause(boolmodel.Neg(c.out[d]), boolmodel.Pos(nc.in[d.Opposite()]), boolmodel.Pos(nc.isMachine))
				b.Clause(boolmodel.Neg(c.in[d]), boolmodel.Pos(nc.out[d.Opposite()]), boolmodel.Pos(nc.isMachine))
			}
		}
	}
}

// buildRoutes allocates routing variables for every material edge
// instance and wires constraints 8 (edge realization, folding in the
// port-capability requirement of constraint 7) and 9 (no degenerate
// single-axis bridge use).
func buildRoutes(b *boolmodel.Builder, g *graph.ProductionGraph, gr *grid, placements map[string]*nodePlacement) []*edgeRoute {
	wireBeltAdjacency(b, gr)

	var routes []*edgeRoute
	for _, e := range g.Edges {
		n := e.Belts
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			id := e.ID
			if n > 1 {
				id = fmt.Sprintf("%s#%d", e.ID, i)
			}
			routes = append(routes, newEdgeRoute(b, gr, id, e.FromID, e.ToID))
		}
	}

	for _, r := range routes {
		wireEdgeRoute(b, gr, r, placements)
	}
	wireBridgeAxisSharing(b, gr, routes)
	wireConveyorSingleOccupant(b, gr, routes)
	wireNoSpuriousBelts(b, gr, routes)

	return routes
}

// wireNoSpuriousBelts forbids a cell from being typed conveyor or
// bridge unless some edge instance actually routes through it. Without
// this, a satisfying assignment is free to invent decorative belt
// tiles nothing ever uses, which would violate the boundary behavior
// "a node with no edges produces no segments" (and, with zero edges at
// all, "empty graph ⇒ empty segments").
func wireNoSpuriousBelts(b *boolmodel.Builder, gr *grid, routes []*edgeRoute) {
	n := gr.w * gr.h
	for i := 0; i < n; i++ {
		c := &gr.cells[i]
		if len(routes) == 0 {
			b.Clause(boolmodel.Neg(c.isConveyor))
			b.Clause(boolmodel.Neg(c.isBridge))
			continue
		}
		users := make([]int, len(routes))
		for k, r := range routes {
			users[k] = boolmodel.Pos(r.use[i])
		}
		conveyorClause := append([]int{boolmodel.Neg(c.isConveyor)}, users...)
		bridgeClause := append([]int{boolmodel.Neg(c.isBridge)}, users...)
		b.Clause(conveyorClause...)
		b.Clause(bridgeClause...)
	}
}

func newEdgeRoute(b *boolmodel.Builder, gr *grid, id, from, to string) *edgeRoute {
	n := gr.w * gr.h
	r := &edgeRoute{
		id:       id,
		fromNode: from,
		toNode:   to,
		enter:    make([][4]boolmodel.Var, n),
		exit:     make([][4]boolmodel.Var, n),
		use:      make([]boolmodel.Var, n),
		vert:     make([]boolmodel.Var, n),
		horiz:    make([]boolmodel.Var, n),
		src:      make([]boolmodel.Var, n),
		snk:      make([]boolmodel.Var, n),
	}
	for i := 0; i < n; i++ {
		for _, d := range model.AllDirections {
			r.enter[i][d] = b.NewVar()
			r.exit[i][d] = b.NewVar()
		}
		r.use[i] = b.NewVar()
		r.vert[i] = b.NewVar()
		r.horiz[i] = b.NewVar()
		r.src[i] = b.NewVar()
		r.snk[i] = b.NewVar()
	}
	return r
}

func (r *edgeRoute) idx(gr *grid, x, y int) int { return y*gr.w + x }

// wireEdgeRoute ties one edge instance's routing variables to the
// grid's type/direction variables and to each other, realizing a single
// connected path of at least 3 cells from a source-node output port to
// a destination-node input port (spec §4.4 constraint 8, with the
// port-capability requirement of constraint 7 folded in: a node with no
// edges touching one of its faces forces no belt to exist there).
func wireEdgeRoute(b *boolmodel.Builder, gr *grid, r *edgeRoute, placements map[string]*nodePlacement) {
	srcPlacement := placements[r.fromNode]
	dstPlacement := placements[r.toNode]

	var srcCandidates, snkCandidates []int

	for y := 0; y < gr.h; y++ {
		for x := 0; x < gr.w; x++ {
			i := r.idx(gr, x, y)
			c := gr.at(x, y)

			enterLits := make([]int, 4)
			exitLits := make([]int, 4)
			for _, d := range model.AllDirections {
				enterLits[d] = boolmodel.Pos(r.enter[i][d])
				exitLits[d] = boolmodel.Pos(r.exit[i][d])
				// enter[d] is velocity-indexed (the direction of travel
				// into this cell); c.in is face-indexed (the side flow
				// arrives from), the opposite face of that travel.
				b.Implies(boolmodel.Pos(r.enter[i][d]), boolmodel.Pos(c.in[d.Opposite()]))
				b.Implies(boolmodel.Pos(r.exit[i][d]), boolmodel.Pos(c.out[d]))
			}
			b.AtMostOne(enterLits)
			b.AtMostOne(exitLits)

			// use ⇔ (some enter ∨ some exit)
			b.ImpliesAny(boolmodel.Pos(r.use[i]), append(append([]int{}, enterLits...), exitLits...)...)
			for _, lit := range enterLits {
				b.Implies(lit, boolmodel.Pos(r.use[i]))
			}
			for _, lit := range exitLits {
				b.Implies(lit, boolmodel.Pos(r.use[i]))
			}
			b.Clause(boolmodel.Neg(r.use[i]), boolmodel.Pos(c.isConveyor), boolmodel.Pos(c.isBridge))

			// vert/horiz ⇔ the axis the enter/exit literals touch.
			vertLits := []int{enterLits[model.Up], enterLits[model.Down], exitLits[model.Up], exitLits[model.Down]}
			horizLits := []int{enterLits[model.Left], enterLits[model.Right], exitLits[model.Left], exitLits[model.Right]}
			b.ImpliesAny(boolmodel.Pos(r.vert[i]), vertLits...)
			for _, lit := range vertLits {
				b.Implies(lit, boolmodel.Pos(r.vert[i]))
			}
			b.ImpliesAny(boolmodel.Pos(r.horiz[i]), horizLits...)
			for _, lit := range horizLits {
				b.Implies(lit, boolmodel.Pos(r.horiz[i]))
			}

			// src/snk bookkeeping: a source cell has some exit, no
			// enter; a sink cell has some enter, no exit; neither may
			// hold on the same cell at once.
			b.ImpliesAny(boolmodel.Pos(r.src[i]), exitLits...)
			b.ImpliesAny(boolmodel.Pos(r.snk[i]), enterLits...)
			for _, d := range model.AllDirections {
				b.Implies(boolmodel.Pos(r.src[i]), boolmodel.Neg(r.enter[i][d]))
				b.Implies(boolmodel.Pos(r.snk[i]), boolmodel.Neg(r.exit[i][d]))
			}
			b.Clause(boolmodel.Neg(r.src[i]), boolmodel.Neg(r.snk[i]))
			b.Clause(append([]int{boolmodel.Neg(r.use[i]), boolmodel.Pos(r.src[i])}, enterLits...)...)
			b.Clause(append([]int{boolmodel.Neg(r.use[i]), boolmodel.Pos(r.snk[i])}, exitLits...)...)

			// A non-source cell using the edge must have exactly one
			// enter; a non-sink cell using it must have exactly one
			// exit; chain continuity links each to its neighbor.
			for _, d := range model.AllDirections {
				px, py, ok := gr.neighbor(x, y, d.Opposite())
				if !ok {
					b.Clause(boolmodel.Neg(r.enter[i][d]))
				} else {
					pIdx := r.idx(gr, px, py)
					b.Implies(boolmodel.Pos(r.enter[i][d]), boolmodel.Pos(r.exit[pIdx][d]))
				}
				sx, sy, ok2 := gr.neighbor(x, y, d)
				if !ok2 {
					b.Clause(boolmodel.Neg(r.exit[i][d]))
				} else {
					sIdx := r.idx(gr, sx, sy)
					b.Implies(boolmodel.Pos(r.exit[i][d]), boolmodel.Pos(r.enter[sIdx][d]))
				}
			}
		}
	}

	// Source cells are restricted to output-adjacent cells of fromNode,
	// with their In fixed to "up" (material falls out of the machine
	// above); a source cell's candidacy is gated on the anchor that
	// makes it output-adjacent actually being chosen.
	for y := 0; y < gr.h; y++ {
		for x := 0; x < gr.w; x++ {
			i := r.idx(gr, x, y)
			covering := anchorsMakingOutputCell(srcPlacement, gr, x, y)
			if len(covering) == 0 {
				b.Clause(boolmodel.Neg(r.src[i]))
				continue
			}
			srcCandidates = append(srcCandidates, i)
			lits := make([]int, len(covering))
			for k, av := range covering {
				lits[k] = boolmodel.Pos(av)
			}
			clause := append([]int{boolmodel.Neg(r.src[i])}, lits...)
			b.Clause(clause...)
			b.Implies(boolmodel.Pos(r.src[i]), boolmodel.Pos(gr.at(x, y).in[model.Up]))
		}
	}

	for y := 0; y < gr.h; y++ {
		for x := 0; x < gr.w; x++ {
			i := r.idx(gr, x, y)
			covering := anchorsMakingInputCell(dstPlacement, gr, x, y)
			if len(covering) == 0 {
				b.Clause(boolmodel.Neg(r.snk[i]))
				continue
			}
			snkCandidates = append(snkCandidates, i)
			lits := make([]int, len(covering))
			for k, av := range covering {
				lits[k] = boolmodel.Pos(av)
			}
			clause := append([]int{boolmodel.Neg(r.snk[i])}, lits...)
			b.Clause(clause...)
			b.Implies(boolmodel.Pos(r.snk[i]), boolmodel.Pos(gr.at(x, y).out[model.Down]))
		}
	}

	srcLits := make([]int, len(srcCandidates))
	for k, i := range srcCandidates {
		srcLits[k] = boolmodel.Pos(r.src[i])
	}
	b.ExactlyOne(srcLits)

	snkLits := make([]int, len(snkCandidates))
	for k, i := range snkCandidates {
		snkLits[k] = boolmodel.Pos(r.snk[i])
	}
	b.ExactlyOne(snkLits)

	// Path length ≥ 3: a source and a sink may never sit on
	// orthogonally adjacent cells, which would collapse the path to a
	// single belt hop.
	for _, si := range srcCandidates {
		sx, sy := si%gr.w, si/gr.w
		for _, d := range model.AllDirections {
			nx, ny, ok := gr.neighbor(sx, sy, d)
			if !ok {
				continue
			}
			ni := r.idx(gr, nx, ny)
			b.Clause(boolmodel.Neg(r.src[si]), boolmodel.Neg(r.snk[ni]))
		}
	}
}

func anchorsMakingOutputCell(p *nodePlacement, gr *grid, x, y int) []boolmodel.Var {
	var vars []boolmodel.Var
	for _, a := range p.anchorOrder {
		for _, cell := range p.outputCells(a, gr) {
			if cell.x == x && cell.y == y {
				vars = append(vars, p.anchorVar[a])
				break
			}
		}
	}
	return vars
}

func anchorsMakingInputCell(p *nodePlacement, gr *grid, x, y int) []boolmodel.Var {
	var vars []boolmodel.Var
	for _, a := range p.anchorOrder {
		for _, cell := range p.inputCells(a, gr) {
			if cell.x == x && cell.y == y {
				vars = append(vars, p.anchorVar[a])
				break
			}
		}
	}
	return vars
}

// wireBridgeAxisSharing forbids two edge instances from sharing the
// same axis of the same bridge cell (each axis carries at most one
// edge) and forbids a degenerate bridge whose chosen routes never
// actually use one of its two axes.
func wireBridgeAxisSharing(b *boolmodel.Builder, gr *grid, routes []*edgeRoute) {
	n := gr.w * gr.h
	for i := 0; i < n; i++ {
		c := &gr.cells[i]

		var vertUsers, horizUsers []int
		for _, r := range routes {
			vertUsers = append(vertUsers, boolmodel.Pos(r.vert[i]))
			horizUsers = append(horizUsers, boolmodel.Pos(r.horiz[i]))
		}
		for a := 0; a < len(routes); a++ {
			for bIdx := a + 1; bIdx < len(routes); bIdx++ {
				b.Clause(boolmodel.Neg(routes[a].vert[i]), boolmodel.Neg(routes[bIdx].vert[i]))
				b.Clause(boolmodel.Neg(routes[a].horiz[i]), boolmodel.Neg(routes[bIdx].horiz[i]))
			}
		}
		// Non-degeneration: a bridge cell's vertical and horizontal
		// axes must both be in use by some edge instance.
		vertClause := append([]int{boolmodel.Neg(c.isBridge)}, vertUsers...)
		horizClause := append([]int{boolmodel.Neg(c.isBridge)}, horizUsers...)
		b.Clause(vertClause...)
		b.Clause(horizClause...)
	}
}

// wireConveyorSingleOccupant forbids two edge instances from sharing a
// conveyor cell (only a bridge cell carries more than one edge).
func wireConveyorSingleOccupant(b *boolmodel.Builder, gr *grid, routes []*edgeRoute) {
	n := gr.w * gr.h
	for i := 0; i < n; i++ {
		c := &gr.cells[i]
		for a := 0; a < len(routes); a++ {
			for bIdx := a + 1; bIdx < len(routes); bIdx++ {
				b.Clause(boolmodel.Neg(c.isConveyor), boolmodel.Neg(routes[a].use[i]), boolmodel.Neg(routes[bIdx].use[i]))
			}
		}
	}
}
