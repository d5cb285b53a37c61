package tilegrid

import (
	"github.com/beltlayout/engine/internal/boolmodel"
	"github.com/beltlayout/engine/pkg/catalog"
	"github.com/beltlayout/engine/pkg/graph"
)

// anchor is a candidate top-left grid position for a node's footprint.
type anchor struct {
	x, y int
}

// nodePlacement holds, for one node, its anchor variables and the
// footprint dimensions used to derive them.
type nodePlacement struct {
	nodeID      string
	long, short int
	anchorVar   map[anchor]boolmodel.Var
	anchorOrder []anchor
}

// cellsCovered returns the grid cells a's footprint would occupy.
func (p *nodePlacement) cellsCovered(a anchor) []anchor {
	cells := make([]anchor, 0, p.long*p.short)
	for dy := 0; dy < p.short; dy++ {
		for dx := 0; dx < p.long; dx++ {
			cells = append(cells, anchor{x: a.x + dx, y: a.y + dy})
		}
	}
	return cells
}

// outputCells returns the port-adjacent cells directly below a's
// footprint (bottom-output convention), omitted where they would fall
// outside the grid.
func (p *nodePlacement) outputCells(a anchor, gr *grid) []anchor {
	y := a.y + p.short
	return portRow(a.x, p.long, y, gr)
}

// inputCells returns the port-adjacent cells directly above a's
// footprint (top-input convention), omitted where they would fall
// outside the grid.
func (p *nodePlacement) inputCells(a anchor, gr *grid) []anchor {
	y := a.y - 1
	return portRow(a.x, p.long, y, gr)
}

func portRow(x0, long, y int, gr *grid) []anchor {
	if y < 0 || y >= gr.h {
		return nil
	}
	cells := make([]anchor, 0, long)
	for dx := 0; dx < long; dx++ {
		x := x0 + dx
		if x >= 0 && x < gr.w {
			cells = append(cells, anchor{x: x, y: y})
		}
	}
	return cells
}

// buildPlacements allocates one anchor variable per valid top-left
// position of every node's footprint, asserts exactly one anchor holds
// per node, wires footprint-coverage (constraint 4) and no-machine-
// adjacency (constraint 5).
func buildPlacements(b *boolmodel.Builder, g *graph.ProductionGraph, gr *grid) map[string]*nodePlacement {
	placements := make(map[string]*nodePlacement, len(g.Nodes))

	for _, n := range g.Nodes {
		long, short := catalog.Footprint(n.Kind)
		p := &nodePlacement{nodeID: n.ID, long: long, short: short, anchorVar: map[anchor]boolmodel.Var{}}
		for y := 0; y+short <= gr.h; y++ {
			for x := 0; x+long <= gr.w; x++ {
				a := anchor{x: x, y: y}
				p.anchorVar[a] = b.NewVar()
				p.anchorOrder = append(p.anchorOrder, a)
			}
		}
		placements[n.ID] = p

		lits := make([]int, len(p.anchorOrder))
		for i, a := range p.anchorOrder {
			lits[i] = boolmodel.Pos(p.anchorVar[a])
		}
		b.ExactlyOne(lits)

		// coveringAnchors[cell] collects every anchor whose footprint
		// covers that cell, so the reverse clause below can be built
		// per cell rather than per anchor.
		coveringAnchors := make(map[anchor][]boolmodel.Var)
		for _, a := range p.anchorOrder {
			av := p.anchorVar[a]
			for _, cell := range p.cellsCovered(a) {
				owned := gr.at(cell.x, cell.y).ownedBy[n.ID]
				b.Implies(boolmodel.Pos(av), boolmodel.Pos(owned))
				coveringAnchors[cell] = append(coveringAnchors[cell], av)
			}
		}

		// Reverse half of constraint 4: a cell owned by n must be
		// covered by n's chosen anchor. Cells no anchor can ever cover
		// simply forbid ownership outright.
		for y := 0; y < gr.h; y++ {
			for x := 0; x < gr.w; x++ {
				cell := anchor{x: x, y: y}
				owned := gr.at(x, y).ownedBy[n.ID]
				anchors := coveringAnchors[cell]
				if len(anchors) == 0 {
					b.Clause(boolmodel.Neg(owned))
					continue
				}
				clause := make([]int, 0, len(anchors)+1)
				clause = append(clause, boolmodel.Neg(owned))
				for _, av := range anchors {
					clause = append(clause, boolmodel.Pos(av))
				}
				b.Clause(clause...)
			}
		}
	}

	wireNoAdjacency(b, g, gr)
	return placements
}

// wireNoAdjacency encodes constraint 5: no two distinct machines' cells
// may be orthogonally adjacent. Encoded directly over ownership
// variables rather than anchors, since it must hold for every pair of
// neighboring cells regardless of which anchors produced their owners.
func wireNoAdjacency(b *boolmodel.Builder, g *graph.ProductionGraph, gr *grid) {
	if len(g.Nodes) < 2 {
		return
	}
	for y := 0; y < gr.h; y++ {
		for x := 0; x < gr.w; x++ {
			c := gr.at(x, y)
			neighbors := [][2]int{{x + 1, y}, {x, y + 1}}
			for _, nb := range neighbors {
				nx, ny := nb[0], nb[1]
				if !gr.inBounds(nx, ny) {
					continue
				}
				nc := gr.at(nx, ny)
				for i, ni := range g.Nodes {
					for j, nj := range g.Nodes {
						if j <= i {
							continue
						}
						b.Clause(
							boolmodel.Neg(c.ownedBy[ni.ID]),
							boolmodel.Neg(nc.ownedBy[nj.ID]),
						)
						b.Clause(
							boolmodel.Neg(c.ownedBy[nj.ID]),
							boolmodel.Neg(nc.ownedBy[ni.ID]),
						)
					}
				}
			}
		}
	}
}
