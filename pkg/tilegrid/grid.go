package tilegrid

import (
	"github.com/beltlayout/engine/internal/boolmodel"
	"github.com/beltlayout/engine/pkg/graph"
	"github.com/beltlayout/engine/pkg/model"
)

// allocateCells creates one cellVars per grid position and wires the
// type-exclusivity and direction-gating constraints (spec §4.4
// constraints 1 and 3). Machine-identity variables (constraint 2) are
// allocated here too, since they share the per-cell type-exclusivity
// clause, but their footprint-coherence wiring happens in footprint.go.
func allocateCells(b *boolmodel.Builder, g *graph.ProductionGraph, gr *grid) {
	nodeIDs := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		nodeIDs[i] = n.ID
	}

	for y := 0; y < gr.h; y++ {
		for x := 0; x < gr.w; x++ {
			c := gr.at(x, y)
			c.isEmpty = b.NewVar()
			c.isConveyor = b.NewVar()
			c.isBridge = b.NewVar()
			c.isMachine = b.NewVar()
			c.ownedBy = make(map[string]boolmodel.Var, len(nodeIDs))
			for _, id := range nodeIDs {
				c.ownedBy[id] = b.NewVar()
			}
			for _, d := range model.AllDirections {
				c.in[d] = b.NewVar()
				c.out[d] = b.NewVar()
			}

			wireCellTypeExclusivity(b, c)
			wireDirectionGating(b, c)
			wireOwnershipCoherence(b, c)
		}
	}
}

// wireCellTypeExclusivity encodes constraint 1: exactly one of
// empty/conveyor/bridge/machine holds per cell.
func wireCellTypeExclusivity(b *boolmodel.Builder, c *cellVars) {
	b.ExactlyOne([]int{
		boolmodel.Pos(c.isEmpty),
		boolmodel.Pos(c.isConveyor),
		boolmodel.Pos(c.isBridge),
		boolmodel.Pos(c.isMachine),
	})
}

// wireOwnershipCoherence encodes constraint 2: isMachine holds exactly
// when some single node owns the cell.
func wireOwnershipCoherence(b *boolmodel.Builder, c *cellVars) {
	owners := make([]int, 0, len(c.ownedBy))
	for _, v := range c.ownedBy {
		owners = append(owners, boolmodel.Pos(v))
		b.Implies(boolmodel.Pos(v), boolmodel.Pos(c.isMachine))
	}
	b.ImpliesAny(boolmodel.Pos(c.isMachine), owners...)
	b.AtMostOne(owners)
}

// wireDirectionGating encodes constraint 3: non-routable cells (empty,
// machine) carry no direction literals; conveyor cells have exactly one
// active input direction and exactly one active output direction, and
// never echo the same direction back the way it came; bridge cells
// carry two independent straight-through pairs, one per axis.
func wireDirectionGating(b *boolmodel.Builder, c *cellVars) {
	notRoutable := []boolmodel.Var{c.isEmpty, c.isMachine}
	for _, nr := range notRoutable {
		for _, d := range model.AllDirections {
			b.Implies(boolmodel.Pos(nr), boolmodel.Neg(c.in[d]))
			b.Implies(boolmodel.Pos(nr), boolmodel.Neg(c.out[d]))
		}
	}

	inLits := litsOf(c.in[:])
	outLits := litsOf(c.out[:])

	// Conveyor: exactly one in, exactly one out, never the same axis
	// bounced straight back.
	condAtMostOneIf(b, c.isConveyor, inLits)
	condAtLeastOneIf(b, c.isConveyor, inLits)
	condAtMostOneIf(b, c.isConveyor, outLits)
	condAtLeastOneIf(b, c.isConveyor, outLits)
	for _, d := range model.AllDirections {
		b.Clause(boolmodel.Neg(c.isConveyor), boolmodel.Neg(c.in[d]), boolmodel.Neg(c.out[d]))
	}

	// Bridge: vertical pair is a straight through-pass, horizontal pair
	// is an independent straight through-pass; a degenerate bridge that
	// only ever uses one axis is ruled out downstream once routing
	// variables are wired (see routing.go), not here.
	up, down, left, right := c.in[model.Up], c.in[model.Down], c.in[model.Left], c.in[model.Right]
	oup, odown, oleft, oright := c.out[model.Up], c.out[model.Down], c.out[model.Left], c.out[model.Right]

	condAtMostOneIf(b, c.isBridge, []int{boolmodel.Pos(up), boolmodel.Pos(down)})
	condAtLeastOneIf(b, c.isBridge, []int{boolmodel.Pos(up), boolmodel.Pos(down)})
	condAtMostOneIf(b, c.isBridge, []int{boolmodel.Pos(left), boolmodel.Pos(right)})
	condAtLeastOneIf(b, c.isBridge, []int{boolmodel.Pos(left), boolmodel.Pos(right)})
	condAtMostOneIf(b, c.isBridge, []int{boolmodel.Pos(oup), boolmodel.Pos(odown)})
	condAtLeastOneIf(b, c.isBridge, []int{boolmodel.Pos(oup), boolmodel.Pos(odown)})
	condAtMostOneIf(b, c.isBridge, []int{boolmodel.Pos(oleft), boolmodel.Pos(oright)})
	condAtLeastOneIf(b, c.isBridge, []int{boolmodel.Pos(oleft), boolmodel.Pos(oright)})

	// Each axis passes straight through: in from one side forces out on
	// the far side of the same axis, never back out the side it came
	// from, and the bridge never mixes axes in its in/out selection
	// (e.g. in=up paired with out=left is rejected by requiring the
	// horizontal in/out pair stay independent of the vertical choice).
	b.Clause(boolmodel.Neg(c.isBridge), boolmodel.Neg(up), boolmodel.Pos(odown))
	b.Clause(boolmodel.Neg(c.isBridge), boolmodel.Neg(down), boolmodel.Pos(oup))
	b.Clause(boolmodel.Neg(c.isBridge), boolmodel.Neg(left), boolmodel.Pos(oright))
	b.Clause(boolmodel.Neg(c.isBridge), boolmodel.Neg(right), boolmodel.Pos(oleft))
}

func litsOf(vars []boolmodel.Var) []int {
	lits := make([]int, len(vars))
	for i, v := range vars {
		lits[i] = boolmodel.Pos(v)
	}
	return lits
}

// condAtMostOneIf asserts: if cond holds, at most one of lits holds.
// Encoded as pairwise clauses (¬cond ∨ ¬li ∨ ¬lj) since the builder's
// cardinality constraints are unconditional.
func condAtMostOneIf(b *boolmodel.Builder, cond boolmodel.Var, lits []int) {
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			b.Clause(boolmodel.Neg(cond), -lits[i], -lits[j])
		}
	}
}

// condAtLeastOneIf asserts: if cond holds, at least one of lits holds.
func condAtLeastOneIf(b *boolmodel.Builder, cond boolmodel.Var, lits []int) {
	clause := make([]int, 0, len(lits)+1)
	clause = append(clause, boolmodel.Neg(cond))
	clause = append(clause, lits...)
	b.Clause(clause...)
}
