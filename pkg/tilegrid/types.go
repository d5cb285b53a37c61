package tilegrid

import (
	"github.com/beltlayout/engine/internal/boolmodel"
	"github.com/beltlayout/engine/pkg/model"
)

// cellVars holds every Boolean variable attached to one grid cell: its
// type (exactly one of empty/conveyor/bridge/machine), which node's
// footprint owns it (when machine), and its belt input/output direction
// (when conveyor or bridge).
type cellVars struct {
	isEmpty    boolmodel.Var
	isConveyor boolmodel.Var
	isBridge   boolmodel.Var
	isMachine  boolmodel.Var
	ownedBy    map[string]boolmodel.Var // nodeID -> "this cell is in nodeID's footprint"
	in, out    [4]boolmodel.Var         // indexed by model.Direction
}

// grid is the W×H array of cellVars for one trial rectangle.
type grid struct {
	w, h  int
	cells []cellVars
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, cells: make([]cellVars, w*h)}
}

func (g *grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *grid) at(x, y int) *cellVars {
	return &g.cells[y*g.w+x]
}

func (g *grid) neighbor(x, y int, d model.Direction) (int, int, bool) {
	dx, dy := d.Delta()
	nx, ny := x+dx, y+dy
	return nx, ny, g.inBounds(nx, ny)
}
