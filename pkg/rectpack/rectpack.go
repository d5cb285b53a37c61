package rectpack

import (
	"context"
	"time"

	"github.com/beltlayout/engine/pkg/catalog"
	"github.com/beltlayout/engine/pkg/graph"
	"github.com/beltlayout/engine/pkg/model"
)

type box struct {
	x, y, w, h int
}

func overlaps(a, b box) bool {
	return a.x < b.x+b.w && b.x < a.x+a.w && a.y < b.y+b.h && b.y < a.y+a.h
}

// orthogonallyAdjacent reports whether a and b, while not overlapping,
// share a grid edge (spec constraint 5's "no direct adjacency";
// corner-touching is not adjacency).
func orthogonallyAdjacent(a, b box) bool {
	xOverlap := a.x < b.x+b.w && b.x < a.x+a.w
	yOverlap := a.y < b.y+b.h && b.y < a.y+a.h
	vertical := xOverlap && (a.y+a.h == b.y || b.y+b.h == a.y)
	horizontal := yOverlap && (a.x+a.w == b.x || b.x+b.w == a.x)
	return vertical || horizontal
}

func conflicts(candidate box, placed []box) bool {
	for _, p := range placed {
		if overlaps(candidate, p) || orthogonallyAdjacent(candidate, p) {
			return true
		}
	}
	return false
}

type searchDeadline struct {
	ctx      context.Context
	deadline time.Time
}

func (d searchDeadline) expired() bool {
	if d.ctx.Err() != nil {
		return true
	}
	return time.Now().After(d.deadline)
}

// backtrack tries to place nodes[idx:] given the already-placed boxes,
// in row-major anchor order. Returns (placed, timedOut).
func backtrack(d searchDeadline, w, h int, nodes []graph.MachineNode, idx int, placed []box, result []box) (bool, bool) {
	if idx == len(nodes) {
		return true, false
	}
	if d.expired() {
		return false, true
	}

	long, short := catalog.Footprint(nodes[idx].Kind)
	for y := 0; y+short <= h; y++ {
		for x := 0; x+long <= w; x++ {
			if d.expired() {
				return false, true
			}
			candidate := box{x: x, y: y, w: long, h: short}
			if conflicts(candidate, placed) {
				continue
			}
			placed = append(placed, candidate)
			result[idx] = candidate
			ok, timedOut := backtrack(d, w, h, nodes, idx+1, placed, result)
			if timedOut {
				return false, true
			}
			if ok {
				return true, false
			}
			placed = placed[:len(placed)-1]
		}
	}
	return false, false
}

// Attempt checks whether g's nodes can be packed into a w×h rectangle
// within timeout using pairwise non-overlap plus a no-shared-edge rule.
// It never produces belt segments: this encoding has no notion of belt
// tiles or routing.
func Attempt(ctx context.Context, g *graph.ProductionGraph, w, h int, timeout time.Duration) (model.Status, []model.PlacedBuilding, []model.BeltSegment, error) {
	d := searchDeadline{ctx: ctx, deadline: time.Now().Add(timeout)}
	result := make([]box, len(g.Nodes))

	ok, timedOut := backtrack(d, w, h, g.Nodes, 0, make([]box, 0, len(g.Nodes)), result)
	if timedOut {
		return model.StatusUnknown, nil, nil, nil
	}
	if !ok {
		return model.StatusUnsat, nil, nil, nil
	}

	placements := make([]model.PlacedBuilding, len(g.Nodes))
	for i, n := range g.Nodes {
		placements[i] = model.PlacedBuilding{
			NodeID: n.ID,
			X:      result[i].x,
			Y:      result[i].y,
			W:      result[i].w,
			H:      result[i].h,
		}
	}
	return model.StatusSat, placements, nil, nil
}
