package verify

import (
	"fmt"

	"github.com/beltlayout/engine/pkg/graph"
	"github.com/beltlayout/engine/pkg/model"
)

// rect is the axis-aligned footprint of one placement, used for the
// overlap and adjacency geometry checks.
type rect struct {
	x, y, w, h int
}

func rectOf(p model.PlacedBuilding) rect {
	return rect{x: p.X, y: p.Y, w: p.W, h: p.H}
}

func overlaps(a, b rect) bool {
	return a.x < b.x+b.w && b.x < a.x+a.w && a.y < b.y+b.h && b.y < a.y+a.h
}

// orthogonallyAdjacent reports whether a and b share a grid edge without
// overlapping — corner touches do not count.
func orthogonallyAdjacent(a, b rect) bool {
	if overlaps(a, b) {
		return false
	}
	horizontalNeighbor := a.y < b.y+b.h && b.y < a.y+a.h && (a.x+a.w == b.x || b.x+b.w == a.x)
	verticalNeighbor := a.x < b.x+b.w && b.x < a.x+a.w && (a.y+a.h == b.y || b.y+b.h == a.y)
	return horizontalNeighbor || verticalNeighbor
}

// CheckNonOverlap verifies placements are pairwise disjoint rectangles.
func CheckNonOverlap(placements []model.PlacedBuilding) CheckResult {
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			if overlaps(rectOf(placements[i]), rectOf(placements[j])) {
				return NewResult("NonOverlap", false, fmt.Sprintf(
					"placements %q and %q overlap", placements[i].NodeID, placements[j].NodeID))
			}
		}
	}
	return NewResult("NonOverlap", true, "")
}

// CheckNoAdjacency verifies no two cells belonging to distinct nodes
// share a grid edge.
func CheckNoAdjacency(placements []model.PlacedBuilding) CheckResult {
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			if orthogonallyAdjacent(rectOf(placements[i]), rectOf(placements[j])) {
				return NewResult("NoAdjacency", false, fmt.Sprintf(
					"placements %q and %q are directly adjacent", placements[i].NodeID, placements[j].NodeID))
			}
		}
	}
	return NewResult("NoAdjacency", true, "")
}

// CheckContainment verifies every placement lies fully within bounds.
func CheckContainment(placements []model.PlacedBuilding, bounds model.Bounds) CheckResult {
	for _, p := range placements {
		if p.X < 0 || p.Y < 0 || p.X+p.W > bounds.Width || p.Y+p.H > bounds.Height {
			return NewResult("Containment", false, fmt.Sprintf(
				"placement %q at (%d,%d)+(%d,%d) exceeds bounds %dx%d",
				p.NodeID, p.X, p.Y, p.W, p.H, bounds.Width, bounds.Height))
		}
	}
	return NewResult("Containment", true, "")
}

type cellKey struct{ x, y int }

// segmentIndex answers belt/adjacency queries by cell.
type segmentIndex map[cellKey]model.BeltSegment

func indexSegments(segments []model.BeltSegment) segmentIndex {
	idx := make(segmentIndex, len(segments))
	for _, s := range segments {
		idx[cellKey{s.X, s.Y}] = s
	}
	return idx
}

// inputFaceCells returns the belt-grid cells directly above p's
// footprint, per the top-input port convention (SPEC_FULL.md §9a).
func inputFaceCells(p model.PlacedBuilding) map[cellKey]bool {
	cells := make(map[cellKey]bool, p.W)
	for dx := 0; dx < p.W; dx++ {
		cells[cellKey{p.X + dx, p.Y - 1}] = true
	}
	return cells
}

// outputFaceCells returns the belt-grid cells directly below p's
// footprint, per the bottom-output port convention.
func outputFaceCells(p model.PlacedBuilding) map[cellKey]bool {
	cells := make(map[cellKey]bool, p.W)
	for dx := 0; dx < p.W; dx++ {
		cells[cellKey{p.X + dx, p.Y + p.H}] = true
	}
	return cells
}

func anyInputFace(placements []model.PlacedBuilding, c cellKey) bool {
	for _, p := range placements {
		if inputFaceCells(p)[c] {
			return true
		}
	}
	return false
}

// CheckBeltCoherence verifies that every segment's outDir leads either
// into another segment whose inDir is the opposite direction, into an
// input-face cell of some placement, or, for a segment that itself sits
// on a placement's input face, into that placement's footprint.
func CheckBeltCoherence(segments []model.BeltSegment, placements []model.PlacedBuilding) CheckResult {
	idx := indexSegments(segments)
	for _, s := range segments {
		dx, dy := s.OutDir.Delta()
		next := cellKey{s.X + dx, s.Y + dy}

		if nseg, ok := idx[next]; ok {
			if nseg.InDir != s.OutDir.Opposite() {
				return NewResult("BeltCoherence", false, fmt.Sprintf(
					"segment (%d,%d) outDir=%s leads into segment (%d,%d) with inDir=%s, expected %s",
					s.X, s.Y, s.OutDir, nseg.X, nseg.Y, nseg.InDir, s.OutDir.Opposite()))
			}
			continue
		}
		if anyInputFace(placements, next) {
			continue
		}
		feedsPort := false
		for _, p := range placements {
			if inputFaceCells(p)[cellKey{s.X, s.Y}] && overlaps(rectOf(p), rect{x: next.x, y: next.y, w: 1, h: 1}) {
				feedsPort = true
				break
			}
		}
		if feedsPort {
			continue
		}
		return NewResult("BeltCoherence", false, fmt.Sprintf(
			"segment (%d,%d) outDir=%s leads into cell (%d,%d), which is neither a belt nor an input face",
			s.X, s.Y, s.OutDir, next.x, next.y))
	}
	return NewResult("BeltCoherence", true, "")
}

// CheckEdgeRealization verifies that, for every material edge, a
// connected chain of segments runs from an output-face cell of the
// source node to an input-face cell of the destination node. The
// segments of all units of a multi-belt edge are pooled and one chain is
// walked per edge; the units are not checked one by one.
func CheckEdgeRealization(g *graph.ProductionGraph, placements []model.PlacedBuilding, segments []model.BeltSegment) CheckResult {
	placementByID := make(map[string]model.PlacedBuilding, len(placements))
	for _, p := range placements {
		placementByID[p.NodeID] = p
	}

	segmentsByEdge := make(map[string][]model.BeltSegment)
	for _, s := range segments {
		if s.EdgeID == "" {
			continue
		}
		segmentsByEdge[edgeGroupKey(s.EdgeID)] = append(segmentsByEdge[edgeGroupKey(s.EdgeID)], s)
	}

	for _, e := range g.Edges {
		from, ok := placementByID[e.FromID]
		if !ok {
			return NewResult("EdgeRealization", false, fmt.Sprintf("edge %q references unknown node %q", e.ID, e.FromID))
		}
		to, ok := placementByID[e.ToID]
		if !ok {
			return NewResult("EdgeRealization", false, fmt.Sprintf("edge %q references unknown node %q", e.ID, e.ToID))
		}

		group := segmentsByEdge[e.ID]
		if len(group) == 0 {
			return NewResult("EdgeRealization", false, fmt.Sprintf("edge %q has no realized belt segments", e.ID))
		}
		if err := verifyEdgeChain(e, from, to, group); err != "" {
			return NewResult("EdgeRealization", false, err)
		}
	}
	return NewResult("EdgeRealization", true, "")
}

// edgeGroupKey strips a multi-belt instance suffix ("e1#0" -> "e1") so
// every unit of a multi-belt edge is checked against the same source
// material edge.
func edgeGroupKey(edgeID string) string {
	for i := 0; i < len(edgeID); i++ {
		if edgeID[i] == '#' {
			return edgeID[:i]
		}
	}
	return edgeID
}

// verifyEdgeChain walks segments belonging to one edge from a source
// cell adjacent to fromNode's output face through to a sink cell
// adjacent to toNode's input face, returning a non-empty failure
// message if the chain is broken.
func verifyEdgeChain(e graph.MaterialEdge, from, to model.PlacedBuilding, segs []model.BeltSegment) string {
	byCell := make(map[cellKey]model.BeltSegment, len(segs))
	for _, s := range segs {
		byCell[cellKey{s.X, s.Y}] = s
	}
	outFaces := outputFaceCells(from)
	inFaces := inputFaceCells(to)

	var start *model.BeltSegment
	for i := range segs {
		if outFaces[cellKey{segs[i].X, segs[i].Y}] {
			start = &segs[i]
			break
		}
	}
	if start == nil {
		return fmt.Sprintf("edge %q has no segment adjacent to %q's output face", e.ID, from.NodeID)
	}

	visited := make(map[cellKey]bool)
	cur := *start
	for {
		key := cellKey{cur.X, cur.Y}
		if visited[key] {
			return fmt.Sprintf("edge %q's routed path revisits cell (%d,%d)", e.ID, cur.X, cur.Y)
		}
		visited[key] = true

		dx, dy := cur.OutDir.Delta()
		next := cellKey{cur.X + dx, cur.Y + dy}
		if inFaces[next] {
			return ""
		}
		nseg, ok := byCell[next]
		if !ok {
			return fmt.Sprintf("edge %q's path breaks after cell (%d,%d): next cell (%d,%d) is not part of this edge",
				e.ID, cur.X, cur.Y, next.x, next.y)
		}
		if nseg.InDir != cur.OutDir.Opposite() {
			return fmt.Sprintf("edge %q's path misaligns at cell (%d,%d): expected inDir %s, got %s",
				e.ID, next.x, next.y, cur.OutDir.Opposite(), nseg.InDir)
		}
		cur = nseg
	}
}

// CheckBoundsMonotonicity verifies that each successive attempt grows at
// least one bounding-box axis over the previous one.
func CheckBoundsMonotonicity(attempts []model.Attempt) CheckResult {
	for i := 1; i < len(attempts); i++ {
		prev, cur := attempts[i-1], attempts[i]
		if !(cur.Width > prev.Width || cur.Height > prev.Height) {
			return NewResult("BoundsMonotonicity", false, fmt.Sprintf(
				"attempt %d (%dx%d) does not grow over attempt %d (%dx%d)",
				cur.Iteration, cur.Width, cur.Height, prev.Iteration, prev.Width, prev.Height))
		}
	}
	return NewResult("BoundsMonotonicity", true, "")
}

// CheckIdempotence verifies two attempt sequences from identical
// (graph, config) inputs produced identical (width,height,status)
// triples, as required of a deterministic solver configuration.
func CheckIdempotence(a, b []model.Attempt) CheckResult {
	if len(a) != len(b) {
		return NewResult("Idempotence", false, fmt.Sprintf(
			"attempt counts differ: %d vs %d", len(a), len(b)))
	}
	for i := range a {
		if a[i].Width != b[i].Width || a[i].Height != b[i].Height || a[i].Status != b[i].Status {
			return NewResult("Idempotence", false, fmt.Sprintf(
				"attempt %d differs: (%d,%d,%s) vs (%d,%d,%s)",
				i, a[i].Width, a[i].Height, a[i].Status, b[i].Width, b[i].Height, b[i].Status))
		}
	}
	return NewResult("Idempotence", true, "")
}
