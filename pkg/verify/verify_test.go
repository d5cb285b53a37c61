package verify

import (
	"testing"

	"github.com/beltlayout/engine/pkg/catalog"
	"github.com/beltlayout/engine/pkg/graph"
	"github.com/beltlayout/engine/pkg/model"
)

func mustGraph(t *testing.T, nodes []graph.MachineNode, edges []graph.MaterialEdge) *graph.ProductionGraph {
	t.Helper()
	g, err := graph.NewProductionGraph("g", "widget", 1, nodes, edges)
	if err != nil {
		t.Fatalf("NewProductionGraph: %v", err)
	}
	return g
}

func TestCheckNonOverlapDetectsOverlap(t *testing.T) {
	placements := []model.PlacedBuilding{
		{NodeID: "a", X: 0, Y: 0, W: 3, H: 3},
		{NodeID: "b", X: 2, Y: 2, W: 3, H: 3},
	}
	res := CheckNonOverlap(placements)
	if res.Satisfied {
		t.Fatal("expected overlap to be detected")
	}
}

func TestCheckNonOverlapPassesOnDisjointPlacements(t *testing.T) {
	placements := []model.PlacedBuilding{
		{NodeID: "a", X: 0, Y: 0, W: 3, H: 3},
		{NodeID: "b", X: 10, Y: 10, W: 3, H: 3},
	}
	res := CheckNonOverlap(placements)
	if !res.Satisfied {
		t.Fatalf("expected no overlap, got: %s", res.Details)
	}
}

func TestCheckNoAdjacencyDetectsSharedEdge(t *testing.T) {
	placements := []model.PlacedBuilding{
		{NodeID: "a", X: 0, Y: 0, W: 3, H: 3},
		{NodeID: "b", X: 3, Y: 0, W: 3, H: 3},
	}
	res := CheckNoAdjacency(placements)
	if res.Satisfied {
		t.Fatal("expected directly-adjacent placements to be detected")
	}
}

func TestCheckNoAdjacencyAllowsDiagonalTouch(t *testing.T) {
	placements := []model.PlacedBuilding{
		{NodeID: "a", X: 0, Y: 0, W: 3, H: 3},
		{NodeID: "b", X: 3, Y: 3, W: 3, H: 3},
	}
	res := CheckNoAdjacency(placements)
	if !res.Satisfied {
		t.Fatalf("expected diagonal touch to be allowed, got: %s", res.Details)
	}
}

func TestCheckContainmentDetectsOutOfBounds(t *testing.T) {
	placements := []model.PlacedBuilding{{NodeID: "a", X: 4, Y: 0, W: 3, H: 3}}
	res := CheckContainment(placements, model.Bounds{Width: 6, Height: 6})
	if res.Satisfied {
		t.Fatal("expected out-of-bounds placement to be detected")
	}
}

func TestCheckBeltCoherencePassesOnStraightPathToInputFace(t *testing.T) {
	placements := []model.PlacedBuilding{
		{NodeID: "to", X: 0, Y: 5, W: 3, H: 3},
	}
	segments := []model.BeltSegment{
		{X: 1, Y: 3, InDir: model.Up, OutDir: model.Down},
	}
	res := CheckBeltCoherence(segments, placements)
	if !res.Satisfied {
		t.Fatalf("expected coherent belt chain, got: %s", res.Details)
	}
}

func TestCheckBeltCoherenceDetectsDeadEnd(t *testing.T) {
	segments := []model.BeltSegment{
		{X: 1, Y: 4, InDir: model.Up, OutDir: model.Down},
	}
	res := CheckBeltCoherence(segments, nil)
	if res.Satisfied {
		t.Fatal("expected dead-end belt to be detected")
	}
}

func TestCheckBeltCoherenceDetectsMisalignedChain(t *testing.T) {
	segments := []model.BeltSegment{
		{X: 1, Y: 0, InDir: model.Up, OutDir: model.Down},
		{X: 1, Y: 1, InDir: model.Left, OutDir: model.Right},
	}
	res := CheckBeltCoherence(segments, nil)
	if res.Satisfied {
		t.Fatal("expected misaligned chain to be detected")
	}
}

func TestCheckEdgeRealizationPassesOnDirectPath(t *testing.T) {
	g := mustGraph(t,
		[]graph.MachineNode{
			{ID: "a", Kind: catalog.Crusher},
			{ID: "b", Kind: catalog.Crusher},
		},
		[]graph.MaterialEdge{{ID: "e1", FromID: "a", ToID: "b", Item: "ore", Belts: 1}},
	)
	placements := []model.PlacedBuilding{
		{NodeID: "a", X: 0, Y: 0, W: 3, H: 3},
		{NodeID: "b", X: 0, Y: 6, W: 3, H: 3},
	}
	segments := []model.BeltSegment{
		{X: 1, Y: 3, InDir: model.Up, OutDir: model.Down, EdgeID: "e1#0"},
		{X: 1, Y: 4, InDir: model.Up, OutDir: model.Down, EdgeID: "e1#0"},
	}
	res := CheckEdgeRealization(g, placements, segments)
	if !res.Satisfied {
		t.Fatalf("expected edge to be realized, got: %s", res.Details)
	}
}

func TestCheckEdgeRealizationDetectsMissingSegments(t *testing.T) {
	g := mustGraph(t,
		[]graph.MachineNode{{ID: "a", Kind: catalog.Crusher}, {ID: "b", Kind: catalog.Crusher}},
		[]graph.MaterialEdge{{ID: "e1", FromID: "a", ToID: "b", Item: "ore", Belts: 1}},
	)
	placements := []model.PlacedBuilding{
		{NodeID: "a", X: 0, Y: 0, W: 3, H: 3},
		{NodeID: "b", X: 0, Y: 5, W: 3, H: 3},
	}
	res := CheckEdgeRealization(g, placements, nil)
	if res.Satisfied {
		t.Fatal("expected missing edge segments to be detected")
	}
}

func TestCheckBoundsMonotonicityDetectsNonGrowth(t *testing.T) {
	attempts := []model.Attempt{
		{Iteration: 1, Width: 4, Height: 4, Status: model.StatusUnsat},
		{Iteration: 2, Width: 4, Height: 4, Status: model.StatusUnsat},
	}
	res := CheckBoundsMonotonicity(attempts)
	if res.Satisfied {
		t.Fatal("expected stagnant bounds to be detected")
	}
}

func TestCheckIdempotenceDetectsDivergence(t *testing.T) {
	a := []model.Attempt{{Iteration: 1, Width: 4, Height: 4, Status: model.StatusUnsat}}
	b := []model.Attempt{{Iteration: 1, Width: 5, Height: 4, Status: model.StatusUnsat}}
	res := CheckIdempotence(a, b)
	if res.Satisfied {
		t.Fatal("expected divergent attempt sequences to be detected")
	}
}

func TestVerifyEmptySolutionPasses(t *testing.T) {
	sol := &model.LayoutSolution{Status: model.StatusSat, Bounds: model.Bounds{Width: 0, Height: 0}}
	report := Verify(sol, nil)
	if !report.Passed {
		t.Fatalf("expected empty solution to pass, failures: %+v", report.Failures())
	}
}
