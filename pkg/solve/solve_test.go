package solve

import (
	"context"
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

func drain(t *testing.T, ch <-chan StreamItem) (attempts []model.Attempt, solution *model.LayoutSolution) {
	t.Helper()
	for item := range ch {
		switch item.Type {
		case streamTypeAttempt:
			attempts = append(attempts, *item.Attempt)
		case streamTypeSolution:
			solution = item.Solution
		default:
			t.Fatalf("unexpected stream item type %q", item.Type)
		}
	}
	if solution == nil {
		t.Fatal("stream closed without a terminal solution event")
	}
	return attempts, solution
}

func TestSolveEmptyGraph(t *testing.T) {
	g := mustGraph(t, nil, nil)
	ch, err := Solve(context.Background(), g, DefaultConfig())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	_, sol := drain(t, ch)
	if sol.Status != model.StatusSat {
		t.Fatalf("status = %v, want sat", sol.Status)
	}
	if len(sol.Placements) != 0 || len(sol.Segments) != 0 {
		t.Errorf("expected empty placements/segments for an empty graph, got %d/%d", len(sol.Placements), len(sol.Segments))
	}
}

func TestSolveSingleNodeNoEdges(t *testing.T) {
	g := mustGraph(t, []graph.MachineNode{{ID: "r", Label: "r", Kind: catalog.Refinery}}, nil)
	ch, err := Solve(context.Background(), g, DefaultConfig())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	_, sol := drain(t, ch)
	if sol.Status != model.StatusSat {
		t.Fatalf("status = %v, want sat", sol.Status)
	}
	if len(sol.Placements) != 1 {
		t.Fatalf("len(placements) = %d, want 1", len(sol.Placements))
	}
	if sol.Bounds.Width < 3 || sol.Bounds.Height < 3 {
		t.Errorf("bounds = %+v, want >= (3,3)", sol.Bounds)
	}
	if len(sol.Segments) != 0 {
		t.Errorf("len(segments) = %d, want 0", len(sol.Segments))
	}
}

func TestSolveGrowsBoundsOnUnsat(t *testing.T) {
	g := mustGraph(t, []graph.MachineNode{{ID: "r", Label: "r", Kind: catalog.Refinery}}, nil)
	cfg := DefaultConfig()
	cfg.InitialWidth, cfg.InitialHeight = 1, 1
	cfg.FixedDimensionMode = "none"
	cfg.ExpansionStep = 1

	ch, err := Solve(context.Background(), g, cfg)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	attempts, sol := drain(t, ch)
	if sol.Status != model.StatusSat {
		t.Fatalf("status = %v, want sat", sol.Status)
	}
	if len(attempts) == 0 {
		t.Fatal("expected at least one failed attempt before growing to fit a 3x3 footprint from 1x1")
	}
	for _, a := range attempts {
		if a.Status != model.StatusUnsat {
			t.Errorf("attempt %+v, want unsat (final success reported only via the solution event)", a)
		}
	}
}

func TestSolveRejectsInvalidConfig(t *testing.T) {
	g := mustGraph(t, nil, nil)
	cfg := DefaultConfig()
	cfg.MaxIterations = -1
	if _, err := Solve(context.Background(), g, cfg); err == nil {
		t.Error("expected error for negative maxIterations")
	}
}

func TestSolveRejectsNilGraph(t *testing.T) {
	if _, err := Solve(context.Background(), nil, DefaultConfig()); err == nil {
		t.Error("expected error for nil graph")
	}
}

func TestSolveUnknownOnCancelledContext(t *testing.T) {
	g := mustGraph(t, []graph.MachineNode{{ID: "r", Label: "r", Kind: catalog.Refinery}}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ch, err := Solve(ctx, g, DefaultConfig())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	_, sol := drain(t, ch)
	if sol.Status != model.StatusUnknown {
		t.Fatalf("status = %v, want unknown", sol.Status)
	}
}

func TestSolveRectPackEncodingNeverEmitsSegments(t *testing.T) {
	g := mustGraph(t,
		[]graph.MachineNode{
			{ID: "a", Label: "a", Kind: catalog.Crusher},
			{ID: "b", Label: "b", Kind: catalog.Crusher},
		},
		[]graph.MaterialEdge{{ID: "e1", FromID: "a", ToID: "b", Item: "x", Belts: 1}},
	)
	cfg := DefaultConfig()
	cfg.Encoding = EncodingRectPack
	cfg.InitialWidth, cfg.InitialHeight = 10, 10

	ch, err := Solve(context.Background(), g, cfg)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	_, sol := drain(t, ch)
	if sol.Status != model.StatusSat {
		t.Fatalf("status = %v, want sat", sol.Status)
	}
	if len(sol.Segments) != 0 {
		t.Errorf("rectpack encoding must never emit segments, got %d", len(sol.Segments))
	}
}
