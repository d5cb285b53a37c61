package graph

import (
	"testing"

	"github.com/beltlayout/engine/pkg/catalog"
	"pgregory.net/rapid"
)

func newTestNode(id string, kind catalog.BuildingKind) MachineNode {
	return MachineNode{ID: id, Label: id, Kind: kind}
}

func newTestEdge(id, from, to string) MaterialEdge {
	return MaterialEdge{ID: id, FromID: from, ToID: to, Item: "iron", Belts: 1}
}

func TestNewProductionGraphValid(t *testing.T) {
	nodes := []MachineNode{
		newTestNode("a", catalog.Crusher),
		newTestNode("b", catalog.Crusher),
	}
	edges := []MaterialEdge{newTestEdge("e1", "a", "b")}

	g, err := NewProductionGraph("g1", "iron_plate", 10, nodes, edges)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("unexpected graph shape: %+v", g)
	}
	n, ok := g.Node("a")
	if !ok || n.ID != "a" {
		t.Fatalf("Node(%q) = %+v, %v", "a", n, ok)
	}
}

func TestNewProductionGraphRejectsDuplicateNodeID(t *testing.T) {
	nodes := []MachineNode{
		newTestNode("a", catalog.Crusher),
		newTestNode("a", catalog.Crusher),
	}
	if _, err := NewProductionGraph("g1", "x", 1, nodes, nil); err == nil {
		t.Error("expected error for duplicate node ID")
	}
}

func TestNewProductionGraphRejectsDuplicateEdgeID(t *testing.T) {
	nodes := []MachineNode{
		newTestNode("a", catalog.Crusher),
		newTestNode("b", catalog.Crusher),
		newTestNode("c", catalog.Crusher),
	}
	edges := []MaterialEdge{
		newTestEdge("e1", "a", "b"),
		newTestEdge("e1", "b", "c"),
	}
	if _, err := NewProductionGraph("g1", "x", 1, nodes, edges); err == nil {
		t.Error("expected error for duplicate edge ID")
	}
}

func TestNewProductionGraphAllowsParallelEdges(t *testing.T) {
	nodes := []MachineNode{
		newTestNode("a", catalog.Crusher),
		newTestNode("b", catalog.Crusher),
	}
	edges := []MaterialEdge{
		newTestEdge("e1", "a", "b"),
		newTestEdge("e2", "a", "b"),
	}
	if _, err := NewProductionGraph("g1", "x", 1, nodes, edges); err != nil {
		t.Errorf("parallel edges between the same pair should be permitted: %v", err)
	}
}

func TestNewProductionGraphRejectsDanglingEdge(t *testing.T) {
	nodes := []MachineNode{newTestNode("a", catalog.Crusher)}
	edges := []MaterialEdge{newTestEdge("e1", "a", "ghost")}
	if _, err := NewProductionGraph("g1", "x", 1, nodes, edges); err == nil {
		t.Error("expected error for edge referencing a missing node")
	}
}

func TestNewProductionGraphRejectsSelfLoop(t *testing.T) {
	nodes := []MachineNode{newTestNode("a", catalog.Crusher)}
	edges := []MaterialEdge{newTestEdge("e1", "a", "a")}
	if _, err := NewProductionGraph("g1", "x", 1, nodes, edges); err == nil {
		t.Error("expected error for self-loop edge")
	}
}

func TestNewProductionGraphRejectsNonPositiveBelts(t *testing.T) {
	nodes := []MachineNode{
		newTestNode("a", catalog.Crusher),
		newTestNode("b", catalog.Crusher),
	}
	edges := []MaterialEdge{{ID: "e1", FromID: "a", ToID: "b", Item: "iron", Belts: 0}}
	if _, err := NewProductionGraph("g1", "x", 1, nodes, edges); err == nil {
		t.Error("expected error for non-positive belts")
	}
}

func TestNewProductionGraphRejectsUnknownKind(t *testing.T) {
	nodes := []MachineNode{newTestNode("a", catalog.BuildingKind(99))}
	if _, err := NewProductionGraph("g1", "x", 1, nodes, nil); err == nil {
		t.Error("expected error for unrecognized building kind")
	}
}

// TestConstructionNeverPanics fuzzes small, possibly-malformed node/edge
// sets through NewProductionGraph and requires that it always returns a
// (graph, nil) or (nil, error) pair without panicking, regardless of
// dangling references, duplicate IDs, or degenerate edges.
func TestConstructionNeverPanics(t *testing.T) {
	kinds := []catalog.BuildingKind{catalog.Filler, catalog.Grinder, catalog.Molder, catalog.Refinery, catalog.Crusher}

	rapid.Check(t, func(t *rapid.T) {
		nodeCount := rapid.IntRange(0, 6).Draw(t, "nodeCount")
		ids := rapid.SliceOfN(rapid.StringMatching(`[a-c]`), nodeCount, nodeCount).Draw(t, "ids")

		nodes := make([]MachineNode, nodeCount)
		for i, id := range ids {
			k := kinds[rapid.IntRange(0, len(kinds)-1).Draw(t, "kind")]
			nodes[i] = newTestNode(id, k)
		}

		edgeCount := rapid.IntRange(0, 6).Draw(t, "edgeCount")
		edges := make([]MaterialEdge, edgeCount)
		for i := 0; i < edgeCount; i++ {
			from := rapid.StringMatching(`[a-c]`).Draw(t, "from")
			to := rapid.StringMatching(`[a-c]`).Draw(t, "to")
			edges[i] = MaterialEdge{ID: rapid.StringMatching(`e[0-9]`).Draw(t, "edgeID"), FromID: from, ToID: to, Item: "x", Belts: rapid.IntRange(-1, 3).Draw(t, "belts")}
		}

		g, err := NewProductionGraph("g", "x", 1, nodes, edges)
		if err != nil {
			if g != nil {
				t.Fatalf("error returned alongside non-nil graph")
			}
			return
		}
		if len(g.Nodes) != nodeCount {
			t.Fatalf("accepted graph dropped nodes: got %d want %d", len(g.Nodes), nodeCount)
		}
	})
}
