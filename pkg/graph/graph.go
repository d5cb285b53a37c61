package graph

import (
	"fmt"

	"github.com/beltlayout/engine/pkg/catalog"
)

// ProductionGraph is the complete, validated input to the layout engine.
// It is immutable once constructed: NewProductionGraph is the only way to
// build one, and no method on ProductionGraph mutates it.
type ProductionGraph struct {
	ID            string
	TargetProduct string
	TargetBelts   int
	Nodes         []MachineNode
	Edges         []MaterialEdge

	nodeIndex map[string]int
}

// NewProductionGraph validates nodes and edges and returns an immutable
// ProductionGraph. Validation checks:
//   - every node ID is unique
//   - every node's BuildingKind is a recognized, placeable kind
//   - every edge ID is unique
//   - every edge's FromID and ToID reference a present node
//   - every edge's FromID != ToID (no self-loops)
//   - every edge's Belts is a positive integer
//
// No other behavior is defined for this type: graph traversal, mutation,
// and connectivity analysis belong to the encoder and controller, not here.
func NewProductionGraph(id, targetProduct string, targetBelts int, nodes []MachineNode, edges []MaterialEdge) (*ProductionGraph, error) {
	nodeIndex := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("graph: node at index %d has empty ID", i)
		}
		if _, exists := nodeIndex[n.ID]; exists {
			return nil, fmt.Errorf("graph: duplicate node ID %q", n.ID)
		}
		if !catalog.Valid(n.Kind) {
			return nil, fmt.Errorf("graph: node %q has unrecognized building kind %v", n.ID, n.Kind)
		}
		nodeIndex[n.ID] = i
	}

	edgeIDs := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.ID == "" {
			return nil, fmt.Errorf("graph: edge has empty ID")
		}
		if _, exists := edgeIDs[e.ID]; exists {
			return nil, fmt.Errorf("graph: duplicate edge ID %q", e.ID)
		}
		edgeIDs[e.ID] = struct{}{}

		if e.FromID == e.ToID {
			return nil, fmt.Errorf("graph: edge %q: fromId and toId must differ, got %q", e.ID, e.FromID)
		}
		if _, exists := nodeIndex[e.FromID]; !exists {
			return nil, fmt.Errorf("graph: edge %q: fromId %q references no node", e.ID, e.FromID)
		}
		if _, exists := nodeIndex[e.ToID]; !exists {
			return nil, fmt.Errorf("graph: edge %q: toId %q references no node", e.ID, e.ToID)
		}
		if e.Belts <= 0 {
			return nil, fmt.Errorf("graph: edge %q: belts must be positive, got %d", e.ID, e.Belts)
		}
	}

	return &ProductionGraph{
		ID:            id,
		TargetProduct: targetProduct,
		TargetBelts:   targetBelts,
		Nodes:         append([]MachineNode(nil), nodes...),
		Edges:         append([]MaterialEdge(nil), edges...),
		nodeIndex:     nodeIndex,
	}, nil
}

// Node returns the MachineNode with the given ID and true, or the zero
// value and false if no such node exists.
func (g *ProductionGraph) Node(id string) (MachineNode, bool) {
	idx, ok := g.nodeIndex[id]
	if !ok {
		return MachineNode{}, false
	}
	return g.Nodes[idx], true
}
