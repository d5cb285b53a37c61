package graph

import "github.com/beltlayout/engine/pkg/catalog"

// MachineNode is a single production machine in the graph.
type MachineNode struct {
	ID    string            `yaml:"id" json:"id"`
	Label string            `yaml:"label" json:"label"`
	Kind  catalog.BuildingKind `yaml:"kind" json:"kind"`
}

// MaterialEdge is a directed material-flow connection between two machines.
// Multiple edges between the same ordered pair are permitted and are
// distinguished by ID.
type MaterialEdge struct {
	ID     string `yaml:"id" json:"id"`
	FromID string `yaml:"fromId" json:"fromId"`
	ToID   string `yaml:"toId" json:"toId"`
	Item   string `yaml:"item" json:"item"`
	Belts  int    `yaml:"belts" json:"belts"`
}
