package ioformat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/beltlayout/engine/pkg/graph"
)

// graphDoc is the on-disk shape of a ProductionGraph. It exists because
// graph.ProductionGraph's validating constructor, not a bare struct
// literal, is the only way to obtain one: this type is unmarshaled
// freely and then handed to graph.NewProductionGraph for validation.
type graphDoc struct {
	ID            string               `yaml:"id" json:"id"`
	TargetProduct string               `yaml:"targetProduct" json:"targetProduct"`
	TargetBelts   int                  `yaml:"targetBelts" json:"targetBelts"`
	Nodes         []graph.MachineNode  `yaml:"nodes" json:"nodes"`
	Edges         []graph.MaterialEdge `yaml:"edges" json:"edges"`
}

// LoadGraphFile reads and validates a YAML ProductionGraph document from
// path.
func LoadGraphFile(path string) (*graph.ProductionGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading graph file: %w", err)
	}
	return LoadGraph(data)
}

// LoadGraph parses and validates a YAML ProductionGraph document from
// data.
func LoadGraph(data []byte) (*graph.ProductionGraph, error) {
	var doc graphDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ioformat: parsing graph YAML: %w", err)
	}
	g, err := graph.NewProductionGraph(doc.ID, doc.TargetProduct, doc.TargetBelts, doc.Nodes, doc.Edges)
	if err != nil {
		return nil, fmt.Errorf("ioformat: %w", err)
	}
	return g, nil
}
