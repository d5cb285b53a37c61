package ioformat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/beltlayout/engine/pkg/solve"
)

// LoadSolverConfigFile reads a YAML solve.Config document from path,
// layering it over solve.DefaultConfig so a document may specify only
// the fields it wants to override.
func LoadSolverConfigFile(path string) (solve.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return solve.Config{}, fmt.Errorf("ioformat: reading solver config file: %w", err)
	}
	return LoadSolverConfig(data)
}

// LoadSolverConfig parses a YAML solve.Config document from data.
func LoadSolverConfig(data []byte) (solve.Config, error) {
	cfg := solve.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return solve.Config{}, fmt.Errorf("ioformat: parsing solver config YAML: %w", err)
	}
	return cfg, nil
}
