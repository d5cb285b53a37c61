package ioformat

import (
	"encoding/json"
	"os"

	"github.com/beltlayout/engine/pkg/model"
	"github.com/beltlayout/engine/pkg/solve"
)

// MarshalSolution serializes a LayoutSolution to indented JSON.
func MarshalSolution(sol *model.LayoutSolution) ([]byte, error) {
	return json.MarshalIndent(sol, "", "  ")
}

// MarshalStreamItem serializes one StreamItem to compact JSON, suitable
// for one line of a newline-delimited event stream.
func MarshalStreamItem(item solve.StreamItem) ([]byte, error) {
	return json.Marshal(item)
}

// SaveSolutionToFile writes sol to path as indented JSON.
func SaveSolutionToFile(sol *model.LayoutSolution, path string) error {
	data, err := MarshalSolution(sol)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
