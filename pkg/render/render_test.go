package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beltlayout/engine/pkg/model"
)

func sampleSolution() *model.LayoutSolution {
	return &model.LayoutSolution{
		Status: model.StatusSat,
		Bounds: model.Bounds{Width: 6, Height: 4},
		Placements: []model.PlacedBuilding{
			{NodeID: "n1", X: 0, Y: 0, W: 3, H: 3},
			{NodeID: "n2", X: 4, Y: 0, W: 2, H: 2},
		},
		Segments: []model.BeltSegment{
			{X: 3, Y: 1, InDir: model.Left, OutDir: model.Right, EdgeID: "e1"},
			{X: 2, Y: 3, InDir: model.Up, OutDir: model.Down, IsBridge: true, EdgeID: "e1"},
		},
	}
}

func TestRenderProducesWellFormedSVG(t *testing.T) {
	data, err := Render(sampleSolution(), DefaultOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	svg := string(data)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Fatalf("expected an svg element, got: %s", svg)
	}
	if !strings.Contains(svg, "n1") || !strings.Contains(svg, "n2") {
		t.Fatalf("expected node labels in output, got: %s", svg)
	}
}

func TestRenderRejectsNilSolution(t *testing.T) {
	if _, err := Render(nil, DefaultOptions()); err == nil {
		t.Fatal("expected error for nil solution")
	}
}

func TestRenderEmptyBoundsProducesNonEmptyCanvas(t *testing.T) {
	sol := &model.LayoutSolution{Status: model.StatusUnknown}
	data, err := Render(sol, DefaultOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Fatalf("expected an svg element for empty solution, got: %s", data)
	}
}

func TestRenderWithoutLabelsOmitsNodeIDs(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowLabels = false
	data, err := Render(sampleSolution(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(data), ">n1<") {
		t.Fatalf("expected no node label text, got: %s", data)
	}
}

func TestSaveToFileWritesSVGFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.svg")
	if err := SaveToFile(sampleSolution(), path, DefaultOptions()); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Fatalf("expected svg content in saved file, got: %s", data)
	}
}
