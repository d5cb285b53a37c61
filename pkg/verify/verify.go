package verify

import (
	"github.com/beltlayout/engine/pkg/graph"
	"github.com/beltlayout/engine/pkg/model"
)

// Verify runs every structural invariant check against sol. g is
// optional; when non-nil, edge realization is checked too. Checks run
// unconditionally — on an unsat or unknown solution, placements and
// segments are empty and every geometric check trivially passes.
func Verify(sol *model.LayoutSolution, g *graph.ProductionGraph) *Report {
	report := newReport()

	report.add(CheckNonOverlap(sol.Placements))
	report.add(CheckNoAdjacency(sol.Placements))
	report.add(CheckContainment(sol.Placements, sol.Bounds))
	report.add(CheckBeltCoherence(sol.Segments, sol.Placements))
	if g != nil {
		report.add(CheckEdgeRealization(g, sol.Placements, sol.Segments))
	}
	report.add(CheckBoundsMonotonicity(sol.Attempts))

	return report
}
