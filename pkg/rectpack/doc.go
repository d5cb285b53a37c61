// Package rectpack implements the degenerate rectangle-packing fallback
// encoding (spec §4.4): integer anchors chosen by backtracking search,
// checked only for in-bounds placement, pairwise non-overlap, and no
// shared grid edge between two footprints (corners may touch). It never
// emits belt segments. This is a fast,
// intentionally weaker probe than pkg/tilegrid's cell-based SAT
// encoding, for sessions that only need a feasibility/area estimate.
package rectpack
