// Package extract normalizes the placements and belt segments produced
// by either pkg/tilegrid or pkg/rectpack into a deterministic order,
// independent of which encoding produced them. The encodings themselves
// own the actual decode-from-model step (spec §4.6); this package is
// the shared post-processing every solve() call applies before handing
// a LayoutSolution onward.
package extract
