// Package tilegrid implements the authoritative cell-based Boolean
// encoding (spec §4.4): for a fixed trial rectangle it builds one
// variable per cell's type, machine identity, and belt direction, plus
// per-material-edge routing variables, lowers the whole model through
// internal/boolmodel to a gophersat problem, and drives it with a
// per-attempt timeout. This is the richer of the two encodings described
// by the source; pkg/rectpack is the degenerate arithmetic fallback.
package tilegrid
