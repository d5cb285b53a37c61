// Package schedule computes the initial trial rectangle for a layout
// session and the deterministic policy for growing it after an
// unsatisfiable attempt. It holds no state across calls: every Bounds it
// produces is a pure function of the previous Bounds, the failed
// iteration number, and the session Config.
package schedule
