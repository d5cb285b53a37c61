// Package boolmodel is a small, solver-agnostic CNF/cardinality builder.
// Callers allocate Boolean variables and add clauses and at-most-k
// cardinality constraints; Build lowers the accumulated constraints to a
// github.com/crillab/gophersat/solver.Problem in one place, and Check
// runs that problem. No other package touches the gophersat API
// directly, so the one third-party solver surface this module depends on
// is isolated to builder.go and driver.go.
package boolmodel
