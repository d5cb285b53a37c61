// Package graph defines the production graph: machine nodes and directed
// material-flow edges between them. A ProductionGraph is an immutable,
// validated view over caller-supplied nodes and edges — it verifies ID
// uniqueness and referential integrity at construction and otherwise has
// no behavior of its own.
package graph
