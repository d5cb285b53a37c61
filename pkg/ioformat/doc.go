// Package ioformat loads ProductionGraph and solve.Config documents
// from YAML, and marshals solve.StreamItem / model.LayoutSolution to
// JSON for the external transport named in spec §6. It owns the one
// seam between the engine's in-memory types and the two serialization
// formats the rest of the engine never touches directly.
package ioformat
