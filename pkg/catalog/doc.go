// Package catalog maps each production machine kind to its fixed grid
// footprint and port count. It is a pure, read-only lookup: no state,
// no construction, no per-session configuration.
package catalog
