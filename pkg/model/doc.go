// Package model holds the data types shared by every stage of the layout
// engine: directions, placements, belt segments, attempts, and the final
// solution. These types are produced by pkg/tilegrid / pkg/rectpack and
// pkg/extract, consumed by pkg/solve, pkg/ioformat, and pkg/render, and
// carry no behavior beyond small, total helper methods.
package model
