// Package render draws a model.LayoutSolution to SVG for debugging and
// demos: machines as labeled rects, belts as colored tiles with direction
// arrows, bridges highlighted distinctly. It is not part of C1-C7; the
// solver never imports it.
package render
