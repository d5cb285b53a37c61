package render

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/beltlayout/engine/pkg/model"
)

// Options configures SVG rendering of a LayoutSolution.
type Options struct {
	CellSize   int    // Pixel size of one grid cell (default: 32)
	Margin     int    // Canvas margin in pixels (default: 20)
	ShowLabels bool   // Show node ID labels on machines
	ShowGrid   bool   // Draw faint grid lines for every cell
	Title      string // Optional title drawn above the canvas
}

// DefaultOptions returns sensible default rendering options.
func DefaultOptions() Options {
	return Options{
		CellSize:   32,
		Margin:     20,
		ShowLabels: true,
		ShowGrid:   true,
		Title:      "Layout",
	}
}

func (o Options) withDefaults() Options {
	if o.CellSize <= 0 {
		o.CellSize = 32
	}
	if o.Margin <= 0 {
		o.Margin = 20
	}
	return o
}

// Render draws sol to SVG. A nil solution is an error. Zero bounds
// produce an empty canvas rather than an error, since a rendered "no
// layout found" result is itself a valid debug artifact.
func Render(sol *model.LayoutSolution, opts Options) ([]byte, error) {
	if sol == nil {
		return nil, fmt.Errorf("render: solution is nil")
	}
	opts = opts.withDefaults()

	headerHeight := 0
	if opts.Title != "" {
		headerHeight = 30
	}
	width := sol.Bounds.Width*opts.CellSize + 2*opts.Margin
	height := sol.Bounds.Height*opts.CellSize + 2*opts.Margin + headerHeight
	if width <= 2*opts.Margin {
		width = 200
	}
	if height <= 2*opts.Margin {
		height = 200
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(width/2, 20, opts.Title,
			"text-anchor:middle;font-size:16px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	originY := opts.Margin + headerHeight
	if opts.ShowGrid {
		drawGrid(canvas, sol.Bounds, opts, originY)
	}
	drawSegments(canvas, sol.Segments, opts, originY)
	drawPlacements(canvas, sol.Placements, opts, originY)

	canvas.End()
	return buf.Bytes(), nil
}

// SaveToFile renders sol and writes the SVG to path.
func SaveToFile(sol *model.LayoutSolution, path string, opts Options) error {
	data, err := Render(sol, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func cellOrigin(x, y, margin, cellSize, originY int) (px, py int) {
	return margin + x*cellSize, originY + y*cellSize
}

func drawGrid(canvas *svg.SVG, bounds model.Bounds, opts Options, originY int) {
	style := "stroke:#2d3748;stroke-width:1"
	for x := 0; x <= bounds.Width; x++ {
		px := opts.Margin + x*opts.CellSize
		canvas.Line(px, originY, px, originY+bounds.Height*opts.CellSize, style)
	}
	for y := 0; y <= bounds.Height; y++ {
		py := originY + y*opts.CellSize
		canvas.Line(opts.Margin, py, opts.Margin+bounds.Width*opts.CellSize, py, style)
	}
}

func drawPlacements(canvas *svg.SVG, placements []model.PlacedBuilding, opts Options, originY int) {
	for _, p := range placements {
		px, py := cellOrigin(p.X, p.Y, opts.Margin, opts.CellSize, originY)
		w := p.W * opts.CellSize
		h := p.H * opts.CellSize
		canvas.Rect(px, py, w, h, "fill:#4299e1;stroke:#e2e8f0;stroke-width:2;opacity:0.9")
		if opts.ShowLabels {
			canvas.Text(px+w/2, py+h/2+4, p.NodeID,
				"text-anchor:middle;font-size:11px;font-family:monospace;fill:#1a1a2e;font-weight:bold")
		}
	}
}

func drawSegments(canvas *svg.SVG, segments []model.BeltSegment, opts Options, originY int) {
	for _, s := range segments {
		px, py := cellOrigin(s.X, s.Y, opts.Margin, opts.CellSize, originY)
		color := "#48bb78"
		if s.IsBridge {
			color = "#ed8936"
		}
		canvas.Rect(px+2, py+2, opts.CellSize-4, opts.CellSize-4,
			fmt.Sprintf("fill:%s;opacity:0.5", color))
		drawDirectionArrow(canvas, s, px, py, opts, color)
	}
}

// drawDirectionArrow draws a short line from the segment's incoming face
// to its outgoing face, through the cell center.
func drawDirectionArrow(canvas *svg.SVG, s model.BeltSegment, px, py int, opts Options, color string) {
	cx := px + opts.CellSize/2
	cy := py + opts.CellSize/2
	half := opts.CellSize / 2

	idx, idy := s.InDir.Delta()
	odx, ody := s.OutDir.Delta()

	fromX := cx + idx*half
	fromY := cy + idy*half
	toX := cx + odx*half
	toY := cy + ody*half

	style := fmt.Sprintf("stroke:%s;stroke-width:2", color)
	canvas.Line(fromX, fromY, cx, cy, style)
	canvas.Line(cx, cy, toX, toY, style)
}
