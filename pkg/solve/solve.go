package solve

import (
	"context"
	"time"

	"github.com/beltlayout/engine/pkg/catalog"
	"github.com/beltlayout/engine/pkg/extract"
	"github.com/beltlayout/engine/pkg/graph"
	"github.com/beltlayout/engine/pkg/model"
	"github.com/beltlayout/engine/pkg/rectpack"
	"github.com/beltlayout/engine/pkg/schedule"
	"github.com/beltlayout/engine/pkg/tilegrid"
)

// encodeFunc is the shared shape of both C4 strategies' attempt
// functions, so the controller can select between them by name without
// depending on either package's internals.
type encodeFunc func(ctx context.Context, g *graph.ProductionGraph, w, h int, timeout time.Duration) (model.Status, []model.PlacedBuilding, []model.BeltSegment, error)

var encoders = map[Encoding]encodeFunc{
	EncodingCellRouting: tilegrid.Attempt,
	EncodingRectPack:    rectpack.Attempt,
}

// Solve validates graph and config, then starts a session and returns a
// channel of StreamItem: zero or more "attempt" events followed by
// exactly one terminal "solution" event, after which the channel is
// closed. Invalid input is rejected synchronously, before any solver
// work begins.
func Solve(ctx context.Context, g *graph.ProductionGraph, cfg Config) (<-chan StreamItem, error) {
	if g == nil {
		return nil, invalidInput("graph must not be nil")
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, invalidInput("%v", err)
	}
	encode, ok := encoders[cfg.Encoding]
	if !ok {
		return nil, invalidInput("unrecognized encoding %q", cfg.Encoding)
	}

	footprints := make([]schedule.Footprint, len(g.Nodes))
	for i, n := range g.Nodes {
		long, short := catalog.Footprint(n.Kind)
		footprints[i] = schedule.Footprint{Long: long, Short: short}
	}
	bounds := schedule.InitialBounds(footprints, cfg.InitialWidth, cfg.InitialHeight)

	ch := make(chan StreamItem)
	go runSession(ctx, g, cfg, encode, bounds, ch)
	return ch, nil
}

func runSession(ctx context.Context, g *graph.ProductionGraph, cfg Config, encode encodeFunc, bounds schedule.Bounds, ch chan<- StreamItem) {
	defer close(ch)
	start := time.Now()

	var attempts []model.Attempt
	scheduleCfg := cfg.scheduleConfig()

	for iteration := 1; ; iteration++ {
		if ctx.Err() != nil {
			emitSolution(ch, model.StatusUnknown, bounds, nil, nil, attempts, start)
			return
		}

		status, placements, segments, _ := encode(ctx, g, bounds.Width, bounds.Height, cfg.timeout())

		switch status {
		case model.StatusSat:
			placements, segments = extract.Normalize(placements, segments)
			emitSolution(ch, model.StatusSat, bounds, placements, segments, attempts, start)
			return

		case model.StatusUnsat:
			attempt := model.Attempt{Iteration: iteration, Width: bounds.Width, Height: bounds.Height, Status: model.StatusUnsat}
			attempts = append(attempts, attempt)
			ch <- StreamItem{Type: streamTypeAttempt, Attempt: &attempt}

			if iteration >= cfg.MaxIterations {
				emitSolution(ch, model.StatusUnsat, bounds, nil, nil, attempts, start)
				return
			}
			bounds = schedule.Next(bounds, iteration, scheduleCfg)

		default: // model.StatusUnknown
			attempt := model.Attempt{Iteration: iteration, Width: bounds.Width, Height: bounds.Height, Status: model.StatusUnknown}
			attempts = append(attempts, attempt)
			ch <- StreamItem{Type: streamTypeAttempt, Attempt: &attempt}
			emitSolution(ch, model.StatusUnknown, bounds, nil, nil, attempts, start)
			return
		}
	}
}

func emitSolution(ch chan<- StreamItem, status model.Status, bounds schedule.Bounds, placements []model.PlacedBuilding, segments []model.BeltSegment, attempts []model.Attempt, start time.Time) {
	sol := &model.LayoutSolution{
		Status:     status,
		Bounds:     model.Bounds{Width: bounds.Width, Height: bounds.Height},
		Placements: placements,
		Segments:   segments,
		Attempts:   attempts,
		ElapsedMs:  time.Since(start).Milliseconds(),
	}
	ch <- StreamItem{Type: streamTypeSolution, Solution: sol}
}
