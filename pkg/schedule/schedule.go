package schedule

import (
	"fmt"
	"math"
)

// FixedDimensionMode selects which axis, if any, the expansion policy
// holds fixed across iterations.
type FixedDimensionMode string

const (
	// FixedNone alternates which axis grows: width on odd failed
	// iterations, height on even ones. The very first expansion (after
	// iteration 1 fails) therefore grows width.
	FixedNone FixedDimensionMode = "none"
	// FixedWidth holds width constant and always grows height.
	FixedWidth FixedDimensionMode = "width"
	// FixedHeight holds height constant and always grows width.
	FixedHeight FixedDimensionMode = "height"
)

// Config configures the bounds expansion policy. It is a sub-document of
// the top-level solver Config (pkg/solve).
type Config struct {
	FixedDimensionMode FixedDimensionMode `yaml:"fixedDimensionMode" json:"fixedDimensionMode"`
	ExpansionStep      int                `yaml:"expansionStep" json:"expansionStep"`
}

// Validate rejects a non-positive expansion step and an unrecognized
// fixed-dimension mode.
func (c Config) Validate() error {
	if c.ExpansionStep <= 0 {
		return fmt.Errorf("schedule: expansionStep must be positive, got %d", c.ExpansionStep)
	}
	switch c.FixedDimensionMode {
	case FixedNone, FixedWidth, FixedHeight:
	default:
		return fmt.Errorf("schedule: unrecognized fixedDimensionMode %q", c.FixedDimensionMode)
	}
	return nil
}

// Bounds is a candidate trial rectangle.
type Bounds struct {
	Width, Height int
}

// Footprint is the (long, short) footprint of one node to be placed,
// expressed independently of pkg/catalog so this package has no
// dependency on the graph/catalog data model.
type Footprint struct {
	Long, Short int
}

// InitialBounds computes the starting rectangle per spec.md §4.3: side
// s = max(maxLong, maxShort, ceil(sqrt(totalArea))), (W,H) = (s,s), with
// initialWidth/initialHeight (either may be zero, meaning "unset")
// overriding each axis independently.
func InitialBounds(footprints []Footprint, initialWidth, initialHeight int) Bounds {
	var area, maxLong, maxShort int
	for _, f := range footprints {
		area += f.Long * f.Short
		if f.Long > maxLong {
			maxLong = f.Long
		}
		if f.Short > maxShort {
			maxShort = f.Short
		}
	}

	s := maxLong
	if maxShort > s {
		s = maxShort
	}
	sqrtCeil := int(math.Ceil(math.Sqrt(float64(area))))
	if sqrtCeil > s {
		s = sqrtCeil
	}
	if s < 1 {
		s = 1
	}

	w, h := s, s
	if initialWidth > 0 {
		w = initialWidth
	}
	if initialHeight > 0 {
		h = initialHeight
	}
	return Bounds{Width: w, Height: h}
}

// Next computes the rectangle to try after the attempt at iteration
// failedIteration (1-indexed) came back unsat, per the expansion policy
// in cfg. The result strictly dominates prev in at least one axis.
func Next(prev Bounds, failedIteration int, cfg Config) Bounds {
	step := cfg.ExpansionStep

	switch cfg.FixedDimensionMode {
	case FixedWidth:
		return Bounds{Width: prev.Width, Height: prev.Height + step}
	case FixedHeight:
		return Bounds{Width: prev.Width + step, Height: prev.Height}
	default: // FixedNone
		if failedIteration%2 == 1 {
			return Bounds{Width: prev.Width + step, Height: prev.Height}
		}
		return Bounds{Width: prev.Width, Height: prev.Height + step}
	}
}
