package extract

import (
	"sort"

	"github.com/beltlayout/engine/pkg/model"
)

// Normalize sorts placements by node ID and segments by (y, x) in place
// and returns the same slices, so that two solver runs over identical
// input produce byte-identical JSON regardless of internal map
// iteration order.
func Normalize(placements []model.PlacedBuilding, segments []model.BeltSegment) ([]model.PlacedBuilding, []model.BeltSegment) {
	sort.Slice(placements, func(i, j int) bool {
		return placements[i].NodeID < placements[j].NodeID
	})
	sort.Slice(segments, func(i, j int) bool {
		if segments[i].Y != segments[j].Y {
			return segments[i].Y < segments[j].Y
		}
		return segments[i].X < segments[j].X
	})
	return placements, segments
}
