package tilegrid

import (
	"github.com/beltlayout/engine/internal/boolmodel"
	"github.com/beltlayout/engine/pkg/model"
)

// extract decodes a satisfying assignment into placements and belt
// segments (spec §4.6). Bridge cells record only their vertical
// (inDir, outDir) pair and isBridge=true per the documented "vertical
// pair first" convention; a bridge cell carrying two distinct edges
// therefore surfaces only the vertical edge's id in edgeId, which is a
// known lossiness of the single-EdgeID BeltSegment schema.
func (e *encoding) extract(assignment []bool) ([]model.PlacedBuilding, []model.BeltSegment) {
	placements := make([]model.PlacedBuilding, 0, len(e.placements))
	for _, p := range e.placements {
		for _, a := range p.anchorOrder {
			if boolmodel.Model(assignment, p.anchorVar[a]) {
				placements = append(placements, model.PlacedBuilding{
					NodeID: p.nodeID,
					X:      a.x,
					Y:      a.y,
					W:      p.long,
					H:      p.short,
				})
				break
			}
		}
	}

	var segments []model.BeltSegment
	for y := 0; y < e.grid.h; y++ {
		for x := 0; x < e.grid.w; x++ {
			c := e.grid.at(x, y)
			isBridge := boolmodel.Model(assignment, c.isBridge)
			isConveyor := boolmodel.Model(assignment, c.isConveyor)
			if !isBridge && !isConveyor {
				continue
			}

			seg := model.BeltSegment{X: x, Y: y, IsBridge: isBridge}
			if isBridge {
				if boolmodel.Model(assignment, c.in[model.Up]) {
					seg.InDir, seg.OutDir = model.Up, model.Down
				} else {
					seg.InDir, seg.OutDir = model.Down, model.Up
				}
			} else {
				for _, d := range model.AllDirections {
					if boolmodel.Model(assignment, c.in[d]) {
						seg.InDir = d
					}
					if boolmodel.Model(assignment, c.out[d]) {
						seg.OutDir = d
					}
				}
			}

			i := y*e.grid.w + x
			for _, r := range e.routes {
				if boolmodel.Model(assignment, r.use[i]) {
					if isBridge && !boolmodel.Model(assignment, r.vert[i]) {
						continue // horizontal occupant of a bridge: not the recorded axis
					}
					seg.EdgeID = r.id
					break
				}
			}

			segments = append(segments, seg)
		}
	}

	return placements, segments
}
