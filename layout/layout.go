// Package layout implements floor plan synthesis: turning room requirements
// into a plan with positioned, dimensioned rooms and connecting corridors.
package layout

import (
	"math"
	"sort"

	"github.com/planforge-xyz/go-planforge/plan"
)

// AspectRatio is the fixed length:width ratio assumed for every room.
const AspectRatio = 1.2

// Synthesize produces a floor plan from validated requirements.
//
// Required rooms are ordered by priority tier first, then by area descending
// within a tier; the sort is stable, so equal rooms keep their input order.
// Each room is dimensioned with RoomDimensions and placed deterministically
// left to right, wrapping to a new row when Constraints.MaxWidth is set.
func Synthesize(req *plan.Requirements) (*plan.FloorPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rooms := req.RequiredRooms()
	sort.SliceStable(rooms, func(i, j int) bool {
		ti, tj := rooms[i].Priority.Tier(), rooms[j].Priority.Tier()
		if ti != tj {
			return ti < tj
		}
		return rooms[i].Area > rooms[j].Area
	})

	minSize := req.Constraints.MinRoomSizeOrDefault()
	ceiling := req.Constraints.CeilingHeightOrDefault()

	layouts := make([]plan.RoomLayout, 0, len(rooms))
	for _, room := range rooms {
		dims := RoomDimensions(room.Area, minSize)
		dims.Height = ceiling
		layouts = append(layouts, plan.RoomLayout{
			Type:       room.Type,
			Area:       room.Area,
			Dimensions: dims,
		})
	}
	placeRooms(layouts, req.Constraints.MaxWidth)

	corridor := plan.Corridor{
		// Corridor width is specified in inches; the plan is in feet.
		Width:       req.Constraints.CorridorWidthOrDefault() / 12,
		Connections: roomTypes(layouts),
	}

	fp := &plan.FloorPlan{
		TotalArea: req.TotalArea,
		Rooms:     layouts,
		Corridors: []plan.Corridor{corridor},
		Optimized: true,
	}
	// Efficiency can exceed 100 when rooms over-allocate the total area;
	// that is a signal for the caller, not an error.
	fp.Efficiency = 100 * fp.UsedArea() / req.TotalArea
	return fp, nil
}

// RoomDimensions computes a room's footprint from its area assuming the
// fixed aspect ratio, then floors both dimensions at minSize. Very small
// rooms can therefore end up with a final footprint larger than the
// requested area.
func RoomDimensions(area, minSize float64) plan.Dimensions {
	length := math.Sqrt(area * AspectRatio)
	width := area / length
	return plan.Dimensions{
		Width:  math.Max(width, minSize),
		Length: math.Max(length, minSize),
	}
}

// placeRooms assigns deterministic, non-overlapping positions: rooms fill a
// row left to right along x, and wrap to a new row when maxWidth is set and
// the next room would cross it. With no maxWidth the plan is a single row.
func placeRooms(rooms []plan.RoomLayout, maxWidth float64) {
	x, y, rowDepth := 0.0, 0.0, 0.0
	for i := range rooms {
		w := rooms[i].Dimensions.Width
		if maxWidth > 0 && x > 0 && x+w > maxWidth {
			x = 0
			y += rowDepth
			rowDepth = 0
		}
		rooms[i].Position = plan.Position{X: x, Y: y}
		x += w
		if l := rooms[i].Dimensions.Length; l > rowDepth {
			rowDepth = l
		}
	}
}

func roomTypes(rooms []plan.RoomLayout) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Type)
	}
	return out
}
