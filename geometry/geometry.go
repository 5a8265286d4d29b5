// Package geometry computes bounding geometry for 2D floor plans and their
// extruded 3D representations. Every room and structural element is treated
// as an axis-aligned rectangle or rectangular prism; the counts are a coarse
// approximation kept for parity with the shipped behavior.
package geometry

import (
	"github.com/planforge-xyz/go-planforge/plan"
	"github.com/planforge-xyz/go-planforge/structural"
)

// Per-prism mesh counts for extruded elements.
const (
	PrismVertices = 8
	PrismFaces    = 6
	PrismEdges    = 12
)

// Bounds is a 2D bounding box. The minimum corner is always the origin.
type Bounds struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Summary counts the mesh primitives of a 2D floor plan.
type Summary struct {
	Vertices int    `json:"vertices"`
	Faces    int    `json:"faces"`
	Edges    int    `json:"edges"`
	Bounds   Bounds `json:"bounds"`
}

// Summarize computes 2D mesh counts and bounds for a floor plan: four
// vertices and edges and one face per room, with extents scanned from each
// room's position plus footprint.
func Summarize(fp *plan.FloorPlan) Summary {
	n := len(fp.Rooms)
	s := Summary{
		Vertices: 4 * n,
		Faces:    n,
		Edges:    4 * n,
	}
	for _, room := range fp.Rooms {
		if x := room.Position.X + room.Dimensions.Width; x > s.Bounds.MaxX {
			s.Bounds.MaxX = x
		}
		if y := room.Position.Y + room.Dimensions.Length; y > s.Bounds.MaxY {
			s.Bounds.MaxY = y
		}
	}
	return s
}

// Bounds3 is a 3D bounding box with the minimum corner at the origin.
type Bounds3 struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MinZ float64 `json:"minZ"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
	MaxZ float64 `json:"maxZ"`
}

// Summary3 counts the mesh primitives of an extruded model.
type Summary3 struct {
	Vertices int     `json:"vertices"`
	Faces    int     `json:"faces"`
	Edges    int     `json:"edges"`
	Bounds   Bounds3 `json:"bounds"`
}

// RoomVolume is one room's extruded volume.
type RoomVolume struct {
	Type   string  `json:"type"`
	Area   float64 `json:"area"`   // square feet
	Volume float64 `json:"volume"` // cubic feet
}

// Model3D is the extruded representation of a floor plan.
type Model3D struct {
	Height   float64      `json:"height"` // extrusion height, feet
	Rooms    []RoomVolume `json:"rooms"`
	Geometry Summary3     `json:"geometry"`
}

// Extrude lifts a 2D floor plan into a 3D model of rectangular prisms:
// each room's volume is its area times the extrusion height.
func Extrude(fp *plan.FloorPlan, height float64) *Model3D {
	model := &Model3D{
		Height: height,
		Rooms:  make([]RoomVolume, 0, len(fp.Rooms)),
	}
	for _, room := range fp.Rooms {
		model.Rooms = append(model.Rooms, RoomVolume{
			Type:   room.Type,
			Area:   room.Area,
			Volume: room.Area * height,
		})
	}

	n := len(fp.Rooms)
	model.Geometry = Summary3{
		Vertices: PrismVertices * n,
		Faces:    PrismFaces * n,
		Edges:    PrismEdges * n,
	}
	flat := Summarize(fp)
	model.Geometry.Bounds = Bounds3{
		MaxX: flat.Bounds.MaxX,
		MaxY: flat.Bounds.MaxY,
		MaxZ: height,
	}
	return model
}

// SummarizeElements computes 3D mesh counts and bounds for structural
// elements, treating every element as a rectangular prism.
func SummarizeElements(elements []structural.Element) Summary3 {
	s := Summary3{
		Vertices: PrismVertices * len(elements),
		Faces:    PrismFaces * len(elements),
		Edges:    PrismEdges * len(elements),
	}
	for _, el := range elements {
		if x := el.Position.X + el.Dimensions.Width; x > s.Bounds.MaxX {
			s.Bounds.MaxX = x
		}
		if y := el.Position.Y + el.Dimensions.Length; y > s.Bounds.MaxY {
			s.Bounds.MaxY = y
		}
		if z := el.Position.Z + el.Dimensions.Height; z > s.Bounds.MaxZ {
			s.Bounds.MaxZ = z
		}
	}
	return s
}
