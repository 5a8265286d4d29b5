// Package plan implements the core floor plan data structures.
// A floor plan is the synthesized 2D arrangement of rooms and corridors
// derived from a set of spatial and regulatory requirements.
package plan

import "fmt"

// Priority controls how strongly a room competes for placement order.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Tier returns the sort tier for a priority. Lower tiers sort first.
// Unrecognized priorities fall into the lowest tier.
func (p Priority) Tier() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// RoomSpec describes one requested room.
type RoomSpec struct {
	Type     string   `json:"type"`
	Area     float64  `json:"area"` // square feet
	Required bool     `json:"required"`
	Priority Priority `json:"priority"`
}

// Constraints bound the synthesized layout. Zero values mean "unset";
// use the *OrDefault accessors to resolve them.
type Constraints struct {
	MaxWidth      float64 `json:"maxWidth,omitempty"`      // feet
	MaxLength     float64 `json:"maxLength,omitempty"`     // feet
	MinRoomSize   float64 `json:"minRoomSize,omitempty"`   // feet, per dimension
	CorridorWidth float64 `json:"corridorWidth,omitempty"` // inches
	CeilingHeight float64 `json:"ceilingHeight,omitempty"` // feet
}

// Default constraint values applied when a field is unset.
const (
	DefaultMinRoomSize   = 8.0  // feet
	DefaultCorridorWidth = 36.0 // inches
	DefaultCeilingHeight = 9.0  // feet
)

// MinRoomSizeOrDefault resolves the minimum room dimension in feet.
func (c Constraints) MinRoomSizeOrDefault() float64 {
	if c.MinRoomSize > 0 {
		return c.MinRoomSize
	}
	return DefaultMinRoomSize
}

// CorridorWidthOrDefault resolves the corridor width in inches.
func (c Constraints) CorridorWidthOrDefault() float64 {
	if c.CorridorWidth > 0 {
		return c.CorridorWidth
	}
	return DefaultCorridorWidth
}

// CeilingHeightOrDefault resolves the ceiling height in feet.
func (c Constraints) CeilingHeightOrDefault() float64 {
	if c.CeilingHeight > 0 {
		return c.CeilingHeight
	}
	return DefaultCeilingHeight
}

// Requirements is the input to floor plan generation.
type Requirements struct {
	TotalArea    float64     `json:"totalArea"` // square feet
	RoomCount    int         `json:"roomCount"`
	Rooms        []RoomSpec  `json:"roomTypes"`
	Constraints  Constraints `json:"constraints"`
	Style        string      `json:"style"`
	BuildingCode string      `json:"buildingCode"`
}

// knownRoomTypes is the set of room types the synthesizer understands.
var knownRoomTypes = map[string]bool{
	"bedroom": true, "bathroom": true, "kitchen": true, "living": true,
	"dining": true, "office": true, "hallway": true, "closet": true,
	"laundry": true, "garage": true, "storage": true, "utility": true,
}

// KnownRoomType reports whether the synthesizer recognizes the room type.
func KnownRoomType(roomType string) bool {
	return knownRoomTypes[roomType]
}

// RequiredRooms returns the rooms marked required, in input order.
func (r *Requirements) RequiredRooms() []RoomSpec {
	var out []RoomSpec
	for _, room := range r.Rooms {
		if room.Required {
			out = append(out, room)
		}
	}
	return out
}

// Validate rejects requirements that no component downstream can work with.
// Validation runs before any generation step so that callers never receive
// partial artifacts.
func (r *Requirements) Validate() error {
	if r.TotalArea <= 0 {
		return fmt.Errorf("%w: total area must be positive, got %g", ErrInvalidRequirement, r.TotalArea)
	}
	required := 0
	for i, room := range r.Rooms {
		if room.Area <= 0 {
			return fmt.Errorf("%w: room %d (%s) has non-positive area %g", ErrInvalidRequirement, i, room.Type, room.Area)
		}
		if !KnownRoomType(room.Type) {
			return fmt.Errorf("%w: unknown room type %q", ErrInvalidRequirement, room.Type)
		}
		if room.Required {
			required++
		}
	}
	if required == 0 {
		return fmt.Errorf("%w: at least one required room is needed", ErrInvalidRequirement)
	}
	return nil
}

// Dimensions holds the extents of a room or element in feet.
// Height carries the ceiling height for compliance checks; it is zero
// only when a layout predates height threading.
type Dimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height,omitempty"`
}

// Position is a 2D placement in feet from the plan origin.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RoomLayout is a positioned, dimensioned room in a synthesized plan.
type RoomLayout struct {
	Type       string     `json:"type"`
	Area       float64    `json:"area"` // requested area, square feet
	Dimensions Dimensions `json:"dimensions"`
	Position   Position   `json:"position"`
}

// Corridor connects room types with a uniform width in feet.
type Corridor struct {
	Width       float64  `json:"width"` // feet
	Connections []string `json:"connections"`
}

// FloorPlan is the synthesized arrangement of rooms and corridors.
type FloorPlan struct {
	TotalArea  float64      `json:"totalArea"`
	Rooms      []RoomLayout `json:"rooms"`
	Corridors  []Corridor   `json:"corridors"`
	Efficiency float64      `json:"efficiency"` // percent; may exceed 100 on over-allocation
	Optimized  bool         `json:"optimized"`
}

// UsedArea returns the sum of requested room areas.
func (fp *FloorPlan) UsedArea() float64 {
	sum := 0.0
	for _, room := range fp.Rooms {
		sum += room.Area
	}
	return sum
}

// RoomTypes returns the room types present in the plan, in layout order.
func (fp *FloorPlan) RoomTypes() []string {
	out := make([]string, 0, len(fp.Rooms))
	for _, room := range fp.Rooms {
		out = append(out, room.Type)
	}
	return out
}
