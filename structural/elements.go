// Package structural derives physical building elements from a floor plan.
// The generator emits load-bearing walls and a foundation slab; columns,
// beams and roofs are out of scope for this generator.
package structural

import (
	"math"

	"github.com/google/uuid"

	"github.com/planforge-xyz/go-planforge/plan"
)

// ElementType classifies a structural element.
type ElementType string

const (
	ElementWall       ElementType = "wall"
	ElementBeam       ElementType = "beam"
	ElementColumn     ElementType = "column"
	ElementSlab       ElementType = "slab"
	ElementFoundation ElementType = "foundation"
	ElementRoof       ElementType = "roof"
)

// Fixed generator parameters, in feet unless noted.
const (
	WallThickness   = 0.5 // wall width
	FoundationDepth = 0.5 // slab height
	FoundationScale = 1.2 // footprint side = sqrt(totalArea) * scale

	DefaultWallMaterial = "engineered-wood"
	FoundationMaterial  = "concrete-4000psi"
)

// Position is a 3D placement in feet from the plan origin.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Element is one generated building component with geometry and material.
type Element struct {
	ID         string          `json:"id"`
	Type       ElementType     `json:"type"`
	Material   string          `json:"material"` // key into the material catalog
	Dimensions plan.Dimensions `json:"dimensions"`
	Position   Position        `json:"position"`
	Properties map[string]any  `json:"properties,omitempty"`
}

// Volume returns the element's rectangular volume in cubic feet.
func (e Element) Volume() float64 {
	return e.Dimensions.Length * e.Dimensions.Width * e.Dimensions.Height
}

// CrossSection returns the element's load-bearing cross-sectional area.
func (e Element) CrossSection() float64 {
	return e.Dimensions.Width * e.Dimensions.Height
}

// Generate derives structural elements from a synthesized floor plan.
// Every room yields one load-bearing wall along its width, and every plan
// yields one square foundation slab sized from the total area.
func Generate(fp *plan.FloorPlan, req *plan.Requirements) []Element {
	ceiling := req.Constraints.CeilingHeightOrDefault()

	elements := make([]Element, 0, len(fp.Rooms)+1)
	for _, room := range fp.Rooms {
		elements = append(elements, Element{
			ID:       uuid.NewString(),
			Type:     ElementWall,
			Material: DefaultWallMaterial,
			Dimensions: plan.Dimensions{
				Length: room.Dimensions.Width,
				Width:  WallThickness,
				Height: ceiling,
			},
			Position:   Position{X: room.Position.X, Y: room.Position.Y},
			Properties: map[string]any{"loadBearing": true},
		})
	}

	side := foundationSide(fp.TotalArea)
	elements = append(elements, Element{
		ID:       uuid.NewString(),
		Type:     ElementFoundation,
		Material: FoundationMaterial,
		Dimensions: plan.Dimensions{
			Length: side,
			Width:  side,
			Height: FoundationDepth,
		},
		Properties: map[string]any{"loadBearing": true},
	})

	return elements
}

func foundationSide(totalArea float64) float64 {
	if totalArea <= 0 {
		return 0
	}
	return math.Sqrt(totalArea) * FoundationScale
}
