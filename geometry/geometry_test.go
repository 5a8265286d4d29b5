package geometry

import (
	"math"
	"testing"

	"github.com/planforge-xyz/go-planforge/plan"
	"github.com/planforge-xyz/go-planforge/structural"
)

func testFloorPlan() *plan.FloorPlan {
	return &plan.FloorPlan{
		TotalArea: 1200,
		Rooms: []plan.RoomLayout{
			{Type: "bedroom", Area: 300, Dimensions: plan.Dimensions{Width: 15, Length: 20, Height: 9}},
			{Type: "bathroom", Area: 100, Dimensions: plan.Dimensions{Width: 10, Length: 10, Height: 9}, Position: plan.Position{X: 15}},
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testFloorPlan())
	if s.Vertices != 8 {
		t.Errorf("Expected 8 vertices (4 per room), got %d", s.Vertices)
	}
	if s.Faces != 2 {
		t.Errorf("Expected 2 faces (1 per room), got %d", s.Faces)
	}
	if s.Edges != 8 {
		t.Errorf("Expected 8 edges (4 per room), got %d", s.Edges)
	}
	if s.Bounds.MinX != 0 || s.Bounds.MinY != 0 {
		t.Errorf("Expected origin-anchored bounds, got %+v", s.Bounds)
	}
	if s.Bounds.MaxX != 25 {
		t.Errorf("Expected max x 25, got %g", s.Bounds.MaxX)
	}
	if s.Bounds.MaxY != 20 {
		t.Errorf("Expected max y 20, got %g", s.Bounds.MaxY)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(&plan.FloorPlan{})
	if s.Vertices != 0 || s.Faces != 0 || s.Edges != 0 {
		t.Errorf("Expected zero counts for an empty plan, got %+v", s)
	}
}

func TestExtrude(t *testing.T) {
	model := Extrude(testFloorPlan(), 9)

	if model.Height != 9 {
		t.Errorf("Expected height 9, got %g", model.Height)
	}
	if len(model.Rooms) != 2 {
		t.Fatalf("Expected 2 room volumes, got %d", len(model.Rooms))
	}
	if math.Abs(model.Rooms[0].Volume-2700) > 1e-9 {
		t.Errorf("Expected bedroom volume 2700, got %g", model.Rooms[0].Volume)
	}
	if math.Abs(model.Rooms[1].Volume-900) > 1e-9 {
		t.Errorf("Expected bathroom volume 900, got %g", model.Rooms[1].Volume)
	}

	// Eight vertices, six faces, twelve edges per prism.
	if model.Geometry.Vertices != 16 {
		t.Errorf("Expected 16 vertices, got %d", model.Geometry.Vertices)
	}
	if model.Geometry.Faces != 12 {
		t.Errorf("Expected 12 faces, got %d", model.Geometry.Faces)
	}
	if model.Geometry.Edges != 24 {
		t.Errorf("Expected 24 edges, got %d", model.Geometry.Edges)
	}

	b := model.Geometry.Bounds
	if b.MaxX != 25 || b.MaxY != 20 || b.MaxZ != 9 {
		t.Errorf("Expected bounds 25x20x9, got %+v", b)
	}
}

func TestSummarizeElements(t *testing.T) {
	elements := []structural.Element{
		{Dimensions: plan.Dimensions{Length: 15, Width: 0.5, Height: 9}},
		{
			Dimensions: plan.Dimensions{Length: 40, Width: 40, Height: 0.5},
			Position:   structural.Position{Z: -0.5},
		},
	}
	s := SummarizeElements(elements)
	if s.Vertices != 16 || s.Faces != 12 || s.Edges != 24 {
		t.Errorf("Expected prism counts for 2 elements, got %+v", s)
	}
	if s.Bounds.MaxX != 40 {
		t.Errorf("Expected max x 40, got %g", s.Bounds.MaxX)
	}
	if s.Bounds.MaxY != 40 {
		t.Errorf("Expected max y 40, got %g", s.Bounds.MaxY)
	}
	if s.Bounds.MaxZ != 9 {
		t.Errorf("Expected max z 9, got %g", s.Bounds.MaxZ)
	}
}
