package structural

import (
	"math"
	"testing"

	"github.com/planforge-xyz/go-planforge/plan"
)

func testPlan() (*plan.FloorPlan, *plan.Requirements) {
	req := &plan.Requirements{
		TotalArea: 1200,
		Rooms: []plan.RoomSpec{
			{Type: "bedroom", Area: 300, Required: true, Priority: plan.PriorityHigh},
			{Type: "bathroom", Area: 100, Required: true, Priority: plan.PriorityHigh},
		},
		Constraints: plan.Constraints{CeilingHeight: 9},
	}
	fp := &plan.FloorPlan{
		TotalArea: 1200,
		Rooms: []plan.RoomLayout{
			{Type: "bedroom", Area: 300, Dimensions: plan.Dimensions{Width: 15.8, Length: 19.0, Height: 9}},
			{Type: "bathroom", Area: 100, Dimensions: plan.Dimensions{Width: 9.1, Length: 11.0, Height: 9}, Position: plan.Position{X: 15.8}},
		},
	}
	return fp, req
}

func TestGenerateWalls(t *testing.T) {
	fp, req := testPlan()
	elements := Generate(fp, req)

	// One wall per room plus the foundation slab.
	if len(elements) != 3 {
		t.Fatalf("Expected 3 elements, got %d", len(elements))
	}

	for i, room := range fp.Rooms {
		wall := elements[i]
		if wall.Type != ElementWall {
			t.Errorf("Element %d: expected wall, got %s", i, wall.Type)
		}
		if wall.Material != DefaultWallMaterial {
			t.Errorf("Wall %d: expected material %s, got %s", i, DefaultWallMaterial, wall.Material)
		}
		if wall.Dimensions.Length != room.Dimensions.Width {
			t.Errorf("Wall %d: expected length %g (room width), got %g", i, room.Dimensions.Width, wall.Dimensions.Length)
		}
		if wall.Dimensions.Width != WallThickness {
			t.Errorf("Wall %d: expected thickness %g, got %g", i, WallThickness, wall.Dimensions.Width)
		}
		if wall.Dimensions.Height != 9 {
			t.Errorf("Wall %d: expected height 9, got %g", i, wall.Dimensions.Height)
		}
		if lb, ok := wall.Properties["loadBearing"].(bool); !ok || !lb {
			t.Errorf("Wall %d: expected loadBearing true", i)
		}
		if wall.Position.X != room.Position.X || wall.Position.Y != room.Position.Y {
			t.Errorf("Wall %d: expected position at room origin", i)
		}
	}
}

func TestGenerateFoundation(t *testing.T) {
	fp, req := testPlan()
	elements := Generate(fp, req)

	foundation := elements[len(elements)-1]
	if foundation.Type != ElementFoundation {
		t.Fatalf("Expected foundation last, got %s", foundation.Type)
	}
	if foundation.Material != FoundationMaterial {
		t.Errorf("Expected material %s, got %s", FoundationMaterial, foundation.Material)
	}

	wantSide := math.Sqrt(1200) * FoundationScale
	if math.Abs(foundation.Dimensions.Length-wantSide) > 1e-9 {
		t.Errorf("Expected side %g, got %g", wantSide, foundation.Dimensions.Length)
	}
	if foundation.Dimensions.Width != foundation.Dimensions.Length {
		t.Error("Expected square foundation footprint")
	}
	if foundation.Dimensions.Height != FoundationDepth {
		t.Errorf("Expected depth %g, got %g", FoundationDepth, foundation.Dimensions.Height)
	}
}

func TestGenerateDefaultCeilingHeight(t *testing.T) {
	fp, req := testPlan()
	req.Constraints.CeilingHeight = 0
	elements := Generate(fp, req)
	if elements[0].Dimensions.Height != plan.DefaultCeilingHeight {
		t.Errorf("Expected default ceiling height %g, got %g", plan.DefaultCeilingHeight, elements[0].Dimensions.Height)
	}
}

func TestUniqueIDs(t *testing.T) {
	fp, req := testPlan()
	elements := Generate(fp, req)
	seen := make(map[string]bool)
	for _, el := range elements {
		if el.ID == "" {
			t.Error("Expected non-empty element ID")
		}
		if seen[el.ID] {
			t.Errorf("Duplicate element ID %s", el.ID)
		}
		seen[el.ID] = true
	}
}

func TestVolumeAndCrossSection(t *testing.T) {
	el := Element{Dimensions: plan.Dimensions{Length: 10, Width: 0.5, Height: 9}}
	if got := el.Volume(); math.Abs(got-45) > 1e-9 {
		t.Errorf("Expected volume 45, got %g", got)
	}
	if got := el.CrossSection(); math.Abs(got-4.5) > 1e-9 {
		t.Errorf("Expected cross-section 4.5, got %g", got)
	}
}
