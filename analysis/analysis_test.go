package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/planforge-xyz/go-planforge/plan"
	"github.com/planforge-xyz/go-planforge/structural"
)

func testElements() []structural.Element {
	return []structural.Element{
		{
			ID:         "wall-1",
			Type:       structural.ElementWall,
			Dimensions: plan.Dimensions{Length: 15, Width: 0.5, Height: 9},
		},
		{
			ID:         "foundation-1",
			Type:       structural.ElementFoundation,
			Dimensions: plan.Dimensions{Length: 40, Width: 40, Height: 0.5},
		},
	}
}

func testRequirements() *plan.Requirements {
	return &plan.Requirements{
		TotalArea: 1200,
		Rooms: []plan.RoomSpec{
			{Type: "bedroom", Area: 300, Required: true},
		},
	}
}

func TestComputeLoads(t *testing.T) {
	loads := ComputeLoads(1200)
	if loads.Dead != 60000 {
		t.Errorf("Expected dead load 60000, got %g", loads.Dead)
	}
	if loads.Live != 48000 {
		t.Errorf("Expected live load 48000, got %g", loads.Live)
	}
	if loads.Wind != 20 {
		t.Errorf("Expected wind load 20, got %g", loads.Wind)
	}
	if loads.Seismic != 15 {
		t.Errorf("Expected seismic load 15, got %g", loads.Seismic)
	}
}

func TestAnalyze(t *testing.T) {
	elements := testElements()
	result, err := Analyze(elements, testRequirements())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(result.Stress) != len(elements) {
		t.Fatalf("Expected %d stress values, got %d", len(elements), len(result.Stress))
	}
	if len(result.Displacement) != len(elements) {
		t.Fatalf("Expected %d displacement values, got %d", len(elements), len(result.Displacement))
	}

	loads := ComputeLoads(1200)
	for i, el := range elements {
		wantStress := loads.Dead / el.CrossSection()
		if math.Abs(result.Stress[i]-wantStress) > 1e-9 {
			t.Errorf("Element %d: expected stress %g, got %g", i, wantStress, result.Stress[i])
		}
		wantDisp := loads.Live * el.Volume() * 0.001
		if math.Abs(result.Displacement[i]-wantDisp) > 1e-9 {
			t.Errorf("Element %d: expected displacement %g, got %g", i, wantDisp, result.Displacement[i])
		}
	}

	wantSafety := MaterialStrengthPSI / result.MaxStress
	if math.Abs(result.SafetyFactor-wantSafety) > 1e-9 {
		t.Errorf("Expected safety factor %g, got %g", wantSafety, result.SafetyFactor)
	}
}

func TestStabilityThreshold(t *testing.T) {
	result, err := Analyze(testElements(), testRequirements())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.IsStable != (result.SafetyFactor > 1.5) {
		t.Errorf("Expected isStable == (safetyFactor > 1.5), got stable=%v factor=%g",
			result.IsStable, result.SafetyFactor)
	}
}

func TestLowSafetyFactorRecommendations(t *testing.T) {
	// A tiny cross-section drives stress up and the safety factor below
	// the threshold.
	elements := []structural.Element{
		{ID: "wall-1", Dimensions: plan.Dimensions{Length: 15, Width: 0.1, Height: 1}},
	}
	result, err := Analyze(elements, testRequirements())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.IsStable {
		t.Fatalf("Expected unstable result, safety factor %g", result.SafetyFactor)
	}
	if len(result.Recommendations) == 0 {
		t.Error("Expected sizing recommendations for an unstable structure")
	}
}

func TestModernStyleRecommendation(t *testing.T) {
	req := testRequirements()
	req.Style = "modern"
	result, err := Analyze(testElements(), req)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	found := false
	for _, rec := range result.Recommendations {
		if strings.Contains(rec, "engineered") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected an engineered-materials recommendation for modern style, got %v", result.Recommendations)
	}
}

func TestDegenerateGeometry(t *testing.T) {
	elements := []structural.Element{
		{ID: "wall-1", Dimensions: plan.Dimensions{Length: 15, Width: 0, Height: 9}},
	}
	result, err := Analyze(elements, testRequirements())
	if err == nil {
		t.Fatalf("Expected degenerate geometry error, got result %+v", result)
	}
	if !errors.Is(err, plan.ErrDegenerateGeometry) {
		t.Errorf("Expected ErrDegenerateGeometry, got %v", err)
	}
}

func TestNoNonFiniteValues(t *testing.T) {
	result, err := Analyze(testElements(), testRequirements())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	for i, v := range result.Stress {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Stress %d is non-finite: %g", i, v)
		}
	}
	for i, v := range result.Displacement {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Displacement %d is non-finite: %g", i, v)
		}
	}
	if math.IsNaN(result.SafetyFactor) || math.IsInf(result.SafetyFactor, 0) {
		t.Errorf("Safety factor is non-finite: %g", result.SafetyFactor)
	}
}

func TestAnalyzeEmptyElements(t *testing.T) {
	if _, err := Analyze(nil, testRequirements()); err == nil {
		t.Error("Expected error for empty element list")
	}
}

func TestZeroAreaRejected(t *testing.T) {
	req := testRequirements()
	req.TotalArea = 0
	_, err := Analyze(testElements(), req)
	if err == nil {
		t.Fatal("Expected error for zero total area")
	}
	if !errors.Is(err, plan.ErrDegenerateGeometry) {
		t.Errorf("Expected ErrDegenerateGeometry, got %v", err)
	}
}
