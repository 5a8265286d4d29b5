package compliance

import (
	"strings"
	"testing"

	"github.com/planforge-xyz/go-planforge/catalog"
	"github.com/planforge-xyz/go-planforge/plan"
)

func compliantPlan() (*plan.FloorPlan, *plan.Requirements) {
	req := &plan.Requirements{
		TotalArea: 1200,
		Rooms: []plan.RoomSpec{
			{Type: "bedroom", Area: 300, Required: true},
		},
		BuildingCode: "IBC-2021",
	}
	fp := &plan.FloorPlan{
		TotalArea: 1200,
		Rooms: []plan.RoomLayout{
			{Type: "bedroom", Area: 300, Dimensions: plan.Dimensions{Width: 15.8, Length: 19, Height: 9}},
			{Type: "bathroom", Area: 100, Dimensions: plan.Dimensions{Width: 9.1, Length: 11, Height: 9}},
		},
		Corridors: []plan.Corridor{
			{Width: 3, Connections: []string{"bedroom", "bathroom"}},
		},
	}
	return fp, req
}

func TestCheckCompliant(t *testing.T) {
	fp, req := compliantPlan()
	report := Check(fp, req, catalog.DefaultCodes())

	if report.Status != StatusCompliant {
		t.Errorf("Expected status %s, got %s (issues: %v)", StatusCompliant, report.Status, report.Issues)
	}
	if len(report.Issues) != 0 {
		t.Errorf("Expected no issues, got %v", report.Issues)
	}
	if len(report.Compliant) == 0 {
		t.Error("Expected compliant rule descriptions to be recorded")
	}
	if len(report.Standards) != 1 || report.Standards[0] != "IBC-2021" {
		t.Errorf("Expected standards [IBC-2021], got %v", report.Standards)
	}
}

func TestCheckUnknownCode(t *testing.T) {
	fp, req := compliantPlan()
	req.BuildingCode = "LOCAL-9999"
	report := Check(fp, req, catalog.DefaultCodes())

	// An unknown code has no rules to violate, so the report is trivially
	// compliant with empty issue and compliant lists.
	if report.Status != StatusCompliant {
		t.Errorf("Expected status %s, got %s", StatusCompliant, report.Status)
	}
	if len(report.Issues) != 0 {
		t.Errorf("Expected no issues, got %v", report.Issues)
	}
	if len(report.Compliant) != 0 {
		t.Errorf("Expected no compliant entries, got %v", report.Compliant)
	}
}

func TestCheckRoomAreaViolation(t *testing.T) {
	fp, req := compliantPlan()
	fp.Rooms = append(fp.Rooms, plan.RoomLayout{
		Type: "closet", Area: 20,
		Dimensions: plan.Dimensions{Width: 4, Length: 5, Height: 9},
	})
	report := Check(fp, req, catalog.DefaultCodes())

	if report.Status != StatusNonCompliant {
		t.Fatalf("Expected status %s, got %s", StatusNonCompliant, report.Status)
	}
	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "Minimum room area") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a minimum room area issue, got %v", report.Issues)
	}
}

func TestCheckCorridorWidthViolation(t *testing.T) {
	fp, req := compliantPlan()
	fp.Corridors[0].Width = 2
	report := Check(fp, req, catalog.DefaultCodes())

	if report.Status != StatusNonCompliant {
		t.Fatalf("Expected status %s, got %s", StatusNonCompliant, report.Status)
	}
}

func TestCheckCeilingHeightViolation(t *testing.T) {
	fp, req := compliantPlan()
	fp.Rooms[0].Dimensions.Height = 6
	report := Check(fp, req, catalog.DefaultCodes())

	if report.Status != StatusNonCompliant {
		t.Fatalf("Expected status %s, got %s", StatusNonCompliant, report.Status)
	}
}

func TestCheckZeroHeightNotApplicable(t *testing.T) {
	fp, req := compliantPlan()
	for i := range fp.Rooms {
		fp.Rooms[i].Dimensions.Height = 0
	}
	report := Check(fp, req, catalog.DefaultCodes())
	if report.Status != StatusCompliant {
		t.Errorf("Expected zero-height rooms to skip the ceiling rule, got issues %v", report.Issues)
	}
}

func TestIssueFormat(t *testing.T) {
	fp, req := compliantPlan()
	fp.Rooms = []plan.RoomLayout{
		{Type: "closet", Area: 20, Dimensions: plan.Dimensions{Width: 4, Length: 5, Height: 9}},
	}
	codes := catalog.Codes{
		"IBC-2021": {
			{
				Description: "Habitable rooms",
				Category:    "space",
				Requirement: "Minimum room area",
				Value:       70,
				Unit:        " sq ft",
			},
		},
	}
	report := Check(fp, req, codes)
	if len(report.Issues) != 1 {
		t.Fatalf("Expected 1 issue, got %v", report.Issues)
	}
	want := "Habitable rooms: Minimum room area 70 sq ft"
	if report.Issues[0] != want {
		t.Errorf("Expected issue %q, got %q", want, report.Issues[0])
	}
}

func TestUnrecognizedRuleSatisfied(t *testing.T) {
	fp, req := compliantPlan()
	codes := catalog.Codes{
		"IBC-2021": {
			{
				Description: "Egress windows",
				Category:    "safety",
				Requirement: "Minimum egress width",
				Value:       20,
			},
			{
				Description: "Fire rating",
				Category:    "safety",
				Requirement: "Minimum fire rating",
				Value:       "1-hour",
			},
		},
	}
	report := Check(fp, req, codes)
	if report.Status != StatusCompliant {
		t.Errorf("Expected unrecognized rules to pass, got issues %v", report.Issues)
	}
	if len(report.Compliant) != 2 {
		t.Errorf("Expected 2 compliant entries, got %v", report.Compliant)
	}
}

func TestExpressionRule(t *testing.T) {
	fp, req := compliantPlan()
	req.BuildingCode = "ADA-2010"
	report := Check(fp, req, catalog.DefaultCodes())
	if report.Status != StatusCompliant {
		t.Fatalf("Expected compliant, got issues %v", report.Issues)
	}

	// Shrink the bathroom below the accessible minimum.
	fp.Rooms[1].Area = 25
	report = Check(fp, req, catalog.DefaultCodes())
	if report.Status != StatusNonCompliant {
		t.Fatalf("Expected non-compliant, got %s", report.Status)
	}
	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "bathroom") || strings.Contains(issue, "Accessible") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected an accessibility issue, got %v", report.Issues)
	}
}

func TestExpressionCompileFailureSatisfied(t *testing.T) {
	fp, req := compliantPlan()
	codes := catalog.Codes{
		"IBC-2021": {
			{
				Description: "Broken rule",
				Category:    "misc",
				Requirement: "Custom",
				Expression:  "room.area >>> bogus",
			},
		},
	}
	report := Check(fp, req, codes)
	if report.Status != StatusCompliant {
		t.Errorf("Expected malformed expressions to degrade to satisfied, got %v", report.Issues)
	}
}

func TestExpressionPlanFacts(t *testing.T) {
	fp, req := compliantPlan()
	codes := catalog.Codes{
		"IBC-2021": {
			{
				Description: "Plan size",
				Category:    "space",
				Requirement: "Custom",
				Expression:  "plan.totalArea >= 1000.0 && plan.roomCount >= 2",
			},
		},
	}
	report := Check(fp, req, codes)
	if report.Status != StatusCompliant {
		t.Errorf("Expected plan-level expression to hold, got %v", report.Issues)
	}

	fp.TotalArea = 500
	report = Check(fp, req, codes)
	if report.Status != StatusNonCompliant {
		t.Errorf("Expected plan-level expression to fail, got %s", report.Status)
	}
}
