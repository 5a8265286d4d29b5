// Package materials selects construction materials for generated structural
// elements under a chosen optimization objective and derives a heuristic
// life-cycle assessment for the selection.
package materials

import (
	"fmt"

	"github.com/planforge-xyz/go-planforge/catalog"
	"github.com/planforge-xyz/go-planforge/plan"
	"github.com/planforge-xyz/go-planforge/structural"
)

// Objective is the closed set of optimization objectives. Values outside
// the set are a construction-time error via ParseObjective, never a silent
// fallback.
type Objective int

const (
	ObjectiveSpace Objective = iota
	ObjectiveCost
	ObjectiveSustainability
	ObjectiveAccessibility
)

// String returns the wire name of the objective.
func (o Objective) String() string {
	switch o {
	case ObjectiveSpace:
		return "space"
	case ObjectiveCost:
		return "cost"
	case ObjectiveSustainability:
		return "sustainability"
	case ObjectiveAccessibility:
		return "accessibility"
	default:
		return fmt.Sprintf("objective(%d)", int(o))
	}
}

// Objectives lists every supported objective.
func Objectives() []Objective {
	return []Objective{ObjectiveSpace, ObjectiveCost, ObjectiveSustainability, ObjectiveAccessibility}
}

// ParseObjective resolves an objective name. The empty string resolves to
// the default objective, space; any other unrecognized name is an error.
func ParseObjective(name string) (Objective, error) {
	switch name {
	case "", "space":
		return ObjectiveSpace, nil
	case "cost":
		return ObjectiveCost, nil
	case "sustainability":
		return ObjectiveSustainability, nil
	case "accessibility":
		return ObjectiveAccessibility, nil
	default:
		return 0, fmt.Errorf("%w: %q", plan.ErrUnsupportedObjective, name)
	}
}

// Life-cycle heuristic constants. These are deliberate linear heuristics
// derived from the sustainability score, kept literal for parity with the
// shipped behavior.
const (
	lcaCarbonPerScore     = 0.1
	lcaEfficiencyPerScore = 0.8
	lcaMaintenanceRate    = 0.05
	lcaExpectedLifespan   = 50.0
	lcaEnvironmentalLabel = "low"

	// sustainabilityAlternativeFloor is the minimum score for a material to
	// qualify as an alternative under the sustainability objective.
	sustainabilityAlternativeFloor = 7.0
)

// LifeCycleAssessment is a heuristic environmental and cost summary.
type LifeCycleAssessment struct {
	CarbonFootprint     float64 `json:"carbonFootprint"`
	EnergyEfficiency    float64 `json:"energyEfficiency"`
	MaintenanceCost     float64 `json:"maintenanceCost"`
	ExpectedLifespan    float64 `json:"expectedLifespan"` // years
	EnvironmentalImpact string  `json:"environmentalImpact"`
}

// OptimizationResult is the outcome of material selection.
type OptimizationResult struct {
	Objective           string              `json:"objective"`
	PrimaryMaterial     string              `json:"primaryMaterial"`
	Alternatives        []string            `json:"alternatives"`
	TotalCost           float64             `json:"totalCost"`
	SustainabilityScore float64             `json:"sustainabilityScore"`
	LifeCycleAssessment LifeCycleAssessment `json:"lifeCycleAssessment"`
}

// Optimize picks a primary material and alternatives for the elements under
// the given objective. The element list only contributes its count (total
// cost scales with it); an empty list is a valid selection over the catalog.
func Optimize(elements []structural.Element, objective Objective, cat catalog.Materials) (*OptimizationResult, error) {
	if len(cat) == 0 {
		return nil, fmt.Errorf("material catalog is empty")
	}

	var primary catalog.Material
	var alternatives []string

	switch objective {
	case ObjectiveCost:
		primary = pick(cat, func(a, b catalog.Material) bool {
			return a.Properties.Cost < b.Properties.Cost
		})
		// Alternatives are positional, deliberately not re-sorted by cost.
		alternatives = firstNamesExcluding(cat, primary.Key, 2)
	case ObjectiveSustainability:
		primary = pick(cat, func(a, b catalog.Material) bool {
			return a.Properties.Sustainability > b.Properties.Sustainability
		})
		for _, m := range cat {
			if m.Key != primary.Key && m.Properties.Sustainability >= sustainabilityAlternativeFloor {
				alternatives = append(alternatives, m.Name)
			}
		}
	case ObjectiveAccessibility:
		if m, ok := cat.ByKey(structural.DefaultWallMaterial); ok {
			primary = m
		} else {
			primary = cat[0]
		}
		for _, m := range cat {
			if m.Key != primary.Key && m.Properties.FireRating != "none" {
				alternatives = append(alternatives, m.Name)
			}
		}
	case ObjectiveSpace:
		primary = pick(cat, func(a, b catalog.Material) bool {
			return a.Properties.Density < b.Properties.Density
		})
		alternatives = firstNames(cat, 2)
	default:
		return nil, fmt.Errorf("%w: %s", plan.ErrUnsupportedObjective, objective)
	}

	totalCost := float64(len(elements)) * primary.Properties.Cost
	score := primary.Properties.Sustainability

	return &OptimizationResult{
		Objective:           objective.String(),
		PrimaryMaterial:     primary.Name,
		Alternatives:        alternatives,
		TotalCost:           totalCost,
		SustainabilityScore: score,
		LifeCycleAssessment: assess(score, totalCost),
	}, nil
}

// assess derives the life-cycle assessment from the chosen material's
// sustainability score and the selection's total cost.
func assess(score, totalCost float64) LifeCycleAssessment {
	return LifeCycleAssessment{
		CarbonFootprint:     score * lcaCarbonPerScore,
		EnergyEfficiency:    score * lcaEfficiencyPerScore,
		MaintenanceCost:     totalCost * lcaMaintenanceRate,
		ExpectedLifespan:    lcaExpectedLifespan,
		EnvironmentalImpact: lcaEnvironmentalLabel,
	}
}

// pick returns the catalog entry winning the pairwise comparison; the first
// entry wins ties, keeping selection deterministic.
func pick(cat catalog.Materials, better func(a, b catalog.Material) bool) catalog.Material {
	best := cat[0]
	for _, m := range cat[1:] {
		if better(m, best) {
			best = m
		}
	}
	return best
}

// firstNames returns the display names of the first n catalog entries.
func firstNames(cat catalog.Materials, n int) []string {
	var out []string
	for _, m := range cat {
		if len(out) == n {
			break
		}
		out = append(out, m.Name)
	}
	return out
}

// firstNamesExcluding returns the first n entry names, skipping one key.
func firstNamesExcluding(cat catalog.Materials, excludeKey string, n int) []string {
	var out []string
	for _, m := range cat {
		if len(out) == n {
			break
		}
		if m.Key == excludeKey {
			continue
		}
		out = append(out, m.Name)
	}
	return out
}
