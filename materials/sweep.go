package materials

import (
	"sort"

	"github.com/planforge-xyz/go-planforge/catalog"
	"github.com/planforge-xyz/go-planforge/structural"
)

// Comparison holds one optimization run per objective, plus a ranking.
type Comparison struct {
	Results map[string]*OptimizationResult `json:"results"` // keyed by objective name
	Ranking []RankedObjective              `json:"ranking"`
}

// RankedObjective summarizes one objective's outcome for ranking.
type RankedObjective struct {
	Objective           string  `json:"objective"`
	PrimaryMaterial     string  `json:"primaryMaterial"`
	TotalCost           float64 `json:"totalCost"`
	SustainabilityScore float64 `json:"sustainabilityScore"`
}

// CompareObjectives runs the optimizer once per objective and ranks the
// outcomes by total cost ascending, breaking ties by sustainability score
// descending. Useful for surfacing the trade-off space to a caller before
// committing to one objective.
func CompareObjectives(elements []structural.Element, cat catalog.Materials) (*Comparison, error) {
	cmp := &Comparison{
		Results: make(map[string]*OptimizationResult, len(Objectives())),
	}
	for _, obj := range Objectives() {
		result, err := Optimize(elements, obj, cat)
		if err != nil {
			return nil, err
		}
		cmp.Results[obj.String()] = result
		cmp.Ranking = append(cmp.Ranking, RankedObjective{
			Objective:           obj.String(),
			PrimaryMaterial:     result.PrimaryMaterial,
			TotalCost:           result.TotalCost,
			SustainabilityScore: result.SustainabilityScore,
		})
	}

	sort.SliceStable(cmp.Ranking, func(i, j int) bool {
		if cmp.Ranking[i].TotalCost != cmp.Ranking[j].TotalCost {
			return cmp.Ranking[i].TotalCost < cmp.Ranking[j].TotalCost
		}
		return cmp.Ranking[i].SustainabilityScore > cmp.Ranking[j].SustainabilityScore
	})
	return cmp, nil
}
