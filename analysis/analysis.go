// Package analysis implements a simplified structural analysis over
// generated elements: load estimates, stress and displacement
// distributions, and a safety factor. The formulas are deliberate linear
// heuristics, not a finite-element model, and must not be presented as
// engineering-grade results.
package analysis

import (
	"fmt"

	"github.com/planforge-xyz/go-planforge/plan"
	"github.com/planforge-xyz/go-planforge/structural"
)

// Fixed engineering constants. Loads are per square foot of total area;
// wind and seismic are flat values in the same units.
const (
	DeadLoadPSF = 50.0
	LiveLoadPSF = 40.0
	WindLoadPSF = 20.0
	SeismicPSF  = 15.0

	// MaterialStrengthPSI is the fixed reference strength used for the
	// safety factor.
	MaterialStrengthPSI = 4000.0

	// StabilityThreshold is the safety factor above which a structure is
	// considered stable. Fixed, not configurable.
	StabilityThreshold = 1.5

	// displacementCoeff scales live load times element volume into a
	// displacement estimate.
	displacementCoeff = 0.001
)

// Loads holds the computed design loads for a plan.
type Loads struct {
	Dead    float64 `json:"dead"`
	Live    float64 `json:"live"`
	Wind    float64 `json:"wind"`
	Seismic float64 `json:"seismic"`
}

// ComputeLoads derives design loads from the total floor area.
func ComputeLoads(totalArea float64) Loads {
	return Loads{
		Dead:    totalArea * DeadLoadPSF,
		Live:    totalArea * LiveLoadPSF,
		Wind:    WindLoadPSF,
		Seismic: SeismicPSF,
	}
}

// Analysis is the result of a simplified structural analysis.
type Analysis struct {
	Stress          []float64 `json:"stress"`       // per element, psi
	Displacement    []float64 `json:"displacement"` // per element
	SafetyFactor    float64   `json:"safetyFactor"`
	MaxStress       float64   `json:"maxStress"`
	MaxDisplacement float64   `json:"maxDisplacement"`
	IsStable        bool      `json:"isStable"`
	Recommendations []string  `json:"recommendations"`
}

// Analyze computes stress and displacement distributions for the given
// elements and derives a safety factor against the fixed material strength.
//
// Elements with a zero cross-section are rejected with ErrDegenerateGeometry
// before any stress is computed, so the result never carries NaN or Inf.
func Analyze(elements []structural.Element, req *plan.Requirements) (*Analysis, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: no structural elements to analyze", plan.ErrInvalidRequirement)
	}
	for _, el := range elements {
		if el.CrossSection() <= 0 {
			return nil, fmt.Errorf("%w: element %s (%s) has zero cross-section %gx%g",
				plan.ErrDegenerateGeometry, el.ID, el.Type, el.Dimensions.Width, el.Dimensions.Height)
		}
	}

	loads := ComputeLoads(req.TotalArea)

	stress := make([]float64, len(elements))
	displacement := make([]float64, len(elements))
	maxStress, maxDisp := 0.0, 0.0
	for i, el := range elements {
		stress[i] = loads.Dead / el.CrossSection()
		displacement[i] = loads.Live * el.Volume() * displacementCoeff
		if stress[i] > maxStress {
			maxStress = stress[i]
		}
		if displacement[i] > maxDisp {
			maxDisp = displacement[i]
		}
	}

	// A zero stress field would push the safety factor to +Inf; reject it
	// as degenerate input rather than returning a non-finite value.
	if maxStress <= 0 {
		return nil, fmt.Errorf("%w: computed zero stress for all elements (total area %g)",
			plan.ErrDegenerateGeometry, req.TotalArea)
	}
	safetyFactor := MaterialStrengthPSI / maxStress

	result := &Analysis{
		Stress:          stress,
		Displacement:    displacement,
		SafetyFactor:    safetyFactor,
		MaxStress:       maxStress,
		MaxDisplacement: maxDisp,
		IsStable:        safetyFactor > StabilityThreshold,
		Recommendations: recommendations(safetyFactor, req.Style),
	}
	return result, nil
}

// recommendations builds advisory notes from the safety factor and style.
func recommendations(safetyFactor float64, style string) []string {
	var recs []string
	if safetyFactor < StabilityThreshold {
		recs = append(recs,
			"Increase member sizing to raise the safety factor above 1.5",
			"Add supplemental supports under the most stressed elements",
		)
	}
	if style == "modern" {
		recs = append(recs,
			"Consider engineered materials for long clear spans typical of modern designs",
		)
	}
	return recs
}
