package generator

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/planforge-xyz/go-planforge/analysis"
	"github.com/planforge-xyz/go-planforge/artifact"
	"github.com/planforge-xyz/go-planforge/catalog"
	"github.com/planforge-xyz/go-planforge/geometry"
	"github.com/planforge-xyz/go-planforge/materials"
	"github.com/planforge-xyz/go-planforge/plan"
	"github.com/planforge-xyz/go-planforge/structural"
)

// ModelOptions configures 3D model generation.
type ModelOptions struct {
	// Height is the extrusion height in feet. Zero selects the ceiling
	// height resolved from the requirements.
	Height            float64
	IncludeRoof       bool // accepted for interface parity; roofs are not generated
	IncludeFoundation bool
	LevelOfDetail     string // descriptive only, recorded in the artifact

	Catalog *catalog.Catalog
	Logger  zerolog.Logger
}

// DefaultModelOptions returns the standard 3D model options.
func DefaultModelOptions() *ModelOptions {
	return &ModelOptions{
		IncludeFoundation: true,
		LevelOfDetail:     "medium",
		Catalog:           catalog.Default(),
		Logger:            zerolog.Nop(),
	}
}

// ModelResult bundles everything produced for one 3D model generation.
type ModelResult struct {
	Model3D            *geometry.Model3D  `json:"model3d"`
	StructuralAnalysis *analysis.Analysis `json:"structuralAnalysis"`
	MaterialBreakdown  []materials.Usage  `json:"materialBreakdown"`
	CADArtifact        *artifact.Artifact `json:"cadArtifact"`
}

// Generate3DModel extrudes an existing floor plan into a 3D model, runs the
// simplified structural analysis over its derived elements and totals the
// material usage.
func Generate3DModel(fp *plan.FloorPlan, req *plan.Requirements, opts *ModelOptions) (*ModelResult, error) {
	if opts == nil {
		opts = DefaultModelOptions()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if fp == nil || len(fp.Rooms) == 0 {
		return nil, fmt.Errorf("%w: floor plan has no rooms", plan.ErrInvalidRequirement)
	}

	height := opts.Height
	if height <= 0 {
		height = req.Constraints.CeilingHeightOrDefault()
	}

	model := geometry.Extrude(fp, height)

	elements := structural.Generate(fp, req)
	if !opts.IncludeFoundation {
		elements = withoutType(elements, structural.ElementFoundation)
	}

	structuralAnalysis, err := analysis.Analyze(elements, req)
	if err != nil {
		return nil, err
	}

	result := &ModelResult{
		Model3D:            model,
		StructuralAnalysis: structuralAnalysis,
		MaterialBreakdown:  materials.Breakdown(elements, cat.Materials),
	}

	result.CADArtifact = artifact.NewBuilder(modelName(req, height), artifact.Type3DModel).
		WithGeometry(geometry.SummarizeElements(elements)).
		WithProvenance(artifact.Provenance{
			GeneratedBy:  "parametric-extrusion",
			BuildingCode: req.BuildingCode,
			Style:        req.Style,
		}).
		WithProperty("height", height).
		WithProperty("levelOfDetail", opts.LevelOfDetail).
		WithProperty("safetyFactor", structuralAnalysis.SafetyFactor).
		WithProperty("isStable", structuralAnalysis.IsStable).
		Build()

	return result, nil
}

func withoutType(elements []structural.Element, drop structural.ElementType) []structural.Element {
	out := make([]structural.Element, 0, len(elements))
	for _, el := range elements {
		if el.Type != drop {
			out = append(out, el)
		}
	}
	return out
}

func modelName(req *plan.Requirements, height float64) string {
	style := req.Style
	if style == "" {
		style = "unstyled"
	}
	return fmt.Sprintf("%s 3D model (%.1f ft)", style, height)
}
