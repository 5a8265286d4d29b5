// Package generator exposes the two generation entry points: synthesizing a
// complete floor plan bundle from requirements, and extruding an existing
// plan into a 3D model with structural analysis. Both are pure over their
// inputs; invalid requirements are rejected before any component runs, so
// callers never receive partial artifacts.
package generator

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/planforge-xyz/go-planforge/artifact"
	"github.com/planforge-xyz/go-planforge/catalog"
	"github.com/planforge-xyz/go-planforge/compliance"
	"github.com/planforge-xyz/go-planforge/geometry"
	"github.com/planforge-xyz/go-planforge/layout"
	"github.com/planforge-xyz/go-planforge/materials"
	"github.com/planforge-xyz/go-planforge/plan"
	"github.com/planforge-xyz/go-planforge/structural"
)

// Options configures floor plan generation.
type Options struct {
	Optimization      string // objective name; empty selects the default (space)
	IncludeStructural bool
	IncludeMEP        bool // accepted for interface parity; MEP is not generated

	// Catalog supplies the material and building code tables. Nil selects
	// the built-in defaults.
	Catalog *catalog.Catalog

	// Logger receives caller warnings such as an unknown building code.
	// The zero value discards them.
	Logger zerolog.Logger
}

// DefaultOptions returns the standard generation options.
func DefaultOptions() *Options {
	return &Options{
		IncludeStructural: true,
		Catalog:           catalog.Default(),
		Logger:            zerolog.Nop(),
	}
}

// Result bundles everything produced for one floor plan generation.
type Result struct {
	FloorPlan              *plan.FloorPlan               `json:"floorPlan"`
	StructuralElements     []structural.Element          `json:"structuralElements,omitempty"`
	BuildingCodeCompliance *compliance.Report            `json:"buildingCodeCompliance"`
	MaterialOptimization   *materials.OptimizationResult `json:"materialOptimization"`
	CADArtifact            *artifact.Artifact            `json:"cadArtifact"`
}

// GenerateFloorPlan synthesizes a floor plan from requirements and derives
// structural elements, a compliance report, a material selection and the
// output artifact. Compliance checking and structural generation are
// independent of each other and run concurrently; material optimization
// waits on the structural elements.
func GenerateFloorPlan(req *plan.Requirements, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	// Fail fast on every input before any component runs.
	objective, err := materials.ParseObjective(opts.Optimization)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.BuildingCode != "" && !cat.Codes.Known(req.BuildingCode) {
		// Degrades to zero compliance rules rather than failing.
		opts.Logger.Warn().
			Err(plan.ErrUnknownBuildingCode).
			Str("buildingCode", req.BuildingCode).
			Msg("compliance check degrades to no rules")
	}

	fp, err := layout.Synthesize(req)
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		elements []structural.Element
		report   *compliance.Report
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		elements = structural.Generate(fp, req)
	}()
	go func() {
		defer wg.Done()
		report = compliance.Check(fp, req, cat.Codes)
	}()
	wg.Wait()

	optimization, err := materials.Optimize(elements, objective, cat.Materials)
	if err != nil {
		return nil, err
	}

	result := &Result{
		FloorPlan:              fp,
		BuildingCodeCompliance: report,
		MaterialOptimization:   optimization,
	}
	if opts.IncludeStructural {
		result.StructuralElements = elements
	}

	result.CADArtifact = artifact.NewBuilder(artifactName(req), artifact.TypeFloorPlan).
		WithGeometry(geometry.Summarize(fp)).
		WithProvenance(artifact.Provenance{
			GeneratedBy:  "parametric-synthesis",
			Objective:    objective.String(),
			BuildingCode: req.BuildingCode,
			Style:        req.Style,
		}).
		WithProperty("totalArea", fp.TotalArea).
		WithProperty("efficiency", fp.Efficiency).
		WithProperty("roomCount", len(fp.Rooms)).
		Build()

	return result, nil
}

func artifactName(req *plan.Requirements) string {
	style := req.Style
	if style == "" {
		style = "unstyled"
	}
	return fmt.Sprintf("%s floor plan (%.0f sq ft)", style, req.TotalArea)
}
