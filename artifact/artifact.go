// Package artifact defines the CAD artifact envelope bundling generated
// geometry, properties and provenance metadata. The envelope is a pure data
// record for downstream consumers; it carries no behavior of its own.
package artifact

import (
	"time"

	"github.com/google/uuid"
)

const SchemaVersion = "1.0.0"

// Artifact types.
const (
	TypeFloorPlan = "floor-plan"
	Type3DModel   = "3d-model"
)

// Artifact is the externally visible output envelope.
type Artifact struct {
	Version     string         `json:"version"`
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Metadata    Metadata       `json:"metadata"`
	Geometry    any            `json:"geometry,omitempty"` // 2D or 3D summary
	Properties  map[string]any `json:"properties,omitempty"`
	Permissions Permissions    `json:"permissions"`
	Usage       Usage          `json:"usage"`
}

// Metadata records how and when the artifact was generated.
type Metadata struct {
	Timestamp  time.Time  `json:"timestamp"`
	Generator  string     `json:"generator"`
	Provenance Provenance `json:"provenance"`
}

// Provenance captures the generation inputs that shaped the artifact.
type Provenance struct {
	GeneratedBy  string `json:"generatedBy"` // e.g. "parametric-synthesis"
	Objective    string `json:"objective,omitempty"`
	BuildingCode string `json:"buildingCode,omitempty"`
	Style        string `json:"style,omitempty"`
}

// Permissions are the artifact's default sharing flags.
type Permissions struct {
	Public      bool `json:"public"`
	AllowCopy   bool `json:"allowCopy"`
	AllowExport bool `json:"allowExport"`
}

// Usage holds the artifact's usage counters, initialized to zero.
type Usage struct {
	Views   int `json:"views"`
	Copies  int `json:"copies"`
	Exports int `json:"exports"`
}

// Builder assembles an artifact step by step.
type Builder struct {
	artifact Artifact
}

// NewBuilder starts an artifact of the given name and type with a fresh ID,
// current timestamp and default permissions.
func NewBuilder(name, artifactType string) *Builder {
	return &Builder{
		artifact: Artifact{
			Version: SchemaVersion,
			ID:      uuid.NewString(),
			Name:    name,
			Type:    artifactType,
			Metadata: Metadata{
				Timestamp: time.Now(),
				Generator: "planforge",
			},
			Permissions: Permissions{
				AllowCopy:   true,
				AllowExport: true,
			},
		},
	}
}

// WithGeometry attaches a geometry summary.
func (b *Builder) WithGeometry(geometry any) *Builder {
	b.artifact.Geometry = geometry
	return b
}

// WithProvenance sets the generation provenance fields.
func (b *Builder) WithProvenance(p Provenance) *Builder {
	b.artifact.Metadata.Provenance = p
	return b
}

// WithProperty attaches one open key/value property.
func (b *Builder) WithProperty(key string, value any) *Builder {
	if b.artifact.Properties == nil {
		b.artifact.Properties = make(map[string]any)
	}
	b.artifact.Properties[key] = value
	return b
}

// Build returns the assembled artifact.
func (b *Builder) Build() *Artifact {
	return &b.artifact
}
