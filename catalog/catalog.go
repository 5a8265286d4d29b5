// Package catalog holds the static reference tables used by generation:
// the construction material catalog and the building code rule tables.
// Both are read-only after process start and safe to share across
// concurrent generation requests without locking.
package catalog

import "strconv"

// MaterialType classifies a construction material.
type MaterialType string

const (
	MaterialConcrete  MaterialType = "concrete"
	MaterialSteel     MaterialType = "steel"
	MaterialWood      MaterialType = "wood"
	MaterialMasonry   MaterialType = "masonry"
	MaterialComposite MaterialType = "composite"
)

// MaterialProperties are the physical and economic properties of a material.
type MaterialProperties struct {
	Density        float64 `json:"density" yaml:"density"`               // lb/ft³
	Strength       float64 `json:"strength" yaml:"strength"`             // psi
	Cost           float64 `json:"cost" yaml:"cost"`                     // $ per unit
	Sustainability float64 `json:"sustainability" yaml:"sustainability"` // 1–10
	FireRating     string  `json:"fireRating" yaml:"fireRating"`         // e.g. "2-hour", "none"
}

// Environmental summarizes a material's environmental profile.
type Environmental struct {
	CarbonFootprint float64 `json:"carbonFootprint" yaml:"carbonFootprint"` // kg CO₂e per unit
	Recyclability   float64 `json:"recyclability" yaml:"recyclability"`     // 0–1
	LifeCycle       float64 `json:"lifeCycle" yaml:"lifeCycle"`             // years
}

// Material is one catalog entry. Key is the stable identifier used by
// structural elements; Name is the display name.
type Material struct {
	Key           string             `json:"key" yaml:"key"`
	Name          string             `json:"name" yaml:"name"`
	Type          MaterialType       `json:"type" yaml:"type"`
	Properties    MaterialProperties `json:"properties" yaml:"properties"`
	Environmental Environmental      `json:"environmental" yaml:"environmental"`
}

// Materials is an ordered material catalog. Order matters: several
// optimization objectives pick alternatives positionally.
type Materials []Material

// ByKey looks up a material by its key.
func (m Materials) ByKey(key string) (Material, bool) {
	for _, mat := range m {
		if mat.Key == key {
			return mat, true
		}
	}
	return Material{}, false
}

// CodeRequirement is one rule in a building code's rule table.
// Value is numeric for the dispatched rule labels and may be a string for
// rules the checker treats as satisfied by default. Expression optionally
// carries a CEL predicate evaluated against room and corridor facts.
type CodeRequirement struct {
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	Requirement string `json:"requirement" yaml:"requirement"`
	Value       any    `json:"value" yaml:"value"`
	// Unit is appended verbatim after the value in issue messages, so it
	// carries its own leading space.
	Unit       string `json:"unit,omitempty" yaml:"unit,omitempty"`
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// NumericValue returns the rule value as a float64 when it is a number.
func (r CodeRequirement) NumericValue() (float64, bool) {
	return asFloat64(r.Value)
}

// Codes maps a building code name to its ordered rule table.
type Codes map[string][]CodeRequirement

// Rules returns the rule table for a code name. An unknown code yields an
// empty table, which downstream checks treat as trivially compliant.
func (c Codes) Rules(name string) []CodeRequirement {
	return c[name]
}

// Known reports whether a code name has a rule table.
func (c Codes) Known(name string) bool {
	_, ok := c[name]
	return ok
}

// Catalog bundles both reference tables.
type Catalog struct {
	Materials Materials `json:"materials" yaml:"materials"`
	Codes     Codes     `json:"codes" yaml:"codes"`
}

// asFloat64 attempts to convert a rule value to float64.
func asFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}
