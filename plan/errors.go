package plan

import "errors"

// Error types for generation inputs and numeric edge cases.
var (
	// ErrInvalidRequirement is returned when requirements fail validation
	// (non-positive area, no required rooms, unknown room type).
	ErrInvalidRequirement = errors.New("invalid requirement")

	// ErrUnknownBuildingCode marks a building code with no rule table.
	// Not fatal: compliance degrades to zero rules, but callers should warn.
	ErrUnknownBuildingCode = errors.New("unknown building code")

	// ErrDegenerateGeometry is returned when a structural element with zero
	// cross-section would drive stress computation to NaN or Inf.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrUnsupportedObjective is returned for optimization objectives outside
	// the closed set {space, cost, sustainability, accessibility}.
	ErrUnsupportedObjective = errors.New("unsupported optimization objective")
)
