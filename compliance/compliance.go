// Package compliance validates a synthesized floor plan against a named
// building code rule table.
package compliance

import (
	"fmt"

	"github.com/planforge-xyz/go-planforge/catalog"
	"github.com/planforge-xyz/go-planforge/plan"
)

// Report statuses.
const (
	StatusCompliant    = "compliant"
	StatusNonCompliant = "non-compliant"
)

// Report is the outcome of checking a floor plan against a building code.
type Report struct {
	Status    string   `json:"status"`
	Issues    []string `json:"issues"`
	Compliant []string `json:"compliant"`
	Standards []string `json:"standards"`
}

// Checker accumulates rule outcomes for one floor plan.
type Checker struct {
	fp     *plan.FloorPlan
	req    *plan.Requirements
	codes  catalog.Codes
	report *Report
}

// NewChecker creates a checker for a floor plan against the given code tables.
func NewChecker(fp *plan.FloorPlan, req *plan.Requirements, codes catalog.Codes) *Checker {
	return &Checker{
		fp:    fp,
		req:   req,
		codes: codes,
		report: &Report{
			Issues:    []string{},
			Compliant: []string{},
			Standards: []string{req.BuildingCode},
		},
	}
}

// Check evaluates every rule in the requirement's building code table.
// An unknown code has an empty table and yields a trivially compliant
// report; that degradation is deliberate and callers log it as a warning.
func (c *Checker) Check() *Report {
	for _, rule := range c.codes.Rules(c.req.BuildingCode) {
		if c.satisfied(rule) {
			c.addCompliant(rule)
		} else {
			c.addIssue(rule)
		}
	}
	if len(c.report.Issues) == 0 {
		c.report.Status = StatusCompliant
	} else {
		c.report.Status = StatusNonCompliant
	}
	return c.report
}

// satisfied dispatches one rule against the floor plan. Rules with labels
// the checker does not understand are treated as satisfied.
func (c *Checker) satisfied(rule catalog.CodeRequirement) bool {
	if rule.Expression != "" {
		return c.expressionHolds(rule.Expression)
	}

	value, numeric := rule.NumericValue()
	if !numeric {
		return true
	}

	switch rule.Requirement {
	case "Minimum room area":
		for _, room := range c.fp.Rooms {
			if room.Area < value {
				return false
			}
		}
		return true
	case "Minimum corridor width":
		for _, corridor := range c.fp.Corridors {
			if corridor.Width < value {
				return false
			}
		}
		return true
	case "Minimum ceiling height":
		for _, room := range c.fp.Rooms {
			// A zero height means the layout predates height threading;
			// the rule is not applicable to such rooms.
			if room.Dimensions.Height > 0 && room.Dimensions.Height < value {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (c *Checker) addCompliant(rule catalog.CodeRequirement) {
	c.report.Compliant = append(c.report.Compliant, rule.Description)
}

func (c *Checker) addIssue(rule catalog.CodeRequirement) {
	c.report.Issues = append(c.report.Issues,
		fmt.Sprintf("%s: %s %v%s", rule.Description, rule.Requirement, rule.Value, rule.Unit))
}

// Check is the package-level convenience over NewChecker(...).Check().
func Check(fp *plan.FloorPlan, req *plan.Requirements, codes catalog.Codes) *Report {
	return NewChecker(fp, req, codes).Check()
}
