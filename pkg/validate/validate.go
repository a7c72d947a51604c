// Package validate checks a normalized schema against the engine's
// structural invariants and semantic advisories.
//
// Validation is data, not exceptions: the rule engine is an ordered list of
// independent rules, each contributing zero or more [Finding] values, and
// [Validate] always runs every rule to completion. A schema that violates
// invariants yields findings; it never causes a panic. Panics are reserved
// for caller programming errors (a nil schema).
//
// Run [Validate] after transform.Normalize - gaps that inheritance would
// have filled must not be reported as missing data.
package validate

import "github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"

// Finding is one validation result: a machine-readable code, a
// human-readable message, and optional pointers at the offending component
// and field.
type Finding struct {
	Code        Code   `json:"code"`
	Message     string `json:"message"`
	ComponentID string `json:"componentId,omitempty"`
	Field       string `json:"field,omitempty"`
}

// Result collects the findings of one validation run. Valid is true iff
// Errors is empty; warnings never affect validity.
type Result struct {
	Valid    bool      `json:"valid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// rule is one independent check. Rules read the schema and report findings;
// they never mutate and never depend on each other's output, so adding a
// rule is appending to the list.
type rule struct {
	name  string
	check func(s *schema.Schema, rep *reporter)
}

// rules is the ordered rule list. Identity and breakpoint structure first,
// references next, semantic and geometry advisories last, so findings read
// top-down in the order a user would fix them.
var rules = []rule{
	{"version", ruleVersion},
	{"components-exist", ruleComponentsExist},
	{"component-ids", ruleComponentIDs},
	{"component-names", ruleComponentNames},
	{"breakpoint-names", ruleBreakpointNames},
	{"breakpoint-count", ruleBreakpointCount},
	{"breakpoint-duplicates", ruleBreakpointDuplicates},
	{"breakpoint-min-width", ruleMinWidth},
	{"breakpoint-order", ruleBreakpointOrder},
	{"component-references", ruleComponentReferences},
	{"layout-presence", ruleLayoutPresence},
	{"semantic-positioning", ruleSemanticPositioning},
	{"layout-configs", ruleLayoutConfigs},
	{"structure-roles", ruleStructureRoles},
	{"z-index", ruleZIndex},
	{"canvas-geometry", ruleCanvasGeometry},
}

// Validate runs every rule against s and returns the full list of findings.
// It never stops at the first error. s must be non-nil and normalized;
// passing nil is a programming error and panics.
func Validate(s *schema.Schema) Result {
	if s == nil {
		panic("validate: nil schema")
	}

	rep := &reporter{}
	for _, r := range rules {
		r.check(s, rep)
	}

	return Result{
		Valid:    len(rep.errors) == 0,
		Errors:   rep.errors,
		Warnings: rep.warnings,
	}
}

// reporter accumulates findings during a validation run.
type reporter struct {
	errors   []Finding
	warnings []Finding
}

func (r *reporter) error(f Finding)   { r.errors = append(r.errors, f) }
func (r *reporter) warning(f Finding) { r.warnings = append(r.warnings, f) }
