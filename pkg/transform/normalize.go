// Package transform derives the fully-populated form of a sparse schema.
//
// Authors typically lay out the smallest breakpoint completely and adjust
// only what changes at larger tiers. [Normalize] fills every remaining gap
// by cascading data upward from the nearest smaller breakpoint, so the
// validator and the export layer always see one membership list and one
// rectangle per component per breakpoint.
//
// Normalize is deliberately lenient: it never rejects input and never
// repairs the smallest breakpoint (there is nothing before it to inherit
// from). All strictness lives in the validate package, which must run on
// the normalized schema.
package transform

import (
	"slices"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
)

// Normalize returns a new schema with per-breakpoint gaps filled by
// inheritance. The input is never mutated.
//
// Breakpoints are processed in ascending MinWidth order. For breakpoint i>0:
//
//   - a missing layout configuration is copied from breakpoint i-1;
//   - a member of breakpoint i-1 missing from breakpoint i's list is
//     appended, preserving the i-1 relative order;
//   - an active component with no rectangle for breakpoint i resolves, in
//     order: its explicit responsive entry, its legacy single rectangle,
//     the (already normalized) rectangle of breakpoint i-1.
//
// The smallest breakpoint only ever resolves explicit or legacy data; a
// schema with no data there is a validation error, not something Normalize
// repairs. Normalize is idempotent.
func Normalize(s *schema.Schema) *schema.Schema {
	out := s.Clone()
	ordered := sortedBreakpoints(out.Breakpoints)

	for i, bp := range ordered {
		cfg, ok := out.Layouts[bp.Name]

		if i > 0 {
			prev, hasPrev := out.Layouts[ordered[i-1].Name]
			switch {
			case !ok && hasPrev:
				cfg = inheritConfig(prev)
				ok = true
			case ok && hasPrev:
				cfg.Components = inheritMembership(cfg.Components, prev.Components)
			}
		}
		if !ok {
			continue // nothing to fill; the validator reports MISSING_LAYOUT
		}
		out.Layouts[bp.Name] = cfg

		for _, id := range cfg.Components {
			fillRect(out, id, bp.Name, prevName(ordered, i))
		}
	}

	return out
}

// sortedBreakpoints returns breakpoints ascending by MinWidth. The sort is
// stable so declaration order breaks ties deterministically.
func sortedBreakpoints(bps []schema.Breakpoint) []schema.Breakpoint {
	ordered := append([]schema.Breakpoint(nil), bps...)
	slices.SortStableFunc(ordered, func(a, b schema.Breakpoint) int {
		return a.MinWidth - b.MinWidth
	})
	return ordered
}

func prevName(ordered []schema.Breakpoint, i int) string {
	if i == 0 {
		return ""
	}
	return ordered[i-1].Name
}

// inheritConfig copies a layout configuration wholesale for a breakpoint
// that defines none of its own.
func inheritConfig(prev schema.LayoutConfig) schema.LayoutConfig {
	cfg := schema.LayoutConfig{
		Structure:  prev.Structure,
		Components: append([]string(nil), prev.Components...),
	}
	if prev.Roles != nil {
		cfg.Roles = make(map[string]string, len(prev.Roles))
		for k, v := range prev.Roles {
			cfg.Roles[k] = v
		}
	}
	return cfg
}

// inheritMembership appends members active at the previous breakpoint but
// absent from the current list, preserving their previous relative order.
// Explicit membership always stays in front: the author's DOM order wins.
func inheritMembership(current, prev []string) []string {
	present := make(map[string]bool, len(current))
	for _, id := range current {
		present[id] = true
	}
	for _, id := range prev {
		if !present[id] {
			current = append(current, id)
			present[id] = true
		}
	}
	return current
}

// fillRect materializes the rectangle for component id at breakpoint bp.
// Resolution order: explicit responsive entry, legacy single rectangle,
// inherited entry from the previous breakpoint.
func fillRect(s *schema.Schema, id, bp, prevBP string) {
	c := s.Component(id)
	if c == nil {
		return // dangling reference; the validator reports it
	}
	if _, ok := c.ResponsiveCanvasLayout[bp]; ok {
		return
	}

	var rect schema.CanvasLayout
	switch {
	case c.CanvasLayout != nil:
		rect = *c.CanvasLayout
	case prevBP != "":
		prev, ok := c.ResponsiveCanvasLayout[prevBP]
		if !ok {
			return // previous tier had no data either
		}
		rect = prev
	default:
		return // smallest breakpoint never inherits
	}

	if c.ResponsiveCanvasLayout == nil {
		c.ResponsiveCanvasLayout = schema.ResponsiveCanvasLayout{}
	}
	c.ResponsiveCanvasLayout[bp] = rect
}
