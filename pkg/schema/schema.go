// Package schema defines the layout schema: the document the canvas UI
// edits and the engine normalizes, validates, and exports.
//
// A schema holds the component inventory, the responsive breakpoints, one
// layout configuration per breakpoint, and the links declaring which
// components represent the same logical element across breakpoints.
//
// Per-breakpoint data is deliberately sparse. Components may define a
// rectangle for only some breakpoints; [transform.Normalize] cascades the
// gaps upward from the smallest breakpoint. The maps here have explicit
// present/absent semantics - a breakpoint either has data or it does not,
// there is no partially-filled state.
package schema

import (
	"github.com/google/uuid"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/geometry"
)

// Version is the schema version this engine reads and writes.
const Version = "1.0"

// Breakpoint is a named responsive viewport tier with its own grid.
// Breakpoints are ordered ascending by MinWidth; names must be unique.
type Breakpoint struct {
	Name     string `json:"name"`
	MinWidth int    `json:"minWidth"`
	GridCols int    `json:"gridCols"`
	GridRows int    `json:"gridRows"`
}

// CanvasLayout is a component's rectangle in grid-cell units for one
// breakpoint. It must satisfy X≥0, Y≥0, X+Width≤GridCols, Y+Height≤GridRows
// for that breakpoint's grid.
type CanvasLayout = geometry.Rect

// ResponsiveCanvasLayout maps breakpoint name to the component's rectangle
// for that breakpoint. The map is sparse: absence means "no explicit data",
// which the normalizer resolves by inheritance.
type ResponsiveCanvasLayout map[string]CanvasLayout

// Positioning describes how a component is positioned in the rendered page.
type Positioning struct {
	Type   string `json:"type,omitempty"` // static, relative, absolute, fixed, sticky
	ZIndex int    `json:"zIndex,omitempty"`
}

// FlexConfig configures a flex container layout.
type FlexConfig struct {
	Direction string `json:"direction,omitempty"`
	Justify   string `json:"justify,omitempty"`
	Align     string `json:"align,omitempty"`
	Gap       int    `json:"gap,omitempty"`
}

// GridConfig configures a grid container layout.
type GridConfig struct {
	Columns int `json:"columns,omitempty"`
	Rows    int `json:"rows,omitempty"`
	Gap     int `json:"gap,omitempty"`
}

// LayoutSpec describes a component's internal layout model. When Type is
// "flex" or "grid" the matching config struct should be present; the
// validator flags declarations without configuration.
type LayoutSpec struct {
	Type string      `json:"type,omitempty"` // flex, grid, or empty
	Flex *FlexConfig `json:"flex,omitempty"`
	Grid *GridConfig `json:"grid,omitempty"`
}

// Styling holds opaque style key/value pairs. The engine never interprets
// these; they pass through to the export layer untouched.
type Styling map[string]string

// Component is one element of the composed page.
//
// CanvasLayout is the legacy single-rectangle form: when set, it acts as
// the fallback rectangle for every breakpoint that has no explicit entry in
// ResponsiveCanvasLayout.
type Component struct {
	ID          string `json:"id"`
	Name        string `json:"name"` // PascalCase display/export name
	SemanticTag string `json:"semanticTag,omitempty"`

	Positioning Positioning `json:"positioning,omitempty"`
	Layout      LayoutSpec  `json:"layout,omitempty"`
	Styling     Styling     `json:"styling,omitempty"`

	CanvasLayout           *CanvasLayout          `json:"canvasLayout,omitempty"`
	ResponsiveCanvasLayout ResponsiveCanvasLayout `json:"responsiveCanvasLayout,omitempty"`
}

// LayoutFor resolves the component's explicit rectangle for a breakpoint:
// the responsive entry if present, otherwise the legacy fallback.
// The second return reports whether any explicit data exists.
func (c *Component) LayoutFor(breakpoint string) (CanvasLayout, bool) {
	if l, ok := c.ResponsiveCanvasLayout[breakpoint]; ok {
		return l, true
	}
	if c.CanvasLayout != nil {
		return *c.CanvasLayout, true
	}
	return CanvasLayout{}, false
}

// LayoutConfig lists the active components for one breakpoint, in DOM order,
// together with the page structure they compose into.
type LayoutConfig struct {
	Structure  string            `json:"structure,omitempty"` // e.g. "stack", "sidebar-main"
	Components []string          `json:"components"`
	Roles      map[string]string `json:"roles,omitempty"` // role -> component id
}

// ComponentLink asserts that Source and Target represent the same logical
// element rendered under different breakpoints. Links are unordered pairs;
// connected components of the link graph form link groups.
type ComponentLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Schema is the complete layout document.
type Schema struct {
	SchemaVersion string                  `json:"schemaVersion"`
	Components    []Component             `json:"components"`
	Breakpoints   []Breakpoint            `json:"breakpoints"`
	Layouts       map[string]LayoutConfig `json:"layouts"`
	Links         []ComponentLink         `json:"links,omitempty"`
}

// New creates an empty schema at the supported version.
func New() *Schema {
	return &Schema{
		SchemaVersion: Version,
		Layouts:       map[string]LayoutConfig{},
	}
}

// NewComponentID generates a fresh component id.
func NewComponentID() string {
	return "comp-" + uuid.NewString()
}

// Component returns the component with the given id, or nil.
func (s *Schema) Component(id string) *Component {
	for i := range s.Components {
		if s.Components[i].ID == id {
			return &s.Components[i]
		}
	}
	return nil
}

// Breakpoint returns the breakpoint with the given name and true, or a zero
// value and false.
func (s *Schema) Breakpoint(name string) (Breakpoint, bool) {
	for _, bp := range s.Breakpoints {
		if bp.Name == name {
			return bp, true
		}
	}
	return Breakpoint{}, false
}

// ActiveComponents returns the ids active for a breakpoint, in DOM order.
// Returns nil if the breakpoint has no layout configuration.
func (s *Schema) ActiveComponents(breakpoint string) []string {
	cfg, ok := s.Layouts[breakpoint]
	if !ok {
		return nil
	}
	return cfg.Components
}

// Clone returns a deep copy of the schema. The normalizer works on clones
// so user-authored data is never mutated.
func (s *Schema) Clone() *Schema {
	out := &Schema{
		SchemaVersion: s.SchemaVersion,
		Components:    make([]Component, len(s.Components)),
		Breakpoints:   append([]Breakpoint(nil), s.Breakpoints...),
		Layouts:       make(map[string]LayoutConfig, len(s.Layouts)),
		Links:         append([]ComponentLink(nil), s.Links...),
	}

	for i, c := range s.Components {
		cc := c
		if c.CanvasLayout != nil {
			l := *c.CanvasLayout
			cc.CanvasLayout = &l
		}
		if c.ResponsiveCanvasLayout != nil {
			cc.ResponsiveCanvasLayout = make(ResponsiveCanvasLayout, len(c.ResponsiveCanvasLayout))
			for k, v := range c.ResponsiveCanvasLayout {
				cc.ResponsiveCanvasLayout[k] = v
			}
		}
		if c.Styling != nil {
			cc.Styling = make(Styling, len(c.Styling))
			for k, v := range c.Styling {
				cc.Styling[k] = v
			}
		}
		if c.Layout.Flex != nil {
			f := *c.Layout.Flex
			cc.Layout.Flex = &f
		}
		if c.Layout.Grid != nil {
			g := *c.Layout.Grid
			cc.Layout.Grid = &g
		}
		out.Components[i] = cc
	}

	for name, cfg := range s.Layouts {
		cl := LayoutConfig{
			Structure:  cfg.Structure,
			Components: append([]string(nil), cfg.Components...),
		}
		if cfg.Roles != nil {
			cl.Roles = make(map[string]string, len(cfg.Roles))
			for k, v := range cfg.Roles {
				cl.Roles[k] = v
			}
		}
		out.Layouts[name] = cl
	}

	return out
}
