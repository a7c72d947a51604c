package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/geometry"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
)

const (
	maxBreakpoints    = 10
	maxBreakpointName = 100
	maxReasonableZ    = 9999
)

var (
	// pascalCaseRe matches exported component names: PascalCase, ASCII.
	pascalCaseRe = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

	// breakpointNameRe restricts breakpoint names to ASCII letters, digits,
	// hyphen and underscore. Unicode, spaces, and symbols are rejected.
	breakpointNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// reservedBreakpointNames are identifiers that would collide with object
// prototype members when breakpoint names are used as object keys in the
// consuming JavaScript UI. Guards against prototype pollution.
var reservedBreakpointNames = map[string]bool{
	"constructor":    true,
	"__proto__":      true,
	"prototype":      true,
	"toString":       true,
	"valueOf":        true,
	"hasOwnProperty": true,
}

func ruleVersion(s *schema.Schema, rep *reporter) {
	if s.SchemaVersion != schema.Version {
		rep.error(Finding{
			Code:    CodeInvalidVersion,
			Message: fmt.Sprintf("schema version %q is not supported (expected %q)", s.SchemaVersion, schema.Version),
			Field:   "schemaVersion",
		})
	}
}

func ruleComponentsExist(s *schema.Schema, rep *reporter) {
	if len(s.Components) == 0 {
		rep.error(Finding{
			Code:    CodeNoComponents,
			Message: "schema has no components; add at least one before exporting",
			Field:   "components",
		})
	}
}

func ruleComponentIDs(s *schema.Schema, rep *reporter) {
	seen := make(map[string]bool, len(s.Components))
	for _, c := range s.Components {
		if seen[c.ID] {
			rep.error(Finding{
				Code:        CodeDuplicateComponentID,
				Message:     fmt.Sprintf("component id %q is used more than once", c.ID),
				ComponentID: c.ID,
				Field:       "id",
			})
		}
		seen[c.ID] = true
	}
}

func ruleComponentNames(s *schema.Schema, rep *reporter) {
	for _, c := range s.Components {
		if !pascalCaseRe.MatchString(c.Name) {
			rep.error(Finding{
				Code:        CodeInvalidComponentName,
				Message:     fmt.Sprintf("component name %q must be PascalCase (e.g. HeroSection)", c.Name),
				ComponentID: c.ID,
				Field:       "name",
			})
		}
	}
}

func ruleBreakpointNames(s *schema.Schema, rep *reporter) {
	for _, bp := range s.Breakpoints {
		switch {
		case strings.TrimSpace(bp.Name) == "":
			rep.error(Finding{
				Code:    CodeEmptyBreakpointName,
				Message: "breakpoint name must not be empty",
				Field:   "breakpoints",
			})
		case len(bp.Name) > maxBreakpointName:
			rep.error(Finding{
				Code:    CodeBreakpointNameTooLong,
				Message: fmt.Sprintf("breakpoint name %q exceeds %d characters", bp.Name, maxBreakpointName),
				Field:   "breakpoints",
			})
		case !breakpointNameRe.MatchString(bp.Name):
			rep.error(Finding{
				Code:    CodeInvalidBreakpointName,
				Message: fmt.Sprintf("breakpoint name %q may only contain ASCII letters, digits, hyphen and underscore", bp.Name),
				Field:   "breakpoints",
			})
		case reservedBreakpointNames[bp.Name]:
			rep.error(Finding{
				Code:    CodeReservedBreakpointName,
				Message: fmt.Sprintf("breakpoint name %q is a reserved identifier", bp.Name),
				Field:   "breakpoints",
			})
		}
	}
}

func ruleBreakpointCount(s *schema.Schema, rep *reporter) {
	if len(s.Breakpoints) > maxBreakpoints {
		rep.error(Finding{
			Code:    CodeTooManyBreakpoints,
			Message: fmt.Sprintf("schema defines %d breakpoints; at most %d are supported", len(s.Breakpoints), maxBreakpoints),
			Field:   "breakpoints",
		})
	}
}

func ruleBreakpointDuplicates(s *schema.Schema, rep *reporter) {
	seen := make(map[string]bool, len(s.Breakpoints))
	for _, bp := range s.Breakpoints {
		if seen[bp.Name] {
			rep.error(Finding{
				Code:    CodeDuplicateBreakpoint,
				Message: fmt.Sprintf("breakpoint name %q is used more than once", bp.Name),
				Field:   "breakpoints",
			})
		}
		seen[bp.Name] = true
	}
}

func ruleMinWidth(s *schema.Schema, rep *reporter) {
	for _, bp := range s.Breakpoints {
		if bp.MinWidth < 0 {
			rep.error(Finding{
				Code:    CodeInvalidMinWidth,
				Message: fmt.Sprintf("breakpoint %q has negative minWidth %d", bp.Name, bp.MinWidth),
				Field:   "breakpoints",
			})
		}
	}
}

func ruleBreakpointOrder(s *schema.Schema, rep *reporter) {
	for i := 1; i < len(s.Breakpoints); i++ {
		if s.Breakpoints[i].MinWidth < s.Breakpoints[i-1].MinWidth {
			rep.warning(Finding{
				Code:    CodeBreakpointsNotSorted,
				Message: "breakpoints are not sorted ascending by minWidth",
				Field:   "breakpoints",
			})
			return
		}
	}
}

func ruleComponentReferences(s *schema.Schema, rep *reporter) {
	for bpName, cfg := range s.Layouts {
		for _, id := range cfg.Components {
			if s.Component(id) == nil {
				rep.error(Finding{
					Code:        CodeInvalidComponentReference,
					Message:     fmt.Sprintf("layout %q references unknown component %q", bpName, id),
					ComponentID: id,
					Field:       "layouts." + bpName,
				})
			}
		}
	}
}

func ruleLayoutPresence(s *schema.Schema, rep *reporter) {
	for _, bp := range s.Breakpoints {
		if _, ok := s.Layouts[bp.Name]; !ok {
			rep.error(Finding{
				Code:    CodeMissingLayout,
				Message: fmt.Sprintf("breakpoint %q has no layout configuration", bp.Name),
				Field:   "layouts." + bp.Name,
			})
		}
	}
}

func ruleSemanticPositioning(s *schema.Schema, rep *reporter) {
	for _, c := range s.Components {
		pos := c.Positioning.Type
		switch c.SemanticTag {
		case "header":
			if pos != "fixed" && pos != "sticky" {
				rep.warning(Finding{
					Code:        CodeHeaderNotFixedOrSticky,
					Message:     fmt.Sprintf("header %q should use fixed or sticky positioning, has %q", c.Name, displayPos(pos)),
					ComponentID: c.ID,
					Field:       "positioning.type",
				})
			}
		case "footer":
			// An unset positioning type renders as static, which is fine.
			if pos != "" && pos != "static" {
				rep.warning(Finding{
					Code:        CodeFooterNotStatic,
					Message:     fmt.Sprintf("footer %q should use static positioning, has %q", c.Name, pos),
					ComponentID: c.ID,
					Field:       "positioning.type",
				})
			}
		}
	}
}

func displayPos(pos string) string {
	if pos == "" {
		return "static"
	}
	return pos
}

func ruleLayoutConfigs(s *schema.Schema, rep *reporter) {
	for _, c := range s.Components {
		switch c.Layout.Type {
		case "flex":
			if c.Layout.Flex == nil {
				rep.warning(Finding{
					Code:        CodeFlexWithoutConfig,
					Message:     fmt.Sprintf("component %q declares a flex layout without flex configuration", c.Name),
					ComponentID: c.ID,
					Field:       "layout.flex",
				})
			}
		case "grid":
			if c.Layout.Grid == nil {
				rep.warning(Finding{
					Code:        CodeGridWithoutConfig,
					Message:     fmt.Sprintf("component %q declares a grid layout without grid configuration", c.Name),
					ComponentID: c.ID,
					Field:       "layout.grid",
				})
			}
		}
	}
}

func ruleStructureRoles(s *schema.Schema, rep *reporter) {
	for bpName, cfg := range s.Layouts {
		if cfg.Structure == "sidebar-main" && len(cfg.Roles) == 0 {
			rep.warning(Finding{
				Code:    CodeSidebarMainWithoutRoles,
				Message: fmt.Sprintf("layout %q uses a sidebar-main structure without role assignments", bpName),
				Field:   "layouts." + bpName + ".roles",
			})
		}
	}
}

func ruleZIndex(s *schema.Schema, rep *reporter) {
	for _, c := range s.Components {
		if z := c.Positioning.ZIndex; z > maxReasonableZ || z < -maxReasonableZ {
			rep.warning(Finding{
				Code:        CodeUnusualZIndex,
				Message:     fmt.Sprintf("component %q has an unusual zIndex %d", c.Name, z),
				ComponentID: c.ID,
				Field:       "positioning.zIndex",
			})
		}
	}
}

// placed is one active component with a resolved rectangle, used by the
// geometry checks below.
type placed struct {
	id   string
	rect geometry.Rect
}

// ruleCanvasGeometry runs the per-breakpoint placement checks: bounds,
// pairwise overlap, shared row ranges, DOM-order/visual-order agreement,
// and rectangles still missing after normalization.
func ruleCanvasGeometry(s *schema.Schema, rep *reporter) {
	for _, bp := range s.Breakpoints {
		cfg, ok := s.Layouts[bp.Name]
		if !ok {
			continue // MISSING_LAYOUT already reported
		}

		var placements []placed
		for _, id := range cfg.Components {
			c := s.Component(id)
			if c == nil {
				continue // INVALID_COMPONENT_REFERENCE already reported
			}
			rect, ok := c.LayoutFor(bp.Name)
			if !ok {
				rep.warning(Finding{
					Code:        CodeMissingCanvasLayout,
					Message:     fmt.Sprintf("component %q has no canvas layout for breakpoint %q", c.Name, bp.Name),
					ComponentID: id,
					Field:       "responsiveCanvasLayout." + bp.Name,
				})
				continue
			}

			if !geometry.InBounds(rect, bp.GridCols, bp.GridRows) {
				rep.error(Finding{
					Code: CodeCanvasLayoutOutOfBounds,
					Message: fmt.Sprintf("component %q exceeds the %dx%d grid of breakpoint %q",
						c.Name, bp.GridCols, bp.GridRows, bp.Name),
					ComponentID: id,
					Field:       "responsiveCanvasLayout." + bp.Name,
				})
			}
			placements = append(placements, placed{id: id, rect: rect})
		}

		checkOverlaps(bp.Name, placements, rep)
		checkRowRanges(bp.Name, placements, rep)
		checkVisualOrder(bp.Name, placements, rep)
	}
}

func checkOverlaps(bp string, placements []placed, rep *reporter) {
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			if geometry.Overlaps(placements[i].rect, placements[j].rect) {
				rep.error(Finding{
					Code: CodeCanvasLayoutOverlap,
					Message: fmt.Sprintf("components %q and %q overlap on breakpoint %q",
						placements[i].id, placements[j].id, bp),
					ComponentID: placements[i].id,
					Field:       "responsiveCanvasLayout." + bp,
				})
			}
		}
	}
}

func checkRowRanges(bp string, placements []placed, rep *reporter) {
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			if geometry.Overlaps(a.rect, b.rect) {
				continue // already an error; don't pile a warning on top
			}
			if geometry.SharesRowRange(a.rect, b.rect) {
				rep.warning(Finding{
					Code: CodeComplexGridLayout,
					Message: fmt.Sprintf("components %q and %q share a row range on breakpoint %q; export will need a multi-column grid",
						a.id, b.id, bp),
					ComponentID: a.id,
					Field:       "responsiveCanvasLayout." + bp,
				})
			}
		}
	}
}

// checkVisualOrder warns when the DOM order of the active components
// disagrees with their top-to-bottom, left-to-right order on the canvas.
func checkVisualOrder(bp string, placements []placed, rep *reporter) {
	if len(placements) < 2 {
		return
	}

	visual := append([]placed(nil), placements...)
	sort.SliceStable(visual, func(i, j int) bool {
		if visual[i].rect.Y != visual[j].rect.Y {
			return visual[i].rect.Y < visual[j].rect.Y
		}
		return visual[i].rect.X < visual[j].rect.X
	})

	for i := range placements {
		if placements[i].id != visual[i].id {
			rep.warning(Finding{
				Code: CodeCanvasOrderMismatch,
				Message: fmt.Sprintf("DOM order disagrees with canvas order on breakpoint %q (expected %q at position %d)",
					bp, visual[i].id, i),
				ComponentID: placements[i].id,
				Field:       "layouts." + bp,
			})
			return
		}
	}
}
