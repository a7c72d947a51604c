package validate

// Code is a machine-readable finding code.
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*, DUPLICATE_*, MISSING_*, NO_*: structural errors that block export
//   - *_NOT_*, *_WITHOUT_*, UNUSUAL_*, COMPLEX_*: advisories that never block
type Code string

// Error codes. A schema producing any of these is not exportable.
const (
	// Identity errors
	CodeInvalidVersion       Code = "INVALID_VERSION"
	CodeNoComponents         Code = "NO_COMPONENTS"
	CodeDuplicateComponentID Code = "DUPLICATE_COMPONENT_ID"
	CodeInvalidComponentName Code = "INVALID_COMPONENT_NAME"

	// Breakpoint errors
	CodeEmptyBreakpointName    Code = "EMPTY_BREAKPOINT_NAME"
	CodeBreakpointNameTooLong  Code = "BREAKPOINT_NAME_TOO_LONG"
	CodeInvalidBreakpointName  Code = "INVALID_BREAKPOINT_NAME"
	CodeReservedBreakpointName Code = "RESERVED_BREAKPOINT_NAME"
	CodeTooManyBreakpoints     Code = "TOO_MANY_BREAKPOINTS"
	CodeDuplicateBreakpoint    Code = "DUPLICATE_BREAKPOINT_NAME"
	CodeInvalidMinWidth        Code = "INVALID_MIN_WIDTH"

	// Reference errors
	CodeInvalidComponentReference Code = "INVALID_COMPONENT_REFERENCE"
	CodeMissingLayout             Code = "MISSING_LAYOUT"

	// Canvas geometry errors. Overlap is an error, not a warning: two
	// components drawn on the same cells break the visual guarantee the
	// canvas gives the user.
	CodeCanvasLayoutOverlap     Code = "CANVAS_LAYOUT_OVERLAP"
	CodeCanvasLayoutOutOfBounds Code = "CANVAS_LAYOUT_OUT_OF_BOUNDS"
)

// Warning codes. Advisories only; they never affect validity.
const (
	CodeBreakpointsNotSorted Code = "BREAKPOINTS_NOT_SORTED"

	CodeHeaderNotFixedOrSticky  Code = "HEADER_NOT_FIXED_OR_STICKY"
	CodeFooterNotStatic         Code = "FOOTER_NOT_STATIC"
	CodeFlexWithoutConfig       Code = "FLEX_WITHOUT_CONFIG"
	CodeGridWithoutConfig       Code = "GRID_WITHOUT_CONFIG"
	CodeSidebarMainWithoutRoles Code = "SIDEBAR_MAIN_WITHOUT_ROLES"
	CodeUnusualZIndex           Code = "UNUSUAL_ZINDEX"

	CodeComplexGridLayout   Code = "COMPLEX_GRID_LAYOUT_DETECTED"
	CodeCanvasOrderMismatch Code = "CANVAS_LAYOUT_ORDER_MISMATCH"
	CodeMissingCanvasLayout Code = "MISSING_CANVAS_LAYOUT"
)
