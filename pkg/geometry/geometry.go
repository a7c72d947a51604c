// Package geometry provides axis-aligned rectangle math for the canvas grid.
//
// Components on the canvas occupy integer rectangles in grid-cell units.
// The two predicates here - [Overlaps] and [InBounds] - define what a valid
// placement means: a rectangle is placeable for a breakpoint iff it is in
// bounds for that breakpoint's grid and overlaps no other active rectangle.
//
// Both functions are pure and total. Edge and corner adjacency is legal:
// two rectangles that merely touch do not overlap.
package geometry

// Rect is an axis-aligned rectangle in grid-cell units.
// X and Y address the top-left cell; Width and Height count cells.
//
// The zero value is an empty rectangle at the origin.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the exclusive right edge (X + Width).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge (Y + Height).
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns the number of cells the rectangle covers.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Overlaps reports whether a and b share positive area.
//
// Rectangles that only share an edge or a corner (a.Right() == b.X) do not
// overlap. Empty rectangles never overlap anything.
func Overlaps(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// InBounds reports whether r fits entirely within a cols×rows grid:
// r.X ≥ 0, r.Y ≥ 0, r.X+r.Width ≤ cols, r.Y+r.Height ≤ rows.
func InBounds(r Rect, cols, rows int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= cols && r.Bottom() <= rows
}

// SharesRowRange reports whether a and b occupy the same vertical band
// (identical Y and Height). Components sharing a row range sit side by side
// and force a multi-column arrangement on export.
func SharesRowRange(a, b Rect) bool {
	return a.Y == b.Y && a.Height == b.Height
}
