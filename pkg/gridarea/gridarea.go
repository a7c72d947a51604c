// Package gridarea converts between the two placement representations used
// by the canvas: a matrix of component ids (one string per grid cell, empty
// string for free cells) and a list of component rectangles.
//
// The rectangle list is the canonical representation; the matrix form exists
// as an import/export adapter for the CSS grid-template-areas style of
// authoring. [AreasToRects] and [RectsToAreas] are pure and never fail:
// malformed inputs degrade deterministically instead of erroring, because
// the canvas invokes them on every drag tick.
package gridarea

import "github.com/jhlee0409/visual-layout-builder-sub001/pkg/geometry"

// Placement is a component rectangle tagged with the component id.
type Placement struct {
	ID string `json:"id"`
	geometry.Rect
}

// AreasToRects scans a matrix of component ids row-major and extracts one
// rectangle per component id, in first-occurrence order.
//
// For each unvisited non-empty cell, the cell becomes the rectangle's
// top-left corner. Width grows rightward while the same id repeats; height
// grows downward while every cell of the candidate row repeats the id. A
// same-id region that is not rectangular stops growing at the first row that
// breaks rectangularity, so a malformed region never distorts the rectangle
// beyond its largest rectangular prefix. Covered cells are marked visited,
// so each id yields exactly one placement.
//
// Ragged matrices are tolerated: each row is scanned to its own length.
func AreasToRects(areas [][]string) []Placement {
	rows := len(areas)
	if rows == 0 {
		return nil
	}

	visited := make([][]bool, rows)
	for y := range areas {
		visited[y] = make([]bool, len(areas[y]))
	}

	// Non-rectangular regions leave unvisited leftover cells; ids already
	// extracted are skipped so each id still yields exactly one placement.
	done := make(map[string]bool)

	var rects []Placement
	for y := 0; y < rows; y++ {
		for x := 0; x < len(areas[y]); x++ {
			id := areas[y][x]
			if id == "" || visited[y][x] || done[id] {
				continue
			}

			width := 1
			for x+width < len(areas[y]) && areas[y][x+width] == id && !visited[y][x+width] {
				width++
			}

			height := 1
			for y+height < rows && rowRepeats(areas[y+height], x, width, id) {
				height++
			}

			for dy := 0; dy < height; dy++ {
				for dx := 0; dx < width; dx++ {
					visited[y+dy][x+dx] = true
				}
			}

			done[id] = true
			rects = append(rects, Placement{
				ID:   id,
				Rect: geometry.Rect{X: x, Y: y, Width: width, Height: height},
			})
		}
	}
	return rects
}

// rowRepeats reports whether row holds id across [x, x+width).
func rowRepeats(row []string, x, width int, id string) bool {
	if x+width > len(row) {
		return false
	}
	for dx := 0; dx < width; dx++ {
		if row[x+dx] != id {
			return false
		}
	}
	return true
}

// RectsToAreas stamps each placement's id into a fresh rows×cols matrix.
//
// Placements are stamped in input order, and later placements overwrite
// earlier ones where they overlap. That silent precedence is deliberate:
// the canvas relies on first-fit-then-override semantics when it re-stamps
// a dragged component over its previous cells. Cells outside the grid are
// clipped rather than stamped.
func RectsToAreas(rects []Placement, cols, rows int) [][]string {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	areas := make([][]string, rows)
	for y := range areas {
		areas[y] = make([]string, cols)
	}

	for _, r := range rects {
		for y := max(r.Y, 0); y < min(r.Bottom(), rows); y++ {
			for x := max(r.X, 0); x < min(r.Right(), cols); x++ {
				areas[y][x] = r.ID
			}
		}
	}
	return areas
}
