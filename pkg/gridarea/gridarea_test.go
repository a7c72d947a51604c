package gridarea

import (
	"reflect"
	"sort"
	"testing"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/geometry"
)

func TestAreasToRects(t *testing.T) {
	tests := []struct {
		name  string
		areas [][]string
		want  []Placement
	}{
		{
			name:  "Empty",
			areas: nil,
			want:  nil,
		},
		{
			name: "AllFree",
			areas: [][]string{
				{"", ""},
				{"", ""},
			},
			want: nil,
		},
		{
			name: "SingleCell",
			areas: [][]string{
				{"a"},
			},
			want: []Placement{
				{ID: "a", Rect: geometry.Rect{X: 0, Y: 0, Width: 1, Height: 1}},
			},
		},
		{
			name: "FullRowBanner",
			areas: [][]string{
				{"header", "header", "header"},
				{"", "", ""},
			},
			want: []Placement{
				{ID: "header", Rect: geometry.Rect{X: 0, Y: 0, Width: 3, Height: 1}},
			},
		},
		{
			name: "SidebarMain",
			areas: [][]string{
				{"nav", "main", "main"},
				{"nav", "main", "main"},
				{"nav", "foot", "foot"},
			},
			want: []Placement{
				{ID: "nav", Rect: geometry.Rect{X: 0, Y: 0, Width: 1, Height: 3}},
				{ID: "main", Rect: geometry.Rect{X: 1, Y: 0, Width: 2, Height: 2}},
				{ID: "foot", Rect: geometry.Rect{X: 1, Y: 2, Width: 2, Height: 1}},
			},
		},
		{
			name: "FirstOccurrenceOrder",
			areas: [][]string{
				{"", "b"},
				{"a", "b"},
			},
			want: []Placement{
				{ID: "b", Rect: geometry.Rect{X: 1, Y: 0, Width: 1, Height: 2}},
				{ID: "a", Rect: geometry.Rect{X: 0, Y: 1, Width: 1, Height: 1}},
			},
		},
		{
			name: "NonRectangularRegionStopsGrowing",
			// The L-shaped "a" region must not be absorbed whole: growth
			// stops at the row that breaks rectangularity.
			areas: [][]string{
				{"a", "a"},
				{"a", ""},
			},
			want: []Placement{
				{ID: "a", Rect: geometry.Rect{X: 0, Y: 0, Width: 2, Height: 1}},
			},
		},
		{
			name: "LeftoverCellsDoNotDuplicate",
			// The unabsorbed "a" cell below the rectangular prefix must not
			// produce a second "a" placement, and scanning continues past it.
			areas: [][]string{
				{"a", "a"},
				{"a", "b"},
			},
			want: []Placement{
				{ID: "a", Rect: geometry.Rect{X: 0, Y: 0, Width: 2, Height: 1}},
				{ID: "b", Rect: geometry.Rect{X: 1, Y: 1, Width: 1, Height: 1}},
			},
		},
		{
			name: "RaggedRows",
			areas: [][]string{
				{"a", "a", "a"},
				{"a", "a"},
			},
			want: []Placement{
				{ID: "a", Rect: geometry.Rect{X: 0, Y: 0, Width: 3, Height: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AreasToRects(tt.areas)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AreasToRects() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectsToAreas(t *testing.T) {
	rects := []Placement{
		{ID: "header", Rect: geometry.Rect{X: 0, Y: 0, Width: 3, Height: 1}},
		{ID: "main", Rect: geometry.Rect{X: 1, Y: 1, Width: 2, Height: 1}},
	}

	got := RectsToAreas(rects, 3, 2)
	want := [][]string{
		{"header", "header", "header"},
		{"", "main", "main"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RectsToAreas() = %v, want %v", got, want)
	}
}

func TestRectsToAreasLaterWins(t *testing.T) {
	rects := []Placement{
		{ID: "a", Rect: geometry.Rect{X: 0, Y: 0, Width: 2, Height: 1}},
		{ID: "b", Rect: geometry.Rect{X: 1, Y: 0, Width: 2, Height: 1}},
	}

	got := RectsToAreas(rects, 3, 1)
	want := [][]string{{"a", "b", "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("overlapping stamps = %v, want later rect to win: %v", got, want)
	}
}

func TestRectsToAreasClipsOutOfBounds(t *testing.T) {
	rects := []Placement{
		{ID: "wide", Rect: geometry.Rect{X: 1, Y: 0, Width: 5, Height: 1}},
	}

	got := RectsToAreas(rects, 3, 1)
	want := [][]string{{"", "wide", "wide"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("out-of-bounds stamp = %v, want clipped %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	// For any collision-free, in-bounds placement set, converting to a
	// matrix and back must reproduce the same set of placements.
	tests := []struct {
		name       string
		rects      []Placement
		cols, rows int
	}{
		{
			name: "ClassicPage",
			rects: []Placement{
				{ID: "header", Rect: geometry.Rect{X: 0, Y: 0, Width: 12, Height: 1}},
				{ID: "sidebar", Rect: geometry.Rect{X: 0, Y: 1, Width: 3, Height: 6}},
				{ID: "main", Rect: geometry.Rect{X: 3, Y: 1, Width: 9, Height: 6}},
				{ID: "footer", Rect: geometry.Rect{X: 0, Y: 7, Width: 12, Height: 1}},
			},
			cols: 12, rows: 8,
		},
		{
			name: "SparseCards",
			rects: []Placement{
				{ID: "card1", Rect: geometry.Rect{X: 0, Y: 0, Width: 2, Height: 2}},
				{ID: "card2", Rect: geometry.Rect{X: 3, Y: 0, Width: 2, Height: 2}},
				{ID: "card3", Rect: geometry.Rect{X: 1, Y: 3, Width: 3, Height: 1}},
			},
			cols: 6, rows: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AreasToRects(RectsToAreas(tt.rects, tt.cols, tt.rows))

			sortPlacements(got)
			want := append([]Placement(nil), tt.rects...)
			sortPlacements(want)

			if !reflect.DeepEqual(got, want) {
				t.Errorf("round-trip = %+v, want %+v", got, want)
			}
		})
	}
}

func sortPlacements(ps []Placement) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
}
