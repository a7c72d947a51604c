package geometry

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "Identical",
			a:    Rect{X: 0, Y: 0, Width: 2, Height: 2},
			b:    Rect{X: 0, Y: 0, Width: 2, Height: 2},
			want: true,
		},
		{
			name: "EdgeAdjacentHorizontal",
			a:    Rect{X: 0, Y: 0, Width: 2, Height: 2},
			b:    Rect{X: 2, Y: 0, Width: 2, Height: 2},
			want: false,
		},
		{
			name: "EdgeAdjacentVertical",
			a:    Rect{X: 0, Y: 0, Width: 4, Height: 1},
			b:    Rect{X: 0, Y: 1, Width: 4, Height: 1},
			want: false,
		},
		{
			name: "CornerAdjacent",
			a:    Rect{X: 0, Y: 0, Width: 2, Height: 2},
			b:    Rect{X: 2, Y: 2, Width: 2, Height: 2},
			want: false,
		},
		{
			name: "PartialOverlap",
			a:    Rect{X: 0, Y: 0, Width: 3, Height: 3},
			b:    Rect{X: 2, Y: 2, Width: 3, Height: 3},
			want: true,
		},
		{
			name: "Contained",
			a:    Rect{X: 0, Y: 0, Width: 6, Height: 6},
			b:    Rect{X: 2, Y: 2, Width: 1, Height: 1},
			want: true,
		},
		{
			name: "Disjoint",
			a:    Rect{X: 0, Y: 0, Width: 2, Height: 2},
			b:    Rect{X: 5, Y: 5, Width: 2, Height: 2},
			want: false,
		},
		{
			name: "EmptyNeverOverlaps",
			a:    Rect{X: 1, Y: 1, Width: 0, Height: 3},
			b:    Rect{X: 0, Y: 0, Width: 4, Height: 4},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name       string
		r          Rect
		cols, rows int
		want       bool
	}{
		{"FillsGrid", Rect{0, 0, 12, 8}, 12, 8, true},
		{"Interior", Rect{2, 3, 4, 2}, 12, 8, true},
		{"TouchesRightEdge", Rect{10, 0, 2, 1}, 12, 8, true},
		{"OverflowsRight", Rect{10, 0, 5, 1}, 12, 8, false},
		{"OverflowsBottom", Rect{0, 7, 1, 2}, 12, 8, false},
		{"NegativeX", Rect{-1, 0, 2, 2}, 12, 8, false},
		{"NegativeY", Rect{0, -1, 2, 2}, 12, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InBounds(tt.r, tt.cols, tt.rows); got != tt.want {
				t.Errorf("InBounds(%+v, %d, %d) = %v, want %v", tt.r, tt.cols, tt.rows, got, tt.want)
			}
		})
	}
}

func TestSharesRowRange(t *testing.T) {
	a := Rect{X: 0, Y: 2, Width: 3, Height: 4}
	b := Rect{X: 6, Y: 2, Width: 3, Height: 4}
	c := Rect{X: 6, Y: 2, Width: 3, Height: 5}

	if !SharesRowRange(a, b) {
		t.Error("rects with equal Y and Height should share a row range")
	}
	if SharesRowRange(a, c) {
		t.Error("rects with different Height should not share a row range")
	}
}
