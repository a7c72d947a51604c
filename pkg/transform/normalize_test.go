package transform

import (
	"reflect"
	"testing"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
)

func threeTier() *schema.Schema {
	return &schema.Schema{
		SchemaVersion: schema.Version,
		Components: []schema.Component{
			{
				ID:   "c1",
				Name: "Header",
				ResponsiveCanvasLayout: schema.ResponsiveCanvasLayout{
					"mobile": {X: 0, Y: 0, Width: 4, Height: 1},
				},
			},
			{
				ID:   "c2",
				Name: "Main",
				ResponsiveCanvasLayout: schema.ResponsiveCanvasLayout{
					"mobile": {X: 0, Y: 1, Width: 4, Height: 6},
					"desktop": {X: 3, Y: 1, Width: 9, Height: 6},
				},
			},
		},
		Breakpoints: []schema.Breakpoint{
			{Name: "mobile", MinWidth: 0, GridCols: 4, GridRows: 8},
			{Name: "tablet", MinWidth: 768, GridCols: 8, GridRows: 8},
			{Name: "desktop", MinWidth: 1024, GridCols: 12, GridRows: 8},
		},
		Layouts: map[string]schema.LayoutConfig{
			"mobile": {Structure: "stack", Components: []string{"c1", "c2"}},
		},
	}
}

func TestNormalizeCascadesMissingLayouts(t *testing.T) {
	got := Normalize(threeTier())

	for _, bp := range []string{"mobile", "tablet", "desktop"} {
		cfg, ok := got.Layouts[bp]
		if !ok {
			t.Fatalf("breakpoint %q should have a layout after normalization", bp)
		}
		if want := []string{"c1", "c2"}; !reflect.DeepEqual(cfg.Components, want) {
			t.Errorf("%q components = %v, want %v", bp, cfg.Components, want)
		}
		if cfg.Structure != "stack" {
			t.Errorf("%q structure = %q, want inherited %q", bp, cfg.Structure, "stack")
		}
	}
}

func TestNormalizeCascadesRects(t *testing.T) {
	got := Normalize(threeTier())

	c1 := got.Component("c1")
	mobile := c1.ResponsiveCanvasLayout["mobile"]
	for _, bp := range []string{"tablet", "desktop"} {
		rect, ok := c1.ResponsiveCanvasLayout[bp]
		if !ok {
			t.Fatalf("c1 should inherit a rect for %q", bp)
		}
		if rect != mobile {
			t.Errorf("c1 %q rect = %+v, want inherited %+v", bp, rect, mobile)
		}
	}

	// c2's explicit desktop rect must survive; tablet inherits from mobile.
	c2 := got.Component("c2")
	if rect := c2.ResponsiveCanvasLayout["desktop"]; rect.X != 3 || rect.Width != 9 {
		t.Errorf("c2 explicit desktop rect overwritten: %+v", rect)
	}
	if rect := c2.ResponsiveCanvasLayout["tablet"]; rect != c2.ResponsiveCanvasLayout["mobile"] {
		t.Errorf("c2 tablet rect = %+v, want inherited mobile rect", rect)
	}
}

func TestNormalizeLegacyFallback(t *testing.T) {
	legacy := schema.CanvasLayout{X: 1, Y: 1, Width: 2, Height: 2}
	s := &schema.Schema{
		SchemaVersion: schema.Version,
		Components: []schema.Component{
			{ID: "c1", Name: "Card", CanvasLayout: &legacy},
		},
		Breakpoints: []schema.Breakpoint{
			{Name: "mobile", MinWidth: 0, GridCols: 4, GridRows: 8},
			{Name: "desktop", MinWidth: 1024, GridCols: 12, GridRows: 8},
		},
		Layouts: map[string]schema.LayoutConfig{
			"mobile": {Components: []string{"c1"}},
		},
	}

	got := Normalize(s)
	c1 := got.Component("c1")
	for _, bp := range []string{"mobile", "desktop"} {
		if rect, ok := c1.ResponsiveCanvasLayout[bp]; !ok || rect != legacy {
			t.Errorf("%q rect = %+v ok=%v, want legacy fallback %+v", bp, rect, ok, legacy)
		}
	}
}

func TestNormalizeSmallestNeverInherits(t *testing.T) {
	s := threeTier()
	delete(s.Layouts, "mobile")
	s.Layouts["tablet"] = schema.LayoutConfig{Components: []string{"c1"}}

	got := Normalize(s)
	if _, ok := got.Layouts["mobile"]; ok {
		t.Error("smallest breakpoint must not be repaired by normalization")
	}
	if _, ok := got.Layouts["desktop"]; !ok {
		t.Error("desktop should still inherit from tablet")
	}
}

func TestNormalizeKeepsExplicitMembershipInFront(t *testing.T) {
	s := threeTier()
	// Desktop reorders c2 first; c1 is inherited and appended after.
	s.Layouts["desktop"] = schema.LayoutConfig{Components: []string{"c2"}}

	got := Normalize(s)
	want := []string{"c2", "c1"}
	if !reflect.DeepEqual(got.Layouts["desktop"].Components, want) {
		t.Errorf("desktop components = %v, want %v", got.Layouts["desktop"].Components, want)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	s := threeTier()
	Normalize(s)

	if _, ok := s.Layouts["tablet"]; ok {
		t.Error("input schema gained a tablet layout; Normalize must not mutate")
	}
	if _, ok := s.Component("c1").ResponsiveCanvasLayout["tablet"]; ok {
		t.Error("input component gained a tablet rect; Normalize must not mutate")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize(threeTier())
	twice := Normalize(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize is not idempotent:\nonce  %+v\ntwice %+v", once, twice)
	}
}

func TestNormalizeUnsortedBreakpoints(t *testing.T) {
	s := threeTier()
	// Declare out of order; the cascade still runs ascending by MinWidth.
	s.Breakpoints = []schema.Breakpoint{
		{Name: "desktop", MinWidth: 1024, GridCols: 12, GridRows: 8},
		{Name: "mobile", MinWidth: 0, GridCols: 4, GridRows: 8},
		{Name: "tablet", MinWidth: 768, GridCols: 8, GridRows: 8},
	}

	got := Normalize(s)
	if _, ok := got.Layouts["desktop"]; !ok {
		t.Error("desktop should inherit through tablet despite declaration order")
	}
}

func TestNormalizeDanglingReference(t *testing.T) {
	s := threeTier()
	cfg := s.Layouts["mobile"]
	cfg.Components = append(cfg.Components, "ghost")
	s.Layouts["mobile"] = cfg

	// Must not panic; the validator reports the dangling id.
	got := Normalize(s)
	if got.Component("ghost") != nil {
		t.Error("normalization must not invent components")
	}
}
