package schema

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/geometry"
)

func testSchema() *Schema {
	return &Schema{
		SchemaVersion: Version,
		Components: []Component{
			{
				ID:          "c1",
				Name:        "Header",
				SemanticTag: "header",
				ResponsiveCanvasLayout: ResponsiveCanvasLayout{
					"mobile": {X: 0, Y: 0, Width: 4, Height: 1},
				},
			},
			{
				ID:   "c2",
				Name: "Main",
				ResponsiveCanvasLayout: ResponsiveCanvasLayout{
					"mobile": {X: 0, Y: 1, Width: 4, Height: 6},
				},
			},
		},
		Breakpoints: []Breakpoint{
			{Name: "mobile", MinWidth: 0, GridCols: 4, GridRows: 8},
			{Name: "desktop", MinWidth: 1024, GridCols: 12, GridRows: 8},
		},
		Layouts: map[string]LayoutConfig{
			"mobile": {Structure: "stack", Components: []string{"c1", "c2"}},
		},
		Links: []ComponentLink{{Source: "c1", Target: "c2"}},
	}
}

func TestRemoveComponentCascades(t *testing.T) {
	s := testSchema()
	s.Layouts["desktop"] = LayoutConfig{
		Structure:  "sidebar-main",
		Components: []string{"c1", "c2"},
		Roles:      map[string]string{"sidebar": "c1", "main": "c2"},
	}

	s.RemoveComponent("c1")

	if s.Component("c1") != nil {
		t.Fatal("component c1 should be gone")
	}
	for name, cfg := range s.Layouts {
		for _, id := range cfg.Components {
			if id == "c1" {
				t.Errorf("layout %q still references c1", name)
			}
		}
		for role, id := range cfg.Roles {
			if id == "c1" {
				t.Errorf("layout %q role %q still references c1", name, role)
			}
		}
	}
	if len(s.Links) != 0 {
		t.Errorf("links referencing c1 should be removed, got %v", s.Links)
	}
}

func TestRemoveBreakpoint(t *testing.T) {
	s := testSchema()
	s.RemoveBreakpoint("mobile")

	if _, ok := s.Breakpoint("mobile"); ok {
		t.Error("breakpoint mobile should be gone")
	}
	if _, ok := s.Layouts["mobile"]; ok {
		t.Error("layout config for mobile should be gone")
	}
	if _, ok := s.Components[0].ResponsiveCanvasLayout["mobile"]; ok {
		t.Error("responsive entry for mobile should be gone")
	}
}

func TestLayoutFor(t *testing.T) {
	legacy := CanvasLayout{X: 1, Y: 1, Width: 2, Height: 2}
	c := Component{
		ID:           "c1",
		CanvasLayout: &legacy,
		ResponsiveCanvasLayout: ResponsiveCanvasLayout{
			"mobile": {X: 0, Y: 0, Width: 4, Height: 1},
		},
	}

	if got, ok := c.LayoutFor("mobile"); !ok || got.Width != 4 {
		t.Errorf("explicit responsive entry should win, got %+v ok=%v", got, ok)
	}
	if got, ok := c.LayoutFor("desktop"); !ok || got != legacy {
		t.Errorf("legacy fallback should apply, got %+v ok=%v", got, ok)
	}

	c.CanvasLayout = nil
	if _, ok := c.LayoutFor("desktop"); ok {
		t.Error("no explicit data should report absence")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := testSchema()
	clone := s.Clone()

	clone.Components[0].ResponsiveCanvasLayout["desktop"] = geometry.Rect{X: 0, Y: 0, Width: 12, Height: 1}
	clone.Layouts["mobile"].Components[0] = "mutated"
	clone.Breakpoints[0].GridCols = 99

	if _, ok := s.Components[0].ResponsiveCanvasLayout["desktop"]; ok {
		t.Error("clone mutation leaked into original responsive map")
	}
	if s.Layouts["mobile"].Components[0] != "c1" {
		t.Error("clone mutation leaked into original layout list")
	}
	if s.Breakpoints[0].GridCols != 4 {
		t.Error("clone mutation leaked into original breakpoints")
	}
}

func TestHasLink(t *testing.T) {
	s := testSchema()
	if !s.HasLink("c1", "c2") {
		t.Error("expected link c1-c2")
	}
	if !s.HasLink("c2", "c1") {
		t.Error("links are unordered; reverse lookup should match")
	}
	if s.HasLink("c1", "c3") {
		t.Error("unexpected link c1-c3")
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	s := testSchema()

	var buf bytes.Buffer
	if err := Write(s, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", got, s)
	}
}

func TestReadRejectsMalformedJSON(t *testing.T) {
	if _, err := Read(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestReadInitializesLayouts(t *testing.T) {
	s, err := Read(strings.NewReader(`{"schemaVersion":"1.0","components":[]}`))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s.Layouts == nil {
		t.Fatal("Layouts map should be initialized")
	}
}

func TestNewComponentID(t *testing.T) {
	a, b := NewComponentID(), NewComponentID()
	if a == b {
		t.Error("ids should be unique")
	}
	if !strings.HasPrefix(a, "comp-") {
		t.Errorf("id %q should carry the comp- prefix", a)
	}
}
