package cli

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/transform"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/validate"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"dot", []string{"dot"}},
		{"dot,json", []string{"dot", "json"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "schema.json", "schema"},
		{"out.svg", "schema.json", "out"},
		{"graphs/links", "schema.json", "graphs/links"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	if got := outputPath("schema", "custom.svg", "svg", 1); got != "custom.svg" {
		t.Errorf("explicit single-format output = %q, want custom.svg", got)
	}
	if got := outputPath("schema", "custom.svg", "dot", 2); got != "schema.dot" {
		t.Errorf("multi-format output = %q, want schema.dot", got)
	}
	if got := outputPath("schema", "", "svg", 1); got != "schema.svg" {
		t.Errorf("default output = %q, want schema.svg", got)
	}
}

func TestStarterSchemaValidates(t *testing.T) {
	s := starterSchema()

	res := validate.Validate(transform.Normalize(s))
	if !res.Valid {
		t.Fatalf("starter schema should validate after normalize, got errors: %+v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("starter schema should be warning-free, got: %+v", res.Warnings)
	}
}

func TestSchemaModelNavigation(t *testing.T) {
	m := NewSchemaModel(transform.Normalize(starterSchema()))

	key := func(s string) tea.Msg {
		if s == "right" {
			return tea.KeyMsg{Type: tea.KeyRight}
		}
		return tea.KeyMsg{Type: tea.KeyDown}
	}

	next, _ := m.Update(key("right"))
	m = next.(SchemaModel)
	if m.Breakpoint != 1 {
		t.Errorf("Breakpoint = %d after right, want 1", m.Breakpoint)
	}

	next, _ = m.Update(key("down"))
	m = next.(SchemaModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d after down, want 1", m.Cursor)
	}

	// View should render without panicking on every tier.
	for i := 0; i < len(m.Schema.Breakpoints); i++ {
		m.Breakpoint = i
		m.Cursor = 0
		if m.View() == "" {
			t.Errorf("empty view for breakpoint %d", i)
		}
	}
}

func TestLoggerContext(t *testing.T) {
	logger := newLogger(io.Discard, charmlog.DebugLevel)
	ctx := withLogger(context.Background(), logger)

	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("loggerFromContext should fall back to a default logger")
	}
}
