package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/transform"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newInspectCmd creates the inspect command: an interactive browser over
// the schema's breakpoints and the components placed in each tier.
func newInspectCmd() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse a schema's breakpoints and components interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schema.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read schema: %w", err)
			}
			if normalize {
				s = transform.Normalize(s)
			}
			if len(s.Breakpoints) == 0 {
				return fmt.Errorf("schema has no breakpoints to inspect")
			}

			model := NewSchemaModel(s)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&normalize, "normalize", true, "cascade breakpoints before inspecting")
	return cmd
}

// =============================================================================
// SchemaModel - Interactive schema browser
// =============================================================================

// SchemaModel is the bubbletea model for browsing a schema per breakpoint.
type SchemaModel struct {
	Schema     *schema.Schema
	Breakpoint int // index into Schema.Breakpoints
	Cursor     int // index into the current tier's components
}

// NewSchemaModel creates a schema browser starting at the first breakpoint.
func NewSchemaModel(s *schema.Schema) SchemaModel {
	return SchemaModel{Schema: s}
}

func (m SchemaModel) Init() tea.Cmd {
	return nil
}

func (m SchemaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.Breakpoint > 0 {
				m.Breakpoint--
				m.Cursor = 0
			}
		case "right", "l":
			if m.Breakpoint < len(m.Schema.Breakpoints)-1 {
				m.Breakpoint++
				m.Cursor = 0
			}
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.components())-1 {
				m.Cursor++
			}
		}
	}
	return m, nil
}

// components returns the components active in the current breakpoint tier,
// falling back to every component when the tier has no layout entry.
func (m SchemaModel) components() []schema.Component {
	bp := m.Schema.Breakpoints[m.Breakpoint]
	ids := m.Schema.ActiveComponents(bp.Name)
	if len(ids) == 0 {
		return m.Schema.Components
	}
	out := make([]schema.Component, 0, len(ids))
	for _, id := range ids {
		if c := m.Schema.Component(id); c != nil {
			out = append(out, *c)
		}
	}
	return out
}

func (m SchemaModel) View() string {
	var b strings.Builder

	bp := m.Schema.Breakpoints[m.Breakpoint]
	title := fmt.Sprintf("%s  %s", bp.Name, listDimStyle.Render(fmt.Sprintf("(min-width %dpx, %d cols)", bp.MinWidth, bp.GridCols)))
	b.WriteString(StyleTitle.Render("Breakpoint: ") + StyleHighlight.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ breakpoint  ↑/↓ component  q quit"))
	b.WriteString("\n\n")

	components := m.components()
	rows := [][]string{}
	for i, c := range components {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rect := "—"
		if r, ok := c.LayoutFor(bp.Name); ok {
			rect = fmt.Sprintf("(%d,%d) %dx%d", r.X, r.Y, r.Width, r.Height)
		}

		tag := c.SemanticTag
		if tag == "" {
			tag = "—"
		}

		rows = append(rows, []string{cursor, c.Name, c.ID, rect, tag})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Component", "ID", "Rect", "Tag").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d components · breakpoint %d/%d]",
		m.Cursor+1, len(components), m.Breakpoint+1, len(m.Schema.Breakpoints))))

	return b.String()
}
