package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/geometry"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
)

// newInitCmd creates the init command. It scaffolds a starter schema with a
// header/main/footer skeleton across the standard three breakpoints.
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Scaffold a starter schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "schema.json"
			if len(args) == 1 {
				path = args[0]
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			if err := schema.WriteFile(starterSchema(), path); err != nil {
				return fmt.Errorf("write schema: %w", err)
			}

			printSuccess("Starter schema created")
			printFile(path)
			printNextStep("Validate it", "vlb validate "+path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// starterSchema builds the scaffold document: three components stacked on
// mobile, with tablet and desktop left sparse so normalize has work to do.
func starterSchema() *schema.Schema {
	headerID := schema.NewComponentID()
	mainID := schema.NewComponentID()
	footerID := schema.NewComponentID()

	s := schema.New()
	s.Components = []schema.Component{
		{
			ID:          headerID,
			Name:        "Header",
			SemanticTag: "header",
			Positioning: schema.Positioning{Type: "sticky", ZIndex: 10},
			ResponsiveCanvasLayout: schema.ResponsiveCanvasLayout{
				"mobile": geometry.Rect{X: 0, Y: 0, Width: 4, Height: 1},
			},
		},
		{
			ID:          mainID,
			Name:        "MainContent",
			SemanticTag: "main",
			ResponsiveCanvasLayout: schema.ResponsiveCanvasLayout{
				"mobile": geometry.Rect{X: 0, Y: 1, Width: 4, Height: 6},
			},
		},
		{
			ID:          footerID,
			Name:        "Footer",
			SemanticTag: "footer",
			ResponsiveCanvasLayout: schema.ResponsiveCanvasLayout{
				"mobile": geometry.Rect{X: 0, Y: 7, Width: 4, Height: 1},
			},
		},
	}
	s.Breakpoints = []schema.Breakpoint{
		{Name: "mobile", MinWidth: 0, GridCols: 4, GridRows: 8},
		{Name: "tablet", MinWidth: 768, GridCols: 8, GridRows: 8},
		{Name: "desktop", MinWidth: 1024, GridCols: 12, GridRows: 8},
	}
	s.Layouts = map[string]schema.LayoutConfig{
		"mobile": {
			Structure:  "stack",
			Components: []string{headerID, mainID, footerID},
			Roles:      map[string]string{"header": headerID, "main": mainID, "footer": footerID},
		},
	}
	return s
}
