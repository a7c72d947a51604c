package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/gridarea"
)

// newConvertCmd creates the convert command group for translating between
// the two grid placement representations.
func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between grid-area matrices and rectangle lists",
	}

	cmd.AddCommand(newAreasToRectsCmd())
	cmd.AddCommand(newRectsToAreasCmd())

	return cmd
}

// newAreasToRectsCmd creates the "convert areas-to-rects" subcommand.
// The input file holds a JSON matrix of component ids; the output is the
// extracted rectangle list.
func newAreasToRectsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "areas-to-rects [file]",
		Short: "Extract component rectangles from a grid-area matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var areas [][]string
			if err := json.Unmarshal(data, &areas); err != nil {
				return fmt.Errorf("parse area matrix: %w", err)
			}

			rects := gridarea.AreasToRects(areas)
			if err := writeJSONOutput(rects, output); err != nil {
				return err
			}
			if output != "" {
				printSuccess("Extracted %d rectangles", len(rects))
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// rectsDocument is the input shape for "convert rects-to-areas".
type rectsDocument struct {
	Rects []gridarea.Placement `json:"rects"`
	Cols  int                  `json:"cols"`
	Rows  int                  `json:"rows"`
}

// newRectsToAreasCmd creates the "convert rects-to-areas" subcommand.
// Grid dimensions come from the document or the --cols/--rows flags, with
// flags taking precedence.
func newRectsToAreasCmd() *cobra.Command {
	var output string
	var cols, rows int

	cmd := &cobra.Command{
		Use:   "rects-to-areas [file]",
		Short: "Stamp component rectangles into a grid-area matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var doc rectsDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parse rect list: %w", err)
			}
			if cols > 0 {
				doc.Cols = cols
			}
			if rows > 0 {
				doc.Rows = rows
			}
			if doc.Cols <= 0 || doc.Rows <= 0 {
				return fmt.Errorf("grid dimensions required (use --cols and --rows or set them in the document)")
			}

			areas := gridarea.RectsToAreas(doc.Rects, doc.Cols, doc.Rows)
			if err := writeJSONOutput(areas, output); err != nil {
				return err
			}
			if output != "" {
				printSuccess("Stamped %d rectangles into a %dx%d grid", len(doc.Rects), doc.Cols, doc.Rows)
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid columns (overrides the document)")
	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows (overrides the document)")
	return cmd
}

// writeJSONOutput marshals v with indentation to path, or to stdout when
// path is empty.
func writeJSONOutput(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
