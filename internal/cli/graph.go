package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/pipeline"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output  string   // output file (single format) or base path (multiple)
	formats []string // output formats: "dot", "svg", "json"
	policy  string
	refresh bool
	noCache bool
}

// newGraphCmd creates the graph command for rendering the link graph.
func newGraphCmd() *cobra.Command {
	var formatsStr string
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Render the component link graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runGraph(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, json (comma-separated)")
	cmd.Flags().StringVar(&opts.policy, "policy", "", "link policy: transitive (default), one-to-one")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

func runGraph(cmd *cobra.Command, path string, opts *graphOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	s, err := schema.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	runner, err := newRunner(cmd, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	p := newProgress(logger)
	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, s, pipeline.Options{
		Policy:  opts.policy,
		Formats: opts.formats,
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d format(s)", len(artifacts)))

	base := basePath(opts.output, path)
	for _, format := range opts.formats {
		out := outputPath(base, opts.output, format, len(opts.formats))
		if err := writeArtifact(artifacts[format], out); err != nil {
			return err
		}
		printFile(out)
	}
	printStats(len(s.Components), len(s.Breakpoints), hit)
	return nil
}

// writeArtifact writes one rendered artifact to disk.
func writeArtifact(data []byte, path string) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// basePath derives the base output path from the output and input file
// paths. If output is empty, it strips the extension from input.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	return strings.TrimSuffix(output, filepath.Ext(output))
}

// outputPath picks the final path for one artifact. A single format with an
// explicit --output keeps the exact name the user asked for.
func outputPath(base, explicit, format string, formatCount int) string {
	if explicit != "" && formatCount == 1 {
		return explicit
	}
	return base + "." + format
}
