package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/pipeline"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
)

// normalizeOpts holds the command-line flags for the normalize command.
type normalizeOpts struct {
	output  string // output file path; empty writes in place
	refresh bool
	noCache bool
}

// newNormalizeCmd creates the normalize command. It cascades layouts,
// membership, and canvas rects from smaller breakpoints into larger ones
// and writes the filled schema back out.
func newNormalizeCmd() *cobra.Command {
	var opts normalizeOpts

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Cascade breakpoint tiers and write the filled schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func runNormalize(cmd *cobra.Command, path string, opts *normalizeOpts) error {
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
	normalized, hit, err := runner.NormalizeWithCacheInfo(ctx, s, pipeline.Options{
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Normalized %d breakpoint tiers", len(normalized.Breakpoints)))

	out := opts.output
	if out == "" {
		out = path
	}
	if err := schema.WriteFile(normalized, out); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}

	printSuccess("Normalized schema written")
	printFile(out)
	printStats(len(normalized.Components), len(normalized.Breakpoints), hit)
	printNextStep("Validate the result", "vlb validate "+out)
	return nil
}
