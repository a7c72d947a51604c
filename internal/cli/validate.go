package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/pipeline"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/validate"
)

// validateOpts holds the command-line flags for the validate command.
type validateOpts struct {
	normalize bool   // cascade breakpoints before validating
	policy    string // link policy: "transitive" or "one-to-one"
	refresh   bool   // bypass cached results
	noCache   bool   // disable the cache entirely
	strict    bool   // treat warnings as failures
}

// newValidateCmd creates the validate command.
//
// The command exits non-zero when the schema has errors, so it slots
// directly into CI. With --strict, warnings fail the run too.
func newValidateCmd() *cobra.Command {
	opts := validateOpts{normalize: true}

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Run the consistency rules against a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.normalize, "normalize", opts.normalize, "cascade breakpoints before validating")
	cmd.Flags().StringVar(&opts.policy, "policy", "", "link policy: transitive (default), one-to-one")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "treat warnings as failures")

	return cmd
}

func runValidate(cmd *cobra.Command, path string, opts *validateOpts) error {
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
	result, err := runner.Execute(ctx, s, pipeline.Options{
		Normalize: opts.normalize,
		Policy:    opts.policy,
		Refresh:   opts.refresh,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Checked %d components", result.Stats.ComponentCount))

	report := result.Validation
	printReport(report)
	printStats(len(result.Schema.Components), len(result.Schema.Breakpoints), result.CacheInfo.ValidateHit)

	if !report.Valid {
		return fmt.Errorf("schema has %d error(s)", len(report.Errors))
	}
	if opts.strict && len(report.Warnings) > 0 {
		return fmt.Errorf("schema has %d warning(s) and --strict is set", len(report.Warnings))
	}

	printSuccess("Schema is valid")
	if len(report.Warnings) == 0 {
		printNextStep("Render the link graph", "vlb graph "+path)
	}
	return nil
}

// printReport prints every finding, errors before warnings.
func printReport(report validate.Result) {
	for _, f := range report.Errors {
		printFinding(styleIconError, iconError, string(f.Code), findingLine(f))
	}
	for _, f := range report.Warnings {
		printFinding(styleIconWarning, iconWarning, string(f.Code), findingLine(f))
	}
}

func findingLine(f validate.Finding) string {
	msg := f.Message
	if f.Field != "" {
		msg += " " + StyleDim.Render("("+f.Field+")")
	}
	return msg
}

// newRunner builds a pipeline runner from the loaded config, honoring the
// --no-cache escape hatch.
func newRunner(cmd *cobra.Command, noCache bool) (*pipeline.Runner, error) {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if noCache {
		return pipeline.NewRunner(nil, logger), nil
	}

	c, err := cfg.OpenCache(cmdContext(cmd))
	if err != nil {
		logger.Warn("cache unavailable, continuing without it", "error", err)
		return pipeline.NewRunner(nil, logger), nil
	}
	return pipeline.NewRunner(c, logger), nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
