package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the vlb CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "vlb",
		Short:        "vlb keeps visual layout schemas consistent across breakpoints",
		Long:         `vlb is the consistency engine for the visual layout builder: it validates page schemas, cascades layouts across breakpoints, converts between grid placement formats, and resolves component link groups.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("vlb %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().String("config", "", "config file (default: ./vlb.toml)")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newNormalizeCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newGroupsCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}

// loadConfig reads the config file named by --config, falling back to
// vlb.toml in the working directory. An explicitly named file must exist;
// the fallback is allowed to be absent.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Load(config.DefaultFilename)
	}
	if _, err := os.Stat(path); err != nil {
		return config.Default(), fmt.Errorf("config file: %w", err)
	}
	return config.Load(path)
}
