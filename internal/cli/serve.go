package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhlee0409/visual-layout-builder-sub001/internal/server"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/pipeline"
)

// newServeCmd creates the serve command, exposing the pipeline over HTTP
// for the canvas frontend.
func newServeCmd() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the consistency pipeline over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			var runner *pipeline.Runner
			if noCache {
				runner = pipeline.NewRunner(nil, logger)
			} else {
				c, err := cfg.OpenCache(ctx)
				if err != nil {
					return err
				}
				runner = pipeline.NewRunner(c, logger)
			}
			defer runner.Close()

			srv := server.New(runner, logger)
			return srv.Start(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	return cmd
}
