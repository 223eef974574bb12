package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxflow/pkg/pipeline"
	"github.com/matzehuels/boxflow/pkg/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		maxBodyBytes int64
		noCache      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Routes:
  GET  /healthz
  GET  /version
  POST /v1/layout   tree description → layout document
  POST /v1/render   tree description → artifact (?format=svg|png|dot|graph|json)

The server shares the cache selected with --cache and stops gracefully on
interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") && c.Config.Server.Addr != "" {
				addr = c.Config.Server.Addr
			}
			if !cmd.Flags().Changed("max-body") && c.Config.Server.MaxBodyBytes > 0 {
				maxBodyBytes = c.Config.Server.MaxBodyBytes
			}
			return c.runServe(cmd.Context(), addr, maxBodyBytes, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", pipeline.DefaultAddr, "listen address")
	cmd.Flags().Int64Var(&maxBodyBytes, "max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, maxBodyBytes int64, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	printInfo("Serving on %s", addr)
	printDetail("press Ctrl+C to stop")

	srv := server.New(runner, c.Logger, server.WithMaxBodyBytes(maxBodyBytes))
	return srv.ListenAndServe(ctx, addr)
}
