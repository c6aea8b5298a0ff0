// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sgrams/mcpserver"
)

func newServeCmd(a *app) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Long: `Starts an MCP server over stdin/stdout exposing the resolve, inform,
trace_path, analyze, compare, route and show tools.

When server.metrics_addr (or --metrics-addr) is set, Prometheus metrics are
served on http://<addr>/metrics for the lifetime of the MCP session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("metrics-addr") {
				a.cfg.Server.MetricsAddr = metricsAddr
			}
			srv := mcpserver.NewServer(a.eng, version,
				mcpserver.WithLogger(a.log),
				mcpserver.WithDefaultSteps(a.cfg.Trace.DefaultSteps),
				mcpserver.WithMaxSteps(a.cfg.Trace.MaxSteps),
			)

			g, ctx := errgroup.WithContext(cmd.Context())
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			if addr := a.cfg.Server.MetricsAddr; addr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
				hs := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

				g.Go(func() error {
					a.log.Info("serving metrics", zap.String("addr", addr))
					if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						return fmt.Errorf("metrics: %w", err)
					}
					return nil
				})
				g.Go(func() error {
					<-ctx.Done()
					shutdownCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
					defer stop()
					return hs.Shutdown(shutdownCtx)
				})
			}

			g.Go(func() error {
				defer cancel()
				return srv.Run(ctx)
			})

			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus /metrics on this address (overrides config)")

	return cmd
}
