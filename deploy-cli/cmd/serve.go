package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/margined-protocol/mrgnd-perpetuals/metrics"
	registryapi "github.com/margined-protocol/mrgnd-perpetuals/registry-api"
)

func serveCmd(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "serve",
		Short: "To serve the registry over HTTP, with /metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			gin.SetMode(gin.ReleaseMode)
			h := registryapi.NewHandler(a.registry, a.logger, metrics.NewPromIndicators(reg))
			router := registryapi.NewRouter(h, reg)

			for err := range registryapi.Serve(ctx, a.v.GetString("server.addr"), router, a.logger) {
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	command.Flags().String("addr", "", "Listen address, e.g. :8080")
	_ = a.v.BindPFlag("server.addr", command.Flags().Lookup("addr"))
	return command
}
