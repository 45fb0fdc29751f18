package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vfiber/internal/config"
	"github.com/vango-dev/vfiber/internal/demo"
	"github.com/vango-dev/vfiber/internal/errors"
	"github.com/vango-dev/vfiber/pkg/fiber"
	"github.com/vango-dev/vfiber/pkg/server"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		addr string
		app  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve live render sessions over websockets",
		Long: `Serve a demo component to websocket clients.

Each connection gets its own engine. Committed changes are streamed as
JSON op batches; clients send events back as JSON messages.

Examples:
  vfiber serve
  vfiber serve --addr :9000 --app todo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if app != "" {
				cfg.Server.Root = app
			}

			srvCfg, err := serverConfig(cfg, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
			if err != nil {
				return err
			}
			srvCfg.Logger = cfg.Log.Logger(cmd.ErrOrStderr())

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			success(cmd.OutOrStdout(), "serving %s on %s", cfg.Server.Root, cfg.Server.Addr)
			return server.New(srvCfg).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().StringVarP(&app, "app", "a", "", "Demo component to serve (default from config)")

	return cmd
}

// serverConfig maps the file configuration onto the server.
func serverConfig(cfg *config.Config, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*server.Config, error) {
	comp, ok := demo.Lookup(cfg.Server.Root)
	if !ok {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetail("server.root is " + cfg.Server.Root).
			WithSuggestion("Use one of the demo components: counter, todo")
	}

	out := &server.Config{
		Addr:         cfg.Server.Addr,
		Root:         func() *vdom.Element { return vdom.CreateElement(comp, nil) },
		FrameBudget:  cfg.Scheduler.FrameBudget.Std(),
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		Namespace:    cfg.Metrics.Namespace,
	}
	if cfg.Metrics.Enabled {
		out.MetricsPath = cfg.Metrics.Path
		out.Registerer = reg
		out.Gatherer = gatherer
		out.EngineMetrics = fiber.NewMetrics(
			fiber.WithRegistry(reg),
			fiber.WithNamespace(cfg.Metrics.Namespace),
		)
	}
	return out, nil
}
