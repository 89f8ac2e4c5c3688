// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-fips-indicator.
//
// go-fips-indicator is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-fips-indicator/internal/config"
	"github.com/jeremyhahn/go-fips-indicator/internal/rest"
	"github.com/jeremyhahn/go-fips-indicator/pkg/health"
	"github.com/jeremyhahn/go-fips-indicator/pkg/indicator"
	"github.com/jeremyhahn/go-fips-indicator/pkg/logging"
	"github.com/jeremyhahn/go-fips-indicator/pkg/metrics"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve health probes and Prometheus metrics",
	Long: `Run the indicator status server: Kubernetes-style health probes,
the Prometheus metrics endpoint, and a JSON build/version report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		debug := debugLogging || cfg.Debug()
		log := logging.NewLogger(debug)

		metrics.SetBuildInfo(indicator.Version(), buildMode())

		checker := health.NewChecker()

		metricsPath := ""
		if cfg.Metrics.Enabled {
			metricsPath = cfg.Metrics.Path
		}

		server, err := rest.NewServer(&rest.Config{
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			Version:      indicator.Version(),
			MetricsPath:  metricsPath,
			Checker:      checker,
			Logger:       log,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		})
		if err != nil {
			return err
		}

		checker.MarkStarted()

		errCh := make(chan error, 1)
		go func() { errCh <- server.Start() }()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			log.Info("Shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		}
	},
}
