package app

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/xtding233/starrail-backend/internal/config"
	"github.com/xtding233/starrail-backend/internal/game"
	"github.com/xtding233/starrail-backend/internal/server"
)

// App holds the servers and the shared dependencies.
type App struct {
	cfg             *config.Config
	ServiceProvider *ServiceProvider
	banners         *game.Loader
	httpServer      *server.HTTPServer
	grpcServer      *server.GRPCServer
	metricsServer   *server.MetricsServer
}

// New initializes the application in dependency order:
// logging, data directory, banner config, servers.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := setupLogging(cfg); err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	logrus.Info("initializing application...")

	app := &App{cfg: cfg}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", cfg.DataDir, err)
	}

	banners, err := game.NewLoader(cfg.BannerConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load banner config from %s: %w", cfg.BannerConfigPath, err)
	}
	app.banners = banners

	app.ServiceProvider = newServiceProvider(cfg, banners)

	app.httpServer = server.NewHTTPServer(cfg.HTTPPort, app.ServiceProvider.Router())
	if err := app.httpServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup http server: %w", err)
	}

	app.grpcServer = server.NewGRPCServer(cfg.GRPCPort, app.ServiceProvider.GRPCAnalytics())
	if err := app.grpcServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup gRPC server: %w", err)
	}

	app.metricsServer = server.NewMetricsServer(cfg.MetricsPort, "/metrics")
	if err := app.metricsServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup metrics server: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"data_dir":    cfg.DataDir,
	}).Info("application initialized successfully")

	return app, nil
}

func setupLogging(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	return nil
}
