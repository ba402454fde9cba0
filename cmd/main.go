package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "vitta/docs"
	"vitta/internal/config"
	"vitta/internal/handlers"
	"vitta/internal/logger"
	"vitta/internal/repository"
	"vitta/internal/repository/db"
	"vitta/internal/server"
	"vitta/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title           Vitta Maintenance API
// @version         1.0
// @description     Hospital equipment registry with derived maintenance and calibration alerts.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load(os.Getenv("VITTA_CONFIG"))
	if err != nil {
		// logger level comes from config, so fall back to info here
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DB.Path, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	loc := cfg.Location()
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		Now:        func() time.Time { return time.Now().In(loc) },
		Log:        log,
	})

	created, err := services.EnsureAdmin(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if err != nil {
		log.Fatalw("failed to bootstrap admin", "err", err)
	}
	if created {
		log.Infow("bootstrap admin ready", "username", cfg.Auth.AdminUsername)
	}

	apiHandler := handlers.NewHandler(services, log,
		handlers.WithSignInLimit(cfg.RateLimit.SignInPerMinute, cfg.RateLimit.Burst),
		handlers.WithAllowedOrigins(cfg.WS.AllowedOrigins...),
	)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Monitor.Run(ctx, cfg.Alerts.MonitorInterval)

	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	log.Infow("vitta started", "addr", srv.Addr(), "timezone", loc.String())
	waitForShutdown(cancel, srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
