package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/jobs"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootstrap.SetGinMode(cfg.App.Environment)

	st, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	logger.Info("storage ready",
		zap.String("driver", st.Driver),
		zap.String("key", cfg.Storage.Key),
	)

	app := bootstrap.NewApp(ctx, st, logger, bootstrap.AppOptions{SeedDemo: cfg.App.SeedDemo})

	scheduler := jobs.NewScheduler(app.Store, st.Backup, logger)
	if err := scheduler.Start(cfg.Jobs.BackupCron); err != nil {
		return err
	}
	defer scheduler.Stop()

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		App:            app,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
