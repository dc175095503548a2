package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"reader/config"
	"reader/di"
	"reader/driver/reader_db"
	"reader/job"
	"reader/rest"
	"reader/utils/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.InitLogger().Error("Failed to load configuration", "error", err)
		panic(err)
	}

	log := logger.InitLoggerWithConfig(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("Starting server", "port", cfg.Server.Port, "news_source", cfg.NewsSource.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := reader_db.InitDBConnection(ctx)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer db.Close()

	container := di.NewApplicationComponents(db, cfg)

	if cfg.Jobs.RefreshEnabled {
		go job.ArticleRefreshJobRunner(ctx, container.FetchArticlesUsecase, cfg.Jobs)
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	go func() {
		if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error("Error starting server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Error during shutdown", "error", err)
	}
}
