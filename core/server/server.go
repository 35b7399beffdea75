package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bump-planner/core/config"
	"bump-planner/core/jobs"
	"bump-planner/core/logger"
	"bump-planner/core/middleware"
	eventModule "bump-planner/modules/event"
	eventRepository "bump-planner/modules/event/repository"
	syncModule "bump-planner/modules/sync"
	templateModule "bump-planner/modules/template"
	viewModule "bump-planner/modules/view"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run wires the whole service together and blocks until shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware()
	eventRepo := eventRepository.NewEventRepository()

	eventSvc := eventModule.Init(e, eventRepo, mw)
	templateModule.Init(e, eventRepo, mw)
	syncSvc := syncModule.Init(e, cfg, eventRepo, mw)
	viewModule.Init(e, eventSvc, mw)

	if cfg.Sync.RunOnStartup {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		report := syncSvc.SyncSources(ctx)
		logger.Info("Server:StartupSync:Done", "results", report.Results)
		if reminders, appErr := syncSvc.GenerateDailyReminders(ctx); appErr != nil {
			logger.Error("Server:StartupReminders:Failed", "error", appErr)
		} else {
			logger.Info("Server:StartupReminders:Done", "created", reminders.Created)
		}
		cancel()
	}

	var background *jobs.Jobs
	if cfg.Jobs.Enabled {
		background = jobs.New(cfg.Jobs, syncSvc)
		if err := background.Start(); err != nil {
			logger.Error("Server:Jobs:StartFailed", "error", err)
			background = nil
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Stopped", "error", err)
		}
	}()
	logger.Info("Server:Started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server:ShuttingDown")
	if background != nil {
		background.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
