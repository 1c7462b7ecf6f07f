package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-task-intake/config"
	_ "smart-task-intake/docs" // Swagger docs
	folderHTTP "smart-task-intake/internal/folder/delivery/http"
	folderUsecase "smart-task-intake/internal/folder/usecase"
	"smart-task-intake/internal/httpserver"
	"smart-task-intake/internal/middleware"
	"smart-task-intake/internal/task"
	taskHTTP "smart-task-intake/internal/task/delivery/http"
	"smart-task-intake/internal/task/repository/sqlite"
	taskUsecase "smart-task-intake/internal/task/usecase"
	"smart-task-intake/pkg/clock"
	"smart-task-intake/pkg/gcalendar"
	"smart-task-intake/pkg/gemini"
	"smart-task-intake/pkg/log"
)

// @title       Smart Task Intake API
// @description Natural-language task intake with folder classification, recurrence, and breakdown for reentry support.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Intake...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Path)

	// 3. Storage
	repo, err := sqlite.New(ctx, cfg.Storage.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer repo.Close()

	// 4. Optional collaborators
	var generator task.SubtaskGenerator
	if cfg.Gemini.Enabled {
		geminiClient, gErr := gemini.NewClient(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
		})
		if gErr != nil {
			logger.Warnf(ctx, "Gemini not available (optional): %v", gErr)
		} else {
			generator = geminiClient
			logger.Infof(ctx, "Gemini breakdown enabled (model %s)", geminiClient.Model())
		}
	}

	var calendarClient taskUsecase.CalendarClient
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			calendarClient = gcal
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Use cases
	realClock := clock.Real{}
	folderUC := folderUsecase.New(logger, repo, realClock)
	taskUC := taskUsecase.New(
		logger,
		repo,
		folderUC,
		generator,
		calendarClient,
		realClock,
		cfg.Intake.Timezone,
		cfg.Intake.DuplicateWindow,
	)

	// 6. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    middleware.New(logger, cfg.HTTPServer.RateLimitPerMin),
		TaskHandler:   taskHTTP.New(logger, taskUC),
		FolderHandler: folderHTTP.New(logger, folderUC),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
