package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"syllabus-tracker/config"
	_ "syllabus-tracker/docs" // Swagger docs
	"syllabus-tracker/internal/dashboard/repository/memory"
	"syllabus-tracker/internal/dashboard/usecase"
	"syllabus-tracker/internal/httpserver"
	"syllabus-tracker/internal/middleware"
	"syllabus-tracker/pkg/datemath"
	"syllabus-tracker/pkg/gcalendar"
	"syllabus-tracker/pkg/log"
	"syllabus-tracker/pkg/parser"
)

// @title       Syllabus Tracker API
// @description Upload a course syllabus, track extracted assignments, keep tagged notes and export due dates to a calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Syllabus Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Parser URL: %s", cfg.Parser.URL)

	// 3. Parsing service client
	parserClient, err := parser.New(cfg.Parser.URL, cfg.Parser.Timeout)
	if err != nil {
		logger.Error(ctx, "Failed to create parser client: ", err)
		return
	}

	// 4. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar client (optional)
	dashboardCfg := usecase.Config{
		ChatGreeting: cfg.Chat.Greeting,
		ChatReply:    cfg.Chat.Reply,
		CalendarID:   cfg.GoogleCalendar.CalendarID,
	}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			dashboardCfg.Calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Session store
	boards := memory.New(logger, cfg.Session.MaxSessions, cfg.Session.TTL)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Boards:      boards,
		Parser:      parserClient,
		DateMath:    dateMathParser,
		Dashboard:   dashboardCfg,
		Middleware: middleware.Config{
			UploadPerMin:   cfg.RateLimit.UploadPerMin,
			AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
