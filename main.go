// main.go - Entry point and dependency injection
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sstent/fitcoach-go/internal/agents"
	"github.com/sstent/fitcoach-go/internal/config"
	"github.com/sstent/fitcoach-go/internal/garmindb"
	"github.com/sstent/fitcoach-go/internal/service"
	syncsvc "github.com/sstent/fitcoach-go/internal/sync"
	"github.com/sstent/fitcoach-go/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

type App struct {
	cfg      config.Config
	logger   *zap.SugaredLogger
	reader   *garmindb.Reader
	service  *service.Service
	syncer   *syncsvc.Service
	cron     *cron.Cron
	server   *http.Server
	shutdown chan os.Signal
}

func main() {
	// One-shot bridge mode: process a single JSON envelope from argv and
	// print the response envelope to stdout. Logs go to stderr so stdout
	// stays clean JSON.
	request := flag.String("request", "", "process one JSON request envelope and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using system environment variables")
	}

	app := &App{
		cfg:      config.Load(),
		shutdown: make(chan os.Signal, 1),
	}
	if err := app.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer app.logger.Sync()

	if *request != "" {
		out := app.service.Handle(context.Background(), []byte(*request))
		fmt.Println(string(out))
		app.reader.Close()
		return
	}

	app.start()

	signal.Notify(app.shutdown, os.Interrupt, syscall.SIGTERM)
	<-app.shutdown

	app.stop()
}

func (app *App) init() error {
	logger, err := newLogger(app.cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	app.logger = logger.Sugar()

	app.reader = garmindb.NewReader(app.cfg.GarminDBPath, app.logger)
	app.syncer = syncsvc.NewService(app.cfg.GarminDBCLI, app.cfg.GarminDBPath, app.logger)

	generator := agents.NewGeminiGenerator(app.cfg.GeminiAPIKey, app.cfg.GeminiModel)
	if app.cfg.GeminiAPIKey == "" {
		app.logger.Warn("GEMINI_API_KEY not set, insights will use canned fallbacks")
	}
	crew := agents.NewCrew(generator, app.logger)
	app.service = service.New(app.reader, crew, app.logger)

	app.cron = cron.New()

	if app.cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	web.NewWebHandler(app.reader, app.service, app.syncer, app.logger).RegisterRoutes(router)

	app.server = &http.Server{
		Addr:    app.cfg.HTTPAddress,
		Handler: router,
	}

	return nil
}

func (app *App) start() {
	if app.cfg.SyncEnabled {
		_, err := app.cron.AddFunc(app.cfg.SyncSchedule, func() {
			app.logger.Info("starting scheduled sync")
			result := app.syncer.Sync(context.Background())
			if !result.Success {
				app.logger.Warnw("scheduled sync failed", "message", result.Message)
			}
		})
		if err != nil {
			app.logger.Warnw("invalid sync schedule, auto-sync disabled",
				"schedule", app.cfg.SyncSchedule, "error", err)
		} else {
			app.cron.Start()
		}
	}

	go func() {
		app.logger.Infow("server starting", "addr", app.cfg.HTTPAddress)
		if err := app.server.ListenAndServe(); err != http.ErrServerClosed {
			app.logger.Errorw("server error", "error", err)
		}
	}()
}

func (app *App) stop() {
	app.logger.Info("shutting down")

	app.cron.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Errorw("server shutdown error", "error", err)
	}

	if err := app.reader.Close(); err != nil {
		app.logger.Errorw("database close error", "error", err)
	}

	app.logger.Info("shutdown complete")
}

// newLogger writes to stderr in all modes so the one-shot bridge can keep
// stdout as pure JSON.
func newLogger(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
