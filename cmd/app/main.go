package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"printshop/cmd"
	httpin "printshop/internal/adapters/in/http"
	"printshop/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := cmd.NewLogger(configs.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to close database", "error", closeErr)
		}
	}()

	loadState(ctx, app, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	startWebServer(ctx, app, configs.WithDefaults().HTTPPort, logger)

	jobManager.StopAll()
	saveState(app, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DataDir:              goDotEnvVariable("DATA_DIR"),
		SystemConfigFile:     goDotEnvVariable("SYSTEM_CONFIG_FILE"),
		AutosaveSchedule:     goDotEnvVariableOr("AUTOSAVE_SCHEDULE", "@every 1m"),
		ConfigReloadSchedule: goDotEnvVariableOr("CONFIG_RELOAD_SCHEDULE", "@every 30s"),
		LogLevel:             goDotEnvVariable("LOG_LEVEL"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

// goDotEnvVariableOr returns fallback only when key is unset, so an empty
// value can disable a schedule.
func goDotEnvVariableOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func loadState(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger) {
	summary, err := app.CreateLoadStateCommandHandler().Handle(ctx, commands.NewLoadStateCommand())
	if err != nil {
		log.Fatalf("Failed to load saved orders: %v", err)
	}
	if summary.NoSavedState {
		logger.InfoContext(ctx, "No saved orders found, starting empty")
		return
	}

	logger.InfoContext(ctx, "Saved orders loaded",
		"snapshot", summary.SnapshotID,
		"format", summary.Format,
		"orders", summary.Loaded,
		"queued", summary.Queued,
		"skipped", summary.SkippedCount(),
		"queue_derived", summary.QueueDerived)
	for _, r := range summary.Skipped {
		logger.WarnContext(ctx, "Skipped saved record", "file", r.Source, "line", r.Line, "error", r.Err)
	}
	if summary.SnapshotMismatch {
		logger.WarnContext(ctx, "orders.txt and order_queue.txt come from different saves")
	}
}

func saveState(app *cmd.CompositionRoot, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	summary, err := app.CreateSaveStateCommandHandler().Handle(ctx, commands.NewSaveStateCommand())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to save orders on shutdown", "error", err)
		return
	}
	logger.InfoContext(ctx, "Orders saved", "snapshot", summary.SnapshotID, "orders", summary.Orders)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := httpin.NewEcho(app.CreateHTTPServer())

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server listening", "port", port)
	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
