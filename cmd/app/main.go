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

	"shipment/api"
	"shipment/cmd"
	httpin "shipment/internal/adapters/in/http"
	"shipment/internal/adapters/out/orderlease"
	"shipment/internal/adapters/out/postgres"
	"shipment/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zapLogger, err := logger.New(configs.LogLevel)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	if err = run(configs, zapLogger); err != nil {
		zapLogger.Fatal("service stopped with error", zap.Error(err))
	}
}

func run(configs cmd.Config, zapLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(postgres.DSN(
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	))
	if err != nil {
		return err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var rdb redis.UniversalClient
	if configs.RedisAddress != "" {
		client, connectErr := orderlease.Connect(ctx, configs.RedisAddress, configs.RedisPassword, configs.RedisDB)
		if connectErr != nil {
			return connectErr
		}
		defer func() {
			_ = client.Close()
		}()
		rdb = client
		zapLogger.Info("order locks shared through redis", zap.String("address", configs.RedisAddress))
	}

	app := cmd.NewCompositionRoot(configs, gormDB, rdb, zapLogger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, &app, configs.HTTPPort, zapLogger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, zapLogger *zap.Logger) error {
	doc, err := httpin.LoadOpenAPI(ctx, api.OpenAPI)
	if err != nil {
		return err
	}

	e, err := httpin.NewRouter(app.CreateHTTPServer(), doc, zapLogger.Named("http"))
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		zapLogger.Info("http server listening", zap.String("port", port))
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	zapLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
