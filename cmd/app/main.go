package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakery/cmd"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/rabbitmq"
	"bakery/internal/adapters/out/redis"

	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if err = postgres.RunMigrations(configs.DSN(), logger); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	conn, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer conn.Close()

	publisher, err := rabbitmq.NewPublisher(conn, configs.OrderQueue)
	if err != nil {
		log.Fatalf("Error creating order publisher: %v", err)
	}
	defer publisher.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, "api", logger)

	if configs.RedisURL != "" {
		cache, cacheErr := redis.NewProductCache(context.Background(), configs.RedisURL)
		if cacheErr != nil {
			log.Fatalf("Error connecting to Redis: %v", cacheErr)
		}
		defer cache.Close()
		app.UseProductCache(cache)
	} else {
		logger.Info("REDIS_URL not set, products are served uncached")
	}

	startWebServer(&app, configs.HTTPPort, logger)
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown failed", "error", err)
		}
	}()

	logger.Info("Order API starting", "port", port)
	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && ctx.Err() == nil {
		e.Logger.Fatal(err)
	}
}
