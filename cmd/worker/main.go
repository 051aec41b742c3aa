package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bakery/cmd"

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

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	conn, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer conn.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, nil, "worker", logger)
	consumer := app.CreateOrderConsumer(conn)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = consumer.Run(ctx); err != nil && ctx.Err() == nil {
		logger.ErrorContext(ctx, "Order consumer stopped", "error", err)
		os.Exit(1)
	}
	logger.InfoContext(context.Background(), "Worker stopped")
}
