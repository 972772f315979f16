package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/glebsolovev/fulfillment-service/internal/app"
	"github.com/glebsolovev/fulfillment-service/internal/config"
	"github.com/glebsolovev/fulfillment-service/internal/handler"
	"github.com/glebsolovev/fulfillment-service/internal/postgres"
	"github.com/glebsolovev/fulfillment-service/internal/repo"
	"github.com/glebsolovev/fulfillment-service/internal/scheduler"
	"github.com/glebsolovev/fulfillment-service/internal/service"
	"github.com/glebsolovev/fulfillment-service/pkg/cache"
	"github.com/glebsolovev/fulfillment-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Fulfillment Service API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	autoshipRepo := repo.NewAutoshipRepo(db)
	inventoryRepo := repo.NewInventoryRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	inventoryService := service.NewInventoryService(logger, inventoryRepo)
	orderService := service.NewOrderService(logger, txManager, orderRepo, inventoryService, orderCache)
	autoshipService := service.NewAutoshipService(logger, txManager, autoshipRepo, orderRepo, inventoryService)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, autoshipService, inventoryService)
	deliveryScheduler := scheduler.New(logger, autoshipService, conf.Scheduler)

	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, deliveryScheduler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
