package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tableside/internal/catalog"
	"tableside/internal/commons"
	"tableside/internal/config"
	"tableside/internal/infrastructure/logger"
	"tableside/internal/infrastructure/mysql"
	"tableside/internal/infrastructure/rabbitmq"
	"tableside/internal/notify"
	"tableside/internal/order"
	"tableside/internal/server"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		cfg, err = config.Load()
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	hub := notify.NewHub(zapLogger)
	publisher := notify.Publisher(hub)

	if cfg.RabbitMQ.Enabled {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ)
		if err != nil {
			zapLogger.Fatal("connecting to rabbitmq", zap.Error(err))
		}
		defer conn.Close()

		broadcaster, err := rabbitmq.NewBroadcaster(conn, cfg.RabbitMQ.Exchange)
		if err != nil {
			zapLogger.Fatal("creating broadcaster", zap.Error(err))
		}
		defer broadcaster.Close()

		publisher = notify.NewMultiPublisher(hub, broadcaster)
		zapLogger.Info("rabbitmq broadcaster enabled", zap.String("exchange", cfg.RabbitMQ.Exchange))
	}

	catalogCtrl := catalog.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, publisher, zapLogger)
	events := server.NewEventsHandler(hub, zapLogger)

	router := server.NewRouter(catalogCtrl, orderCtrl, events, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
