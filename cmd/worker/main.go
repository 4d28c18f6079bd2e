package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/ads-board/application/cleanup"
	"github.com/muhammadheryan/ads-board/cmd/config"
	imageRepo "github.com/muhammadheryan/ads-board/repository/image"
	"github.com/muhammadheryan/ads-board/thirdparty/rabbitmq"
	"github.com/muhammadheryan/ads-board/utils/logger"
	"github.com/muhammadheryan/ads-board/utils/metrics"
	"go.uber.org/zap"
)

// worker consumes image cleanup events published after ads and users are deleted.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	metrics.Init(cfg.Metrics.Prefix + "_worker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	images, err := imageRepo.New(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("err init image storage", zap.Error(err))
	}
	cleaner := cleanup.NewCleaner(images, nil)

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cleaner.Handle)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("image cleanup worker running")
	<-ctx.Done()
	logger.Info("image cleanup worker stopped")
}
