package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/wa-crm/cmd/config"
	"github.com/muhammadheryan/wa-crm/thirdparty/rabbitmq"
	"github.com/muhammadheryan/wa-crm/utils/logger"
	"go.uber.org/zap"
)

// Role change consumer. Invalidates cached roles through the internal API.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Role change consumer running", zap.String("queue", rabbitmq.RoleChangedQueue))
	<-ctx.Done()
	logger.Info("Role change consumer stopped")
}
