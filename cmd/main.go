package main

import (
	"context"
	goerrors "errors"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	identityapp "github.com/muhammadheryan/wa-crm/application/identity"
	savedsearchapp "github.com/muhammadheryan/wa-crm/application/savedsearch"
	searchapp "github.com/muhammadheryan/wa-crm/application/search"
	"github.com/muhammadheryan/wa-crm/cmd/config"
	redisclient "github.com/muhammadheryan/wa-crm/cmd/redis"
	_ "github.com/muhammadheryan/wa-crm/docs"
	customerRepo "github.com/muhammadheryan/wa-crm/repository/customer"
	messageRepo "github.com/muhammadheryan/wa-crm/repository/message"
	paymentRepo "github.com/muhammadheryan/wa-crm/repository/payment"
	redisRepo "github.com/muhammadheryan/wa-crm/repository/redis"
	savedSearchRepo "github.com/muhammadheryan/wa-crm/repository/savedsearch"
	subscriptionRepo "github.com/muhammadheryan/wa-crm/repository/subscription"
	txRepo "github.com/muhammadheryan/wa-crm/repository/tx"
	userRepo "github.com/muhammadheryan/wa-crm/repository/user"
	"github.com/muhammadheryan/wa-crm/thirdparty/rabbitmq"
	"github.com/muhammadheryan/wa-crm/transport"
	"github.com/muhammadheryan/wa-crm/utils/logger"
	validatorx "github.com/muhammadheryan/wa-crm/utils/validator"
	"go.uber.org/zap"
)

// @title WA-CRM SEARCH API
// @version 1.0
// @description Filter search, quick search and saved searches over messages, customers, payments and subscriptions
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to panic if zap init fails
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	MessageRepo := messageRepo.NewMessageRepository(db)
	CustomerRepo := customerRepo.NewCustomerRepository(db)
	PaymentRepo := paymentRepo.NewPaymentRepository(db)
	SubscriptionRepo := subscriptionRepo.NewSubscriptionRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	SavedSearchRepo := savedSearchRepo.NewSavedSearchRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Saved search audit events are optional
	var publisher savedsearchapp.EventPublisher
	p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, saved search events disabled", zap.Error(err))
	} else {
		publisher = p
		defer p.Close()
	}

	// Initialize application layers
	IdentityApp := identityapp.NewIdentityApp(cfg, UserRepo, RedisRepo)
	SearchApp := searchapp.NewSearchApp(cfg, MessageRepo, CustomerRepo, PaymentRepo, SubscriptionRepo, UserRepo)
	SavedSearchApp := savedsearchapp.NewSavedSearchApp(TxRepo, SavedSearchRepo, SearchApp, publisher)

	httpTransport := transport.NewTransport(cfg.Internal.APIKey, IdentityApp, SearchApp, SavedSearchApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("err shutdown server", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil && !goerrors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
}
