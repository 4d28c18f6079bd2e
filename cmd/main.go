package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adapp "github.com/muhammadheryan/ads-board/application/ad"
	"github.com/muhammadheryan/ads-board/application/cleanup"
	commentapp "github.com/muhammadheryan/ads-board/application/comment"
	userapp "github.com/muhammadheryan/ads-board/application/user"
	"github.com/muhammadheryan/ads-board/cmd/config"
	redisclient "github.com/muhammadheryan/ads-board/cmd/redis"
	_ "github.com/muhammadheryan/ads-board/docs"
	adRepo "github.com/muhammadheryan/ads-board/repository/ad"
	commentRepo "github.com/muhammadheryan/ads-board/repository/comment"
	imageRepo "github.com/muhammadheryan/ads-board/repository/image"
	redisRepo "github.com/muhammadheryan/ads-board/repository/redis"
	txRepo "github.com/muhammadheryan/ads-board/repository/tx"
	userRepo "github.com/muhammadheryan/ads-board/repository/user"
	"github.com/muhammadheryan/ads-board/thirdparty/rabbitmq"
	"github.com/muhammadheryan/ads-board/transport"
	"github.com/muhammadheryan/ads-board/utils/logger"
	"github.com/muhammadheryan/ads-board/utils/metrics"
	validatorx "github.com/muhammadheryan/ads-board/utils/validator"
	"go.uber.org/zap"
)

// @title ADS-BOARD API
// @version 1.0
// @description Classifieds board API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.basic BasicAuth
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	metrics.Init(cfg.Metrics.Prefix)
	validatorx.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg.Redis); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	images, err := imageRepo.New(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("err init image storage", zap.Error(err))
	}

	// Without a broker, image files are removed inline after deletes.
	var publisher rabbitmq.ImagePublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	AdRepo := adRepo.NewAdRepository(db)
	CommentRepo := commentRepo.NewCommentRepository(db)
	RedisRepo := redisRepo.NewRepository()
	Cleaner := cleanup.NewCleaner(images, publisher)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, userapp.Deps{
		TxRepo:      TxRepo,
		UserRepo:    UserRepo,
		AdRepo:      AdRepo,
		CommentRepo: CommentRepo,
		RedisRepo:   RedisRepo,
		ImageRepo:   images,
		Cleaner:     Cleaner,
	})
	AdApp := adapp.NewAdApp(cfg, TxRepo, AdRepo, CommentRepo, UserApp, images, Cleaner)
	CommentApp := commentapp.NewCommentApp(TxRepo, AdRepo, CommentRepo, UserApp)

	httpTransport := transport.NewTransport(cfg, UserApp, AdApp, CommentApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("err shutdown server", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}
