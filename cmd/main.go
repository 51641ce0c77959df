package main

import (
	"context"
	"net/http"

	authapp "github.com/muhammadheryan/shop-console/application/auth"
	"github.com/muhammadheryan/shop-console/application/console"
	"github.com/muhammadheryan/shop-console/cmd/config"
	redisclient "github.com/muhammadheryan/shop-console/cmd/redis"
	_ "github.com/muhammadheryan/shop-console/docs"
	categoryRepo "github.com/muhammadheryan/shop-console/repository/category"
	productRepo "github.com/muhammadheryan/shop-console/repository/product"
	redisRepo "github.com/muhammadheryan/shop-console/repository/redis"
	shopRepo "github.com/muhammadheryan/shop-console/repository/shop"
	"github.com/muhammadheryan/shop-console/thirdparty/backend"
	"github.com/muhammadheryan/shop-console/thirdparty/rabbitmq"
	"github.com/muhammadheryan/shop-console/transport"
	"github.com/muhammadheryan/shop-console/utils/logger"
	validatorx "github.com/muhammadheryan/shop-console/utils/validator"
	"go.uber.org/zap"
)

// @title SHOP CONSOLE API
// @version 1.0
// @description Back-office console for shops, products and categories
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting console", zap.String("env", cfg.Environment), zap.String("backend", cfg.Backend.BaseURL))

	validatorx.Init()

	// Initialize Redis client
	if err := redisclient.New(cfg.Redis); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	health := map[string]transport.HealthCheck{
		"redis": func(ctx context.Context) error {
			return redisclient.Get().Ping(ctx).Err()
		},
	}

	// Audit events are optional
	var publisher rabbitmq.AuditPublisher = rabbitmq.NopPublisher{}
	if cfg.RabbitMQ.Host != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		publisher = p
		health["rabbitmq"] = p.Healthy
	}
	defer publisher.Close()

	// Initialize repositories
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	ShopRepo := shopRepo.NewShopRepository(client)
	ProductRepo := productRepo.NewProductRepository(client)
	CategoryRepo := categoryRepo.NewCategoryRepository(client)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, RedisRepo)
	Registry := console.NewRegistry(ShopRepo, ProductRepo, CategoryRepo, publisher, cfg.Auth.SessionExpTime)

	httpTransport := transport.NewTransport(AuthApp, Registry, cfg.Server.InternalAPIKey, health)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
