package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/config"
	"github.com/fekuna/omnipos-backoffice-service/internal/auth"
	authH "github.com/fekuna/omnipos-backoffice-service/internal/auth/handler"
	authRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/auth/repository"
	authUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/auth/usecase"
	bizH "github.com/fekuna/omnipos-backoffice-service/internal/business/handler"
	bizRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/business/repository"
	bizUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/business/usecase"
	invH "github.com/fekuna/omnipos-backoffice-service/internal/inventory/handler"
	invListenerPkg "github.com/fekuna/omnipos-backoffice-service/internal/inventory/listener"
	invRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/inventory/usecase"
	menuH "github.com/fekuna/omnipos-backoffice-service/internal/menu/handler"
	menuRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/menu/repository"
	menuUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/menu/usecase"
	"github.com/fekuna/omnipos-backoffice-service/internal/notification/feed"
	notifH "github.com/fekuna/omnipos-backoffice-service/internal/notification/handler"
	notifRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/notification/repository"
	notifUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/notification/usecase"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/database/postgres"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	posH "github.com/fekuna/omnipos-backoffice-service/internal/pos/handler"
	posRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/pos/repository"
	posUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/pos/usecase"
	"github.com/fekuna/omnipos-backoffice-service/internal/server"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}
	if cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	if err := postgres.Migrate(db); err != nil {
		appLogger.Fatal("Could not run migrations", zap.Error(err))
	}

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Kafka
	kafkaProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer kafkaProducer.Close()

	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 6. Initialize Repositories
	authRepo := authRepoPkg.NewPGRepository(db)
	bizRepo := bizRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	menuRepo := menuRepoPkg.NewPGRepository(db)
	posRepo := posRepoPkg.NewPGRepository(db)
	notifRepo := notifRepoPkg.NewPGRepository(db)

	// 7. Initialize UseCases
	tm := auth.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.ExpiresIn)
	authUC := authUCPkg.NewAuthUseCase(authRepo, tm, appLogger)
	bizUC := bizUCPkg.NewBusinessUseCase(bizRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, redisClient, appLogger)
	menuUC := menuUCPkg.NewMenuUseCase(menuRepo, appLogger)
	posUC := posUCPkg.NewPosUseCase(posRepo, kafkaProducer, appLogger)
	notifUC := notifUCPkg.NewNotificationUseCase(notifRepo, appLogger)

	// 8. Start Listener
	invListener := invListenerPkg.NewInventoryListener(kafkaConsumer, invUC, appLogger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go invListener.Start(ctx)

	// 9. Initialize Handlers
	clock := clockwork.NewRealClock()
	handlers := &server.Handlers{
		Auth:         authH.NewAuthHandler(authUC, appLogger),
		Business:     bizH.NewBusinessHandler(bizUC, appLogger),
		Inventory:    invH.NewInventoryHandler(invUC, appLogger),
		Menu:         menuH.NewMenuHandler(menuUC, appLogger),
		Pos:          posH.NewPosHandler(posUC, appLogger),
		Notification: notifH.NewNotificationHandler(notifUC, appLogger),
		Feed:         feed.NewFeed(notifUC, appLogger, clock, cfg.Feed.Interval, cfg.Feed.PageSize),
	}

	// 10. Start HTTP Server
	srv := server.New(&cfg.Server, tm, handlers, appLogger)

	go func() {
		if err := srv.Run(); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		appLogger.Error("Shutdown error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
