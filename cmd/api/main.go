package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/poi-explorer/internal/config"
	deliveryhttp "github.com/poi-explorer/internal/delivery/http"
	"github.com/poi-explorer/internal/delivery/http/handler"
	"github.com/poi-explorer/internal/pkg/logger"
	"github.com/poi-explorer/internal/repository/cache"
	"github.com/poi-explorer/internal/repository/postgres"
	redisrepo "github.com/poi-explorer/internal/repository/redis"
	"github.com/poi-explorer/internal/usecase"
)

func main() {
	// 1. Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Инициализация логгера
	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting POI Explorer API",
		zap.String("env", cfg.Server.Env),
		zap.String("address", cfg.GetServerAddr()))

	// 3. Подключение к PostgreSQL
	db, err := postgres.New(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	// 4. Инициализация схемы БД
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.InitSchema(ctx); err != nil {
		cancel()
		zapLogger.Fatal("Failed to initialize database schema", zap.Error(err))
	}
	cancel()

	// 5. Подключение к Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// 6. Инициализация репозиториев
	poiRepo := postgres.NewPOIRepository(db)
	userRepo := postgres.NewUserRepository(db)
	streamRepo := redisrepo.NewStreamRepository(redisClient.Client(), zapLogger)
	statsRepo := redisrepo.NewStatsRepository(redisClient.Client(), zapLogger)

	// 7. Инициализация usecase
	authUC := usecase.NewAuthUseCase(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, zapLogger)
	poiUC := usecase.NewPOIUseCase(poiRepo, zapLogger)
	searchUC := usecase.NewSearchUseCase(poiRepo, zapLogger)
	syncUC := usecase.NewSyncUseCase(poiRepo, streamRepo, zapLogger)
	distanceUC := usecase.NewDistanceUseCase(poiRepo, zapLogger)
	statsUC := usecase.NewStatsUseCase(statsRepo, zapLogger)

	// 8. Инициализация handlers
	authHandler := handler.NewAuthHandler(authUC, zapLogger)
	poiHandler := handler.NewPOIHandler(poiUC, searchUC, zapLogger)
	syncHandler := handler.NewSyncHandler(syncUC, zapLogger)
	distanceHandler := handler.NewDistanceHandler(distanceUC, zapLogger)
	statsHandler := handler.NewStatsHandler(statsUC, zapLogger)

	// 9. Создание HTTP сервера
	server := deliveryhttp.NewServer(
		cfg,
		zapLogger,
		authUC,
		authHandler,
		poiHandler,
		syncHandler,
		distanceHandler,
		statsHandler,
		db,
		redisClient,
	)

	// 10. Запуск сервера в горутине
	go func() {
		if err := server.Start(); err != nil {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}
