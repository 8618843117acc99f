package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/poi-explorer/internal/config"
	"github.com/poi-explorer/internal/pkg/logger"
	"github.com/poi-explorer/internal/repository/cache"
	redisrepo "github.com/poi-explorer/internal/repository/redis"
	"github.com/poi-explorer/internal/worker"
	"github.com/poi-explorer/internal/worker/stats"
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

	if !cfg.Worker.Enabled {
		zapLogger.Info("Workers are disabled, exiting")
		return
	}

	zapLogger.Info("Starting POI Explorer worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup))

	// 3. Подключение к Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// 4. Инициализация репозиториев
	streamRepo := redisrepo.NewStreamRepository(redisClient.Client(), zapLogger)
	statsRepo := redisrepo.NewStatsRepository(redisClient.Client(), zapLogger)

	// 5. Регистрация воркеров
	manager := worker.NewWorkerManager(zapLogger)
	manager.Register(stats.NewSyncStatsWorker(
		streamRepo,
		statsRepo,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		zapLogger,
	))

	// 6. Запуск воркеров
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		zapLogger.Fatal("Failed to start workers", zap.Error(err))
	}

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down workers...")
	cancel()

	if err := manager.Stop(); err != nil {
		zapLogger.Error("Workers shutdown error", zap.Error(err))
	}

	zapLogger.Info("Worker exited")
}
