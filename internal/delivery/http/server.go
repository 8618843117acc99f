package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/poi-explorer/internal/config"
	"github.com/poi-explorer/internal/delivery/http/handler"
	"github.com/poi-explorer/internal/delivery/http/middleware"
	"github.com/poi-explorer/internal/usecase"
)

// HealthChecker - зависимость со своим health-пингом (Postgres, Redis)
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	authUC *usecase.AuthUseCase

	authHandler     *handler.AuthHandler
	poiHandler      *handler.POIHandler
	syncHandler     *handler.SyncHandler
	distanceHandler *handler.DistanceHandler
	statsHandler    *handler.StatsHandler

	db    HealthChecker
	redis HealthChecker
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authUC *usecase.AuthUseCase,
	authHandler *handler.AuthHandler,
	poiHandler *handler.POIHandler,
	syncHandler *handler.SyncHandler,
	distanceHandler *handler.DistanceHandler,
	statsHandler *handler.StatsHandler,
	db HealthChecker,
	redis HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "POI Explorer",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		authUC:          authUC,
		authHandler:     authHandler,
		poiHandler:      poiHandler,
		syncHandler:     syncHandler,
		distanceHandler: distanceHandler,
		statsHandler:    statsHandler,
		db:              db,
		redis:           redis,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.healthCheck)

	auth := middleware.Auth(s.authUC)

	// Auth routes
	api.Post("/auth/register", s.authHandler.Register)
	api.Post("/auth/login", s.authHandler.Login)
	api.Get("/auth/profile", auth, s.authHandler.GetProfile)
	api.Put("/auth/profile", auth, s.authHandler.UpdateProfile)

	// POI routes (все защищены)
	pois := api.Group("/pois", auth)
	pois.Get("/", s.poiHandler.GetAll)
	// nearby регистрируется раньше /:id, иначе fiber сматчит "nearby" как id
	pois.Get("/nearby", s.poiHandler.FindNearby)
	pois.Post("/", s.poiHandler.Create)
	pois.Get("/:id", s.poiHandler.GetByID)
	pois.Put("/:id", s.poiHandler.Update)
	pois.Delete("/:id", s.poiHandler.Delete)

	// Sync routes
	api.Post("/sync", auth, s.syncHandler.SyncPOIs)
	api.Get("/sync/stats", auth, s.statsHandler.GetSyncStats)

	// Distance routes
	api.Post("/distance/pois", auth, s.distanceHandler.BetweenPOIs)
	api.Post("/distance/coordinates", auth, s.distanceHandler.BetweenCoordinates)
}

func (s *Server) healthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK

	checks := fiber.Map{}
	if err := s.db.Health(ctx); err != nil {
		checks["postgres"] = err.Error()
		status = "unhealthy"
		code = fiber.StatusServiceUnavailable
	} else {
		checks["postgres"] = "ok"
	}
	if err := s.redis.Health(ctx); err != nil {
		checks["redis"] = err.Error()
		status = "unhealthy"
		code = fiber.StatusServiceUnavailable
	} else {
		checks["redis"] = "ok"
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
