// Package server contains the HTTP handlers for the read-only content API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	_ "polyglot/docs" // swagger docs
	"polyglot/internal/bootstrap"
	"polyglot/internal/config"
	"polyglot/internal/database"
	"polyglot/internal/featureflags"
	"polyglot/internal/middleware"
	"polyglot/internal/repository"
	"polyglot/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	featureFlags   *featureflags.Manager
	content        *service.ContentService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, rdb, err := bootstrap.InitRuntime(cfg, bootstrap.OptionsFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("runtime init failed: %w", err)
	}

	return NewServerWithDeps(cfg, db, rdb)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and optionally
// performs explicit seeding. redisClient may be nil.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if db == nil {
		return nil, errors.New("server requires a database handle")
	}

	flags := featureflags.NewManager(cfg.FeatureFlags)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("polyglot-api"),
		featureFlags:   flags,
		content: service.NewContentService(
			repository.NewPostRepository(db),
			repository.NewContentRepository(db),
			repository.NewTranslationRepository(db),
			flags,
		),
	}, nil
}

// NewApp builds the fiber application with middleware and routes installed.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Polyglot Blog API",
		ErrorHandler: ErrorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing; an inbound X-Request-ID is kept
	app.Use(requestid.New())

	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID and Trace ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before anything that can short-circuit so error responses
	// still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  "GET, OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, X-Request-ID",
		ExposeHeaders: "X-Request-ID, X-Trace-ID",
		MaxAge:        86400, // 24 hours
	}))

	app.Use(readOnly)
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Polyglot Blog API Metrics",
	}))

	// Swagger documentation
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/docs/index.html", fiber.StatusFound)
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/openapi.json", s.OpenAPISpec)

	v1 := app.Group("/api/v1", middleware.RateLimit(s.redis, s.config.RateLimitPerMinute, time.Minute))

	v1.Get("/languages", s.GetLanguages)
	v1.Get("/feature-flags", s.GetFeatureFlags)

	posts := v1.Group("/posts")
	posts.Get("/", s.ListPosts)
	posts.Get("/:id/localized/:language", s.GetLocalizedPost)

	v1.Get("/post-meta/:id", s.GetPostMeta)
	v1.Get("/content/:referenceId", s.GetContent)

	translations := v1.Group("/translations")
	translations.Get("/group/:groupId", s.GetTranslationGroup)
	translations.Get("/content/:postId/:language", s.GetTranslatedContent)

	// Unknown paths get the envelope rather than fiber's plain-text 404
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. Redis is optional: without
// it the limiter counts in memory and readiness does not depend on it.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start builds the app and blocks serving on the configured port.
func (s *Server) Start() error {
	s.app = s.NewApp()

	log.Printf("Server starting on port %s...", s.config.Port)
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if err := database.Close(s.db); err != nil {
		log.Printf("error closing sql DB: %v", err)
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
