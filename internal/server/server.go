// Package server contains the HTTP handlers and route wiring for the application.
package server

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"net/http"
	"time"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/middleware"
	"quill/internal/repository"
	"quill/internal/service"
	"quill/internal/session"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

//go:embed views/*.html
var viewsFS embed.FS

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	sessions       *session.Manager
	accountService *service.AccountService
	postService    *service.PostService
	// metrics is where request metrics are registered. Defaults to the
	// global Prometheus registry; tests substitute a fresh one so repeated
	// app construction does not collide.
	metrics prometheus.Registerer
}

// NewServer creates a server instance, connecting to the database and Redis.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	redisClient := session.NewRedisClient(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, redisClient), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	var store session.Store
	if redisClient != nil {
		store = session.NewRedisStore(redisClient)
	} else {
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, time.Duration(cfg.SessionTTLHours)*time.Hour)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		userRepo:       userRepo,
		postRepo:       postRepo,
		sessions:       sessions,
		accountService: service.NewAccountService(userRepo, sessions),
		postService:    service.NewPostService(postRepo),
	}
}

// App builds the Fiber application with views, middleware, and routes.
func (s *Server) App() *fiber.App {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")

	app := fiber.New(fiber.Config{
		AppName: "Quill",
		Views:   engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Every request path terminates in a redirect or a page.
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
				"path", c.Path(), "error", err.Error())
			return c.Redirect("/", fiber.StatusFound)
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	s.app = app
	return app
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.StructuredLogger())
	// HTML forms tunnel PUT/DELETE through a _method field.
	app.Use(middleware.MethodOverride())
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	registerer := s.metrics
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	prom := fiberprometheus.NewWithRegistry(registerer, "quill", "http", "", nil)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	app.Get("/", s.Home)

	app.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	app.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	app.Post("/logout", s.Logout)

	app.Post("/createpost", s.CreatePost)
	app.Get("/edit-post/:id", s.ShowEditScreen)
	app.Put("/edit-post/:id", s.UpdatePost)
	app.Delete("/delete-post/:id", s.DeletePost)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Sessions fall back to the in-memory store, so Redis being down
	// degrades but does not fail readiness.
	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
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

// Start builds the app and begins listening.
func (s *Server) Start() error {
	app := s.App()
	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server and closes its connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
