// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"creel/internal/auth"
	"creel/internal/cache"
	"creel/internal/config"
	"creel/internal/database"
	"creel/internal/featureflags"
	"creel/internal/middleware"
	"creel/internal/models"
	"creel/internal/repository"
	"creel/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
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
	tokens         *auth.TokenService
	userRepo       repository.UserRepository
	catchRepo      repository.FishCatchRepository
	spotRepo       repository.FishingSpotRepository
	commentRepo    repository.CommentRepository
	featureFlags   *featureflags.Manager
	catchService   *service.CatchService
	spotService    *service.SpotService
	commentService *service.CommentService
	userService    *service.UserService
	mediaService   *service.MediaService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Redis may come back nil if unreachable; the app degrades to uncached reads.
	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	catchRepo := repository.NewFishCatchRepository(db)
	spotRepo := repository.NewFishingSpotRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	prom := middleware.InitMetrics("creel-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		tokens:         auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryMinutes)*time.Minute),
		userRepo:       userRepo,
		catchRepo:      catchRepo,
		spotRepo:       spotRepo,
		commentRepo:    commentRepo,
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
	}
	server.catchService = service.NewCatchService(catchRepo, userRepo)
	server.spotService = service.NewSpotService(spotRepo, cfg.NearbyCandidateLimit, cfg.NearbyRadiusKm)
	server.commentService = service.NewCommentService(commentRepo, catchRepo)
	server.userService = service.NewUserService(userRepo)
	server.mediaService = service.NewMediaService(cfg.UploadDir, cfg.MaxUploadSizeMB)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Creel Backend Metrics Dashboard",
	}))

	// Stored catch photos
	app.Static("/uploads", s.config.UploadDir)

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	authGroup.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Public catch routes (browse)
	publicCatches := api.Group("/fish-catches")
	publicCatches.Get("/", s.GetCatches)
	publicCatches.Get("/:id/comments", s.GetComments)
	publicCatches.Get("/:id", s.GetCatch)

	// Public spot routes. /nearby must be registered before the generic /:id route.
	publicSpots := api.Group("/fishing-spots")
	publicSpots.Get("/nearby", middleware.RateLimit(
		s.redis, 30, time.Minute, "nearby"), s.GetNearbySpots)
	publicSpots.Get("/:id", s.GetSpot)

	// Public user routes
	publicUsers := api.Group("/users")
	publicUsers.Get("/:id/catches", s.GetUserCatches)
	publicUsers.Get("/:id/spots", s.GetUserSpots)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	// User routes
	users := protected.Group("/users")
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Post("/me/password", s.ChangePassword)
	users.Get("/me/liked-catches", s.GetLikedCatches)

	// Generic public /:id route must come after the /me routes.
	publicUsers.Get("/:id", s.GetUserProfile)

	// Protected catch routes
	catches := protected.Group("/fish-catches")
	catches.Post("/", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_catch"), s.CreateCatch)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	catches.Post("/:id/like", s.LikeCatch)
	catches.Delete("/:id/like", s.UnlikeCatch)
	catches.Post("/:id/comments", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_comment"), s.CreateComment)
	catches.Delete("/:id/comments/:commentId", s.DeleteComment)
	catches.Delete("/:id", s.DeleteCatch)

	// Protected spot routes
	spots := protected.Group("/fishing-spots")
	spots.Post("/", s.CreateSpot)
	spots.Get("/me", s.GetMySpots)
	spots.Delete("/:id", s.DeleteSpot)

	// Image upload
	protected.Post("/uploads", middleware.RateLimit(
		s.redis, 10, time.Minute, "upload"), s.UploadImage)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
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

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The app runs without Redis but readiness reports it so operators notice.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus != "healthy" {
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

// AuthRequired returns the authentication middleware. The bearer token's
// subject is an email address; the middleware resolves it to the current
// user record so deactivated accounts are rejected even with a valid token.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return s.unauthorized(c, "Authorization required")
		}

		email, err := s.tokens.Validate(tokenString)
		if err != nil {
			return s.unauthorized(c, "Invalid or expired token")
		}

		user, err := s.userRepo.GetByEmail(c.Context(), email)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if user == nil || !user.IsActive {
			return s.unauthorized(c, "Account not found or deactivated")
		}

		// Store user identity in context
		c.Locals("userID", user.ID)
		c.Locals("userEmail", user.Email)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// unauthorized writes a 401 with the WWW-Authenticate challenge header.
func (s *Server) unauthorized(c *fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return models.RespondWithError(c, fiber.StatusUnauthorized,
		models.NewUnauthorizedError(message))
}

// optionalUserID attempts to resolve the caller from the Authorization header
// but does not enforce it. Anonymous callers get the zero user ID.
func (s *Server) optionalUserID(c *fiber.Ctx) (uint, bool) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return 0, false
	}

	email, err := s.tokens.Validate(tokenString)
	if err != nil {
		return 0, false
	}

	user, err := s.userRepo.GetByEmail(c.Context(), email)
	if err != nil || user == nil || !user.IsActive {
		return 0, false
	}
	return user.ID, true
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:   "Creel API",
		BodyLimit: (s.config.MaxUploadSizeMB + 1) * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
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
