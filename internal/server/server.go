// Package server contains the HTTP handlers and route wiring for the chatbot API.
package server

import (
	"context"
	"fmt"
	"time"

	"agencybot/internal/auth"
	"agencybot/internal/cache"
	"agencybot/internal/config"
	"agencybot/internal/database"
	"agencybot/internal/middleware"
	"agencybot/internal/rag"
	"agencybot/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config   *config.Config
	db       *gorm.DB
	app      *fiber.App
	users    repository.UserRepository
	chats    repository.ChatRepository
	tokens   *auth.TokenManager
	revoked  *cache.RevocationStore
	answerer rag.Answerer
}

// New creates a server instance with all dependencies initialized from config.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	redisClient := cache.NewClient(cfg.RedisURL)
	answerer := rag.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel)

	return NewWithDeps(cfg, db, redisClient, answerer), nil
}

// NewWithDeps creates a Server using already-initialized dependencies.
// Used by tests and by bootstrap layers that establish DB/Redis themselves.
func NewWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, answerer rag.Answerer) *Server {
	return &Server{
		config:   cfg,
		db:       db,
		users:    repository.NewUserRepository(db),
		chats:    repository.NewChatRepository(db),
		tokens:   auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute),
		revoked:  cache.NewRevocationStore(redisClient),
		answerer: answerer,
	}
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	authRoutes := api.Group("/auth")
	authRoutes.Post("/signup", s.Signup)
	authRoutes.Post("/login", s.Login)

	protected := api.Group("", middleware.AuthRequired(s.tokens, s.revoked))
	protected.Post("/auth/logout", s.Logout)

	chat := protected.Group("/chat")
	chat.Post("/", s.Ask)
	chat.Get("/history", s.History)

	meeting := protected.Group("/meeting")
	meeting.Get("/", s.MeetingStatus)
	meeting.Post("/schedule", s.ScheduleMeeting)
	meeting.Post("/cancel", s.CancelMeeting)
}

// Start builds the Fiber app and listens on the configured port. Blocks until
// shutdown.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Agency Assistant API",
	})

	prom := middleware.InitMetrics("agencybot-api")

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.MetricsMiddleware(prom))
	app.Use(middleware.StructuredLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	prom.RegisterAt(app, "/metrics")
	s.SetupRoutes(app)
	s.app = app

	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app == nil {
		return nil
	}
	return s.app.ShutdownWithContext(ctx)
}
