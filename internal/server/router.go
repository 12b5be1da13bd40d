package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/goal-achiever-backend/internal/handlers"
	"github.com/yungbote/goal-achiever-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	GoalHandler    *handlers.GoalHandler
	PlanHandler    *handlers.PlanHandler
	ChatHandler    *handlers.ChatHandler
	MediaDir       string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware("goal-achiever"))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:8081",
			"http://localhost:19000",
			"http://localhost:19006",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/", handlers.HealthCheck)
	router.GET("/health", handlers.HealthCheck)
	router.POST("/auth/register", cfg.AuthHandler.Register)
	router.POST("/auth/login", cfg.AuthHandler.Login)
	if cfg.MediaDir != "" {
		router.Static("/media", cfg.MediaDir)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.GET("/auth/me", cfg.AuthHandler.Me)
	// Goals
	protected.POST("/goals", cfg.GoalHandler.Create)
	protected.GET("/goals", cfg.GoalHandler.List)
	protected.GET("/goals/:id", cfg.GoalHandler.Get)
	protected.DELETE("/goals/:id", cfg.GoalHandler.Delete)
	// Plans
	protected.GET("/plans/date/:date", cfg.PlanHandler.GetByDate)
	protected.GET("/plans/date/:date/dynamic", cfg.PlanHandler.GetDynamicByDate)
	protected.POST("/plans/:id/complete", cfg.PlanHandler.Complete)
	protected.POST("/plans/:id/notes", cfg.PlanHandler.AddNote)
	protected.GET("/plans/:id/notes", cfg.PlanHandler.ListNotes)
	protected.POST("/plans/:id/topic-chat", cfg.PlanHandler.TopicChat)
	// Chat
	protected.POST("/chat", cfg.ChatHandler.Send)
	protected.GET("/chat/history/:session_id", cfg.ChatHandler.History)
	protected.GET("/chat/sessions", cfg.ChatHandler.Sessions)

	return router
}
