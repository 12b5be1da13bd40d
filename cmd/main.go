package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/goal-achiever-backend/internal/db"
	"github.com/yungbote/goal-achiever-backend/internal/handlers"
	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/middleware"
	"github.com/yungbote/goal-achiever-backend/internal/observability"
	"github.com/yungbote/goal-achiever-backend/internal/repos"
	"github.com/yungbote/goal-achiever-backend/internal/server"
	"github.com/yungbote/goal-achiever-backend/internal/services"
	"github.com/yungbote/goal-achiever-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	// Tracing (no-op unless OTEL_ENABLED)
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "goal-achiever-backend",
		Environment: utils.GetEnv("APP_ENV", "development", log),
	})
	if otelShutdown != nil {
		defer func() { _ = otelShutdown(context.Background()) }()
	}

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET", "dev-secret-key-for-testing-only-change-in-prod", log)
	accessTokenTTLMinutes := utils.GetEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 10080, log)
	mediaDir := utils.GetEnv("MEDIA_DIR", "./media", log)
	batchSize := utils.GetEnvAsInt("CONTENT_BATCH_SIZE", services.DefaultContentBatchSize, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	goalRepo := repos.NewGoalRepo(thePG, log)
	dayPlanRepo := repos.NewDayPlanRepo(thePG, log)
	noteRepo := repos.NewNoteRepo(thePG, log)
	chatMessageRepo := repos.NewChatMessageRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	aiClient, err := services.NewGeminiClient(ctx, log)
	if err != nil {
		log.Error("Could not init GeminiClient", "error", err)
		os.Exit(1)
	}
	avatarService, err := services.NewAvatarService(log)
	if err != nil {
		log.Warn("Could not init AvatarService, continuing without avatars", "error", err)
		avatarService = nil
	}
	planGenService := services.NewPlanGeneratorService(log, aiClient)
	batchFetcher := services.NewContentBatchFetcher(log, dayPlanRepo, planGenService, batchSize)
	authService := services.NewAuthService(thePG, log, userRepo, avatarService, jwtSecretKey, time.Duration(accessTokenTTLMinutes)*time.Minute)
	userService := services.NewUserService(thePG, log, userRepo)
	goalService := services.NewGoalService(thePG, log, goalRepo, dayPlanRepo, noteRepo, planGenService, batchFetcher)
	dayPlanService := services.NewDayPlanService(thePG, log, dayPlanRepo, noteRepo)
	chatService := services.NewChatService(thePG, log, chatMessageRepo, dayPlanRepo, goalRepo, aiClient)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService, userService)
	goalHandler := handlers.NewGoalHandler(log, goalService)
	planHandler := handlers.NewPlanHandler(log, dayPlanService, chatService)
	chatHandler := handlers.NewChatHandler(log, chatService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		GoalHandler:    goalHandler,
		PlanHandler:    planHandler,
		ChatHandler:    chatHandler,
		MediaDir:       mediaDir,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
