package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"serviya/internal/adapter/api"
	"serviya/internal/adapter/api/handler"
	apimiddleware "serviya/internal/adapter/api/middleware"
	"serviya/internal/adapter/api/router"
	"serviya/internal/adapter/repository"
	"serviya/internal/domain/service"
	"serviya/internal/infrastructure/cache"
	"serviya/internal/infrastructure/firebase"
	"serviya/internal/infrastructure/ratelimit"
	"serviya/internal/infrastructure/scheduler"
	"serviya/internal/infrastructure/storage"
	"serviya/internal/infrastructure/textgen"
	"serviya/internal/infrastructure/websocket"
	"serviya/internal/usecase"
	"serviya/pkg/config"
	"serviya/pkg/logger"
)

const (
	statsCacheTTL  = 15 * time.Minute
	apiRatePerMin  = 120
	limiterCleanup = 30 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetDebug(cfg.IsDevelopment())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	firebaseApp, err := firebase.NewApp(ctx, cfg.FirebaseProject, cfg.ServiceAccountJSON, cfg.ServiceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}
	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket,
		firebase.ClientOptions(cfg.ServiceAccountJSON, cfg.ServiceAccountPath)...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	var statsCache service.StatsCache
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("Redis unavailable, platform stats will not be cached: %v", err)
		} else {
			defer rdb.Close()
			statsCache = cache.NewRedisStatsCache(rdb, statsCacheTTL)
		}
	}

	var generator service.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := textgen.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("Gemini unavailable, assistant disabled: %v", err)
		} else {
			defer gemini.Close()
			generator = gemini
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, assistant disabled")
	}

	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	hireRepo := repository.NewFirestoreHireRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	statsRepo := repository.NewFirestoreStatsRepository(firestoreClient)

	listingUseCase := usecase.NewListingUseCase(listingRepo, userRepo, storageClient)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, listingRepo, userRepo)
	hireUseCase := usecase.NewHireUseCase(hireRepo, listingRepo, userRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, listingRepo)
	adminUseCase := usecase.NewAdminUseCase(userRepo, statsRepo, statsCache, firebaseAuthClient)
	assistantUseCase := usecase.NewAssistantUseCase(generator)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo)

	statsScheduler := scheduler.New(adminUseCase, cfg.StatsRefreshSpec)
	if err := statsScheduler.Start(ctx); err != nil {
		log.Fatalf("Failed to start stats scheduler: %v", err)
	}

	apiLimiter := ratelimit.NewRateLimiter(apiRatePerMin)
	aiLimiter := ratelimit.NewRateLimiter(cfg.AIRatePerMinute)
	go apiLimiter.Run(ctx, limiterCleanup)
	go aiLimiter.Run(ctx, limiterCleanup)

	wsManager := websocket.NewManager()

	handler.Setup(
		listingUseCase,
		reviewUseCase,
		hireUseCase,
		notificationUseCase,
		userUseCase,
		adminUseCase,
		assistantUseCase,
		chatUseCase,
	)
	handler.SetupFileHandler(storageClient, cfg.MaxUploadBytes)
	handler.SetupHealthHandler(wsManager)
	wsHandler := handler.NewWebSocketHandler(wsManager, notificationUseCase)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("8M"))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware, wsHandler, apiLimiter, aiLimiter)

	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	cancel()
	statsScheduler.Stop()
	wsManager.CloseAll()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Stopped.")
}
