package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"laporkota/internal/adapter/api"
	"laporkota/internal/adapter/api/handler"
	"laporkota/internal/adapter/api/middleware"
	"laporkota/internal/adapter/api/router"
	"laporkota/internal/adapter/repository"
	"laporkota/internal/domain/service"
	fbinfra "laporkota/internal/infrastructure/firebase"
	"laporkota/internal/infrastructure/media"
	"laporkota/internal/infrastructure/ratelimit"
	"laporkota/internal/infrastructure/storage"
	infraws "laporkota/internal/infrastructure/websocket"
	"laporkota/internal/usecase"
	"laporkota/pkg/config"
	"laporkota/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if credsJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); credsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credsJSON)))
	} else if credsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}

	fbApp, err := fb.NewApp(ctx, &fb.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}

	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer firestoreClient.Close()

	// Media storage backend. Inline keeps encoded media inside the
	// complaint document, gcs stores objects in a bucket instead.
	var mediaStore service.MediaStore
	switch cfg.MediaStorage {
	case "gcs":
		gcsClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer gcsClient.Close()
		mediaStore = gcsClient
	default:
		mediaStore = media.NewInlineStore()
	}

	// Repositories
	complaintRepo := repository.NewFirestoreComplaintRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)

	firebaseAuth := fbinfra.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	chatModel := service.NewGeminiChatService(cfg.GeminiApiKey, cfg.GeminiModel)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuth)
	userUseCase := usecase.NewUserUseCase(userRepo, firebaseAuth, mediaStore)
	complaintUseCase := usecase.NewComplaintUseCase(complaintRepo, mediaStore, cfg.MaxComplaintImages)
	statsUseCase := usecase.NewStatsUseCase(complaintRepo)
	assistantUseCase := usecase.NewAssistantUseCase(chatModel)

	handler.Setup(authUseCase, userUseCase, complaintUseCase, statsUseCase, assistantUseCase)

	// Live updates: fan complaint snapshots out to connected clients.
	wsManager := infraws.NewManager()
	wsManager.Start(ctx)
	go func() {
		updates, err := complaintRepo.Watch(ctx, "")
		if err != nil {
			logger.Error("Failed to start complaint watch: %v", err)
			return
		}
		for complaints := range updates {
			wsManager.Publish(complaints)
		}
	}()
	wsHandler := handler.NewWebSocketHandler(wsManager, authClient, authUseCase)

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.Validator = api.NewValidator()

	authMiddleware := middleware.NewAuthMiddleware(authClient)
	adminMiddleware := middleware.NewAdminMiddleware(userRepo)
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(rateLimiter)

	router.Setup(e, authMiddleware, adminMiddleware, rateLimitMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	logger.Info("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
