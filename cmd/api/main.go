package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"rentnest/internal/adapter/api"
	"rentnest/internal/adapter/api/handler"
	apimiddleware "rentnest/internal/adapter/api/middleware"
	"rentnest/internal/adapter/api/router"
	"rentnest/internal/adapter/repository"
	"rentnest/internal/infrastructure/auth"
	"rentnest/internal/infrastructure/mailer"
	"rentnest/internal/infrastructure/storage"
	"rentnest/internal/usecase"
	"rentnest/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	credentialsPath := ""

	// Service account JSON can be injected directly (for production) or
	// loaded from a file path (for local development).
	if serviceAccountJSON := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if path := os.Getenv("GOOGLE_SERVICE_ACCOUNT_PATH"); path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", path)
		}
		opts = append(opts, option.WithCredentialsFile(path))
		credentialsPath = path
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	propertyRepo := repository.NewFirestorePropertyRepository(firestoreClient)
	rentalRepo := repository.NewFirestoreRentalRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	otpMailer := mailer.NewSendgridMailer(cfg.SendgridAPIKey, cfg.SendgridSender)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager, otpMailer)
	userUseCase := usecase.NewUserUseCase(userRepo)
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, userRepo)
	rentalUseCase := usecase.NewRentalUseCase(rentalRepo, propertyRepo, userRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, rentalRepo, propertyRepo, userRepo)

	handler.Setup(authUseCase, userUseCase, propertyUseCase, rentalUseCase, chatUseCase)
	handler.SetupFileHandler(storageClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	ownerMiddleware := apimiddleware.NewOwnerMiddleware(userRepo)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	router.Setup(e, authMiddleware, ownerMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
