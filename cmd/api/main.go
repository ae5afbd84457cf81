package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"storepanel/internal/adapter/api"
	"storepanel/internal/adapter/api/handler"
	apimiddleware "storepanel/internal/adapter/api/middleware"
	"storepanel/internal/adapter/api/router"
	"storepanel/internal/infrastructure/firebase"
	"storepanel/internal/infrastructure/shopify"
	"storepanel/internal/usecase"
	"storepanel/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable (for production), file path
	// fallback for local development.
	if cfg.FirebaseServiceAccount != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccount))
	} else {
		serviceAccountPath := cfg.FirebaseServiceAccountKey
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	catalogClient, err := shopify.NewClient(shopify.Config{
		ShopDomain: cfg.ShopDomain,
		Token:      cfg.AdminToken,
		APIVersion: cfg.APIVersion,
	})
	if err != nil {
		log.Fatalf("Failed to initialize catalog client: %v", err)
	}

	productUseCase := usecase.NewProductUseCase(catalogClient)

	handler.Setup(productUseCase)
	handler.SetupHealthHandler()

	e := echo.New()

	// The HTML product table submits edits and deletes through plain forms;
	// the override middleware lifts them onto the method-tagged endpoint.
	e.Pre(middleware.MethodOverrideWithConfig(middleware.MethodOverrideConfig{
		Getter: middleware.MethodFromQuery("_method"),
	}))

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()
	e.Renderer = api.NewTemplateRenderer()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebase.NewAuthClient(authClient))

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
