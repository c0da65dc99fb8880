package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newshub-backend/auth"
	"newshub-backend/config"
	"newshub-backend/controllers"
	"newshub-backend/routes"
	"newshub-backend/services"
	"newshub-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := config.Get()

	// Create a context that listens for the interrupt signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// connect the article store
	articles, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("store connect:", err)
	}

	newsSource := services.NewNewsAPIClient(cfg.NewsAPIKey, cfg.NewsAPIBaseURL)
	syncer := services.NewSyncer(newsSource, articles, cfg.NewsQuery, logger)
	mailer := services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.ContactRecipient)
	verifier := auth.NewJWTVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer, cfg.AuthJWTAudience)

	// hourly news refresh
	services.NewScheduler(syncer, logger).Start(ctx)

	router := gin.New()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	newsController := controllers.NewNewsController(articles, syncer, logger)
	contactController := controllers.NewContactController(mailer, logger)

	// Health check endpoint
	router.GET("/health", newsController.HealthCheck)

	// API routes
	routes.SetupRoutes(router, newsController, contactController, verifier, logger)

	// Create a server with timeouts
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Initializing the server in a goroutine so that
	// it won't block the graceful shutdown handling
	go func() {
		log.Printf("Server is running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Listen for the interrupt signal
	<-ctx.Done()

	// Restore default behavior on the interrupt signal
	stop()
	log.Println("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	if err := articles.Close(shutdownCtx); err != nil {
		log.Println("store close:", err)
	}

	log.Println("Server exiting")
}
