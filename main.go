package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yahiasanji/spaceodysseybooking/config"
	"github.com/yahiasanji/spaceodysseybooking/database"
	"github.com/yahiasanji/spaceodysseybooking/handlers"
	"github.com/yahiasanji/spaceodysseybooking/metrics"
	"github.com/yahiasanji/spaceodysseybooking/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Starting Space Odyssey Booking Service")

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations check
	if err := database.RunMigrations(database.GetDB()); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Connect to Redis (draft slot and auth sessions)
	redisClient := database.NewRedisClient(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.PingRedis(ctx, redisClient); err != nil {
		cancel()
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	cancel()
	defer redisClient.Close()

	services.InitStores(
		services.NewPostgresBookingStore(),
		services.NewRedisDraftStore(redisClient),
		services.NewRedisSessionStore(redisClient),
	)

	// Load the catalog. A failed load is not fatal: the service runs
	// degraded and catalog-dependent endpoints answer 503 until restart.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	catalog, err := services.LoadCatalog(loadCtx, cfg.DestinationsURL, cfg.AccommodationsURL)
	loadCancel()
	if err != nil {
		metrics.CatalogLoadFailures.Inc()
		log.Printf("WARNING: catalog load failed, running degraded: %v", err)
	} else {
		services.InitCatalog(catalog)
		log.Printf("Catalog loaded: %d destinations, %d accommodations",
			len(catalog.Destinations()), len(catalog.Accommodations()))
	}

	handlers.Init(cfg)

	// Setup Gin router
	router := setupRouter()

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func setupRouter() *gin.Engine {
	// Set Gin to release mode in production
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.RegisterRoutes(router)

	return router
}
