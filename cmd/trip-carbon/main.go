package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ecotrip/go-trip-carbon/internal/api"
	"github.com/ecotrip/go-trip-carbon/internal/carbon"
	"github.com/ecotrip/go-trip-carbon/internal/config"
	"github.com/ecotrip/go-trip-carbon/internal/emission"
	"github.com/ecotrip/go-trip-carbon/internal/logging"
	"github.com/ecotrip/go-trip-carbon/internal/registry"
	"github.com/ecotrip/go-trip-carbon/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// The registry is read once here and never written again; everything
	// downstream is a pure function over it.
	cities, err := db.ListCities(context.Background())
	if err != nil {
		logging.Fatalf("Failed to load city table: %v", err)
	}
	reg, err := registry.New(cities)
	if err != nil {
		logging.Fatalf("Failed to build city registry: %v", err)
	}
	slog.Info("city registry loaded", "cities", len(cities))

	emissionEngine, err := emission.NewEngine(cfg.Emission.Factors)
	if err != nil {
		logging.Fatalf("Failed to build emission engine: %v", err)
	}
	carbonEngine, err := carbon.NewEngine(carbon.Policy{
		KgPerCredit: cfg.Credit.KgPerCredit,
		PriceMin:    cfg.Credit.PriceMin,
		PriceMax:    cfg.Credit.PriceMax,
	})
	if err != nil {
		logging.Fatalf("Failed to build carbon engine: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))
	router.Use(api.MetricsMiddleware())
	router.Use(api.RateLimitMiddleware(cfg.Server.RateLimit))

	handler := api.NewHandler(reg, emissionEngine, carbonEngine)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
