package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"viscosity-service/internal/adapters/primary/http/handlers"
	"viscosity-service/internal/adapters/primary/http/middleware"
	"viscosity-service/internal/adapters/secondary/catalog"
	"viscosity-service/internal/adapters/secondary/prometheus"
	"viscosity-service/internal/config"
	ports "viscosity-service/internal/core/ports/output"
	"viscosity-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters
	media, err := catalog.Build(cfg.Calc.MediaCatalogPath)
	if err != nil {
		log.Fatalf("build media catalog: %v", err)
	}
	log.WithField("media", media.Len()).Info("media catalog ready")

	var recorder ports.CalculationRecorder = ports.NopRecorder{}
	var exporter handlers.MetricsExporter
	if cfg.Metrics.Enabled {
		r := prometheus.NewRecorder()
		recorder, exporter = r, r
		log.Info("metrics endpoint enabled")
	} else {
		log.Info("metrics endpoint disabled")
	}

	// Core Services
	viscositySvc, err := services.NewViscosityService(media, cfg.Calc.DefaultFormula, recorder)
	if err != nil {
		log.Fatalf("create viscosity service: %v", err)
	}

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(viscositySvc, exporter)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/viscosity")
	h.RegisterRoutes(api)
	h.RegisterDashboard(router)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if level != log.DebugLevel && level != log.TraceLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}
