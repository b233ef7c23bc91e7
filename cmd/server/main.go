package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"forgefit/workout-planner/internal/api"
	"forgefit/workout-planner/internal/clients/openai"
	"forgefit/workout-planner/internal/clients/tavily"
	"forgefit/workout-planner/internal/config"
	"forgefit/workout-planner/internal/engine"
	"forgefit/workout-planner/internal/logger"
	"forgefit/workout-planner/internal/service"
)

// @title Workout Planner API
// @version 1.0
// @description API for generating 30-day workout plans across beginner, intermediate and elite tiers.
// @host localhost:8031
// @BasePath /api/v1
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	// --- Logger ---
	appLog, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	defer appLog.Sync()
	appLog.Info("configuration loaded", "address", cfg.Server.Address, "model", cfg.OpenAI.Model)

	// --- Backend Clients ---
	generatorClient, err := openai.New(appLog, cfg.OpenAI)
	if err != nil {
		appLog.Fatal("could not initialize generation client", "error", err.Error())
	}
	videoClient, err := tavily.New(appLog, cfg.Tavily)
	if err != nil {
		appLog.Fatal("could not initialize video search client", "error", err.Error())
	}

	// --- Plan Engines ---
	engines := []*engine.Engine{
		engine.New(engine.BeginnerTier(), cfg.Plan, generatorClient, videoClient, appLog),
		engine.New(engine.IntermediateTier(), cfg.Plan, generatorClient, videoClient, appLog),
		engine.New(engine.EliteTier(), cfg.Plan, generatorClient, videoClient, appLog),
	}

	// --- Services ---
	planService := service.NewPlanService(appLog, engines...)

	// --- Gin Engine ---
	if cfg.Log.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default() // Includes Logger and Recovery middleware

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	router.Use(cors.New(corsConfig))

	// --- Setup Routes ---
	api.SetupRoutes(router, planService, appLog)

	// --- Start HTTP Server ---
	// Plan generation fans out dozens of LLM calls; the write timeout has to
	// cover a full batched run, not a typical request.
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	appLog.Info("server starting", "address", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("listen and serve error", "error", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		appLog.Fatal("server forced to shutdown", "error", err.Error())
	}

	appLog.Info("server exiting")
}
