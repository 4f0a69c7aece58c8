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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"voicesketch/config"
	"voicesketch/internal/ai"
	"voicesketch/internal/api"
	"voicesketch/internal/logger"
	"voicesketch/internal/mockup"
	"voicesketch/internal/speech"
)

func main() {
	// --- Load .env file ---
	// Must happen before viper reads the environment.
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync() //nolint:errcheck

	// --- Dependency Initialization ---
	localGenerator := mockup.NewLocalGenerator(zlog.Named("local"))
	remoteGenerator := ai.NewGenerator(
		cfg.GeminiBaseURL,
		ai.WithModels(cfg.ModelCandidates),
		ai.WithLogger(zlog.Named("remote")),
	)
	transcriber := speech.NewWhisperTranscriber(cfg.SpeechAPIKey, cfg.SpeechBaseURL, cfg.SpeechModel, zlog.Named("speech"))

	apiHandler := api.NewAPIHandler(
		localGenerator,
		remoteGenerator,
		transcriber,
		cfg.DefaultMode,
		cfg.GeminiAPIKey,
		zlog.Named("api"),
	)

	// --- Start API Server ---
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		zlog.Info("running in gin debug mode")
	}

	router := gin.New()
	router.Use(api.AccessLogger(gin.DefaultWriter))
	router.Use(gin.Recovery())

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Remote generation walks several models; leave room for it.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("starting API server",
			zap.String("addr", cfg.ServerAddress),
			zap.String("defaultMode", cfg.DefaultMode),
			zap.Strings("models", remoteGenerator.Models()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("API server listen error", zap.Error(err))
		}
		zlog.Info("API server has stopped listening")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zlog.Info("received signal, shutting down server", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("API server forced shutdown", zap.Error(err))
	} else {
		zlog.Info("API server gracefully stopped")
	}

	zlog.Info("application exiting")
}
