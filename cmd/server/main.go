package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/examforge/examgen-backend/internal/config"
	"github.com/examforge/examgen-backend/internal/handler"
	"github.com/examforge/examgen-backend/internal/llm/gemini"
	"github.com/examforge/examgen-backend/internal/logger"
	"github.com/examforge/examgen-backend/internal/router"
	"github.com/examforge/examgen-backend/internal/service"
	"github.com/examforge/examgen-backend/internal/store"
	"github.com/examforge/examgen-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; the missing credential is the only load failure.
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("model", cfg.GeminiModel).
		Msg("Starting ExamGen Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to Gemini ─────────────────────────────────────────────
	provider, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Gemini client")
	}

	// ─── Initialize Services ───────────────────────────────────────────
	examStore := store.NewExamStore(cfg.ExamTTL)
	examService := service.NewExamService(provider, examStore, log)
	guideService := service.NewGuideService(cfg.MaxUploadBytes)
	exportService := service.NewExportService()

	// ─── Initialize Handlers ───────────────────────────────────────────
	handlers := &router.Handlers{
		Exam: handler.NewExamHandler(examService, guideService, exportService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
