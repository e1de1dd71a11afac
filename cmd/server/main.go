package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inmo-assistant/internal/config"
	"inmo-assistant/internal/handler"
	"inmo-assistant/internal/logger"
	"inmo-assistant/internal/repository"
	"inmo-assistant/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("inmo assistant starting",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)
	for _, warning := range cfg.Warnings {
		log.Warn(warning)
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	gin.SetMode(cfg.Server.GinMode)

	// Catalog
	source, err := repository.NewSource(cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog source: %w", err)
	}
	if closer, ok := source.(io.Closer); ok {
		defer closer.Close()
	}

	catalog := repository.NewCatalog(log)
	if _, err := catalog.Load(context.Background(), source); err != nil {
		return err
	}

	// Generation backend
	llmClient := service.NewOpenAIClient(&cfg.LLM, log)
	if cfg.LLM.Enabled {
		log.Info("generation backend configured",
			zap.String("api_base", cfg.LLM.APIBase),
			zap.String("model", cfg.LLM.ChatModel),
			zap.String("prompt_version", service.PromptVersion),
		)
	} else {
		log.Warn("generation backend disabled: set LLM_API_KEY to enable /plan and /ask")
	}

	// Services
	validator, err := service.NewPlanValidator()
	if err != nil {
		return err
	}
	matcher := service.NewMatcher(catalog)
	resolver := service.NewResolver(llmClient, validator, log)
	assistant := service.NewAssistant(resolver, matcher, catalog, cfg.Search.MaxLimit, log)

	// Handlers
	h := handlers{
		assistant: handler.NewAssistantHandler(resolver, assistant, time.Duration(cfg.LLM.Timeout)*time.Second, log),
		search:    handler.NewSearchHandler(matcher, catalog, validator, cfg.Search.DefaultLimit, cfg.Search.MaxLimit),
		catalog:   handler.NewCatalogHandler(catalog, source, log),
	}
	router := newRouter(h, cfg.Server.AllowedOrigins, catalog.Len, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
