package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"promptforge/internal/adapter/repo"
	"promptforge/internal/domain"
	"promptforge/internal/http/handlers"
	"promptforge/internal/http/httpapi"
	"promptforge/internal/infra"
	"promptforge/internal/promptgen"
	"promptforge/internal/providers/ollama"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// History store: Postgres when configured, in-memory otherwise.
	var history domain.PromptRepository
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		pg := repo.NewPromptRepository(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure history schema")
		}
		history = pg
		logger.Info().Msg("prompt history stored in PostgreSQL")
	} else {
		history = repo.NewMemoryPromptRepository()
		logger.Info().Msg("prompt history stored in memory")
	}

	assembler := promptgen.NewAssembler(promptgen.Options{})
	enhancer := ollama.NewClient(ollama.Options{
		BaseURL:         cfg.OllamaBaseURL,
		GenerateTimeout: cfg.OllamaGenerateTimeout,
		ListTimeout:     cfg.OllamaListTimeout,
		ModelCacheTTL:   cfg.OllamaModelCacheTTL,
		OnFallback: func(reason string, err error) {
			logger.Warn().Err(err).Str("reason", reason).Msg("ollama call degraded")
		},
	})

	app := handlers.NewApp(logger, assembler, enhancer, history, cfg.HistoryListLimit)
	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		RateLimitPerMin: cfg.RateLimitPerMin,
		CORSOrigins:     cfg.CORSOrigins,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
