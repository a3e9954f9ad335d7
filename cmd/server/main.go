package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/apex-assurance/claims-backend/internal/agent"
	"github.com/apex-assurance/claims-backend/internal/claims"
	"github.com/apex-assurance/claims-backend/internal/config"
	"github.com/apex-assurance/claims-backend/internal/directory"
	httpapi "github.com/apex-assurance/claims-backend/internal/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "claims-backend").Logger()

	ctx := context.Background()

	var dir directory.Directory
	if cfg.DatabaseURL != "" {
		pg, err := directory.NewPostgresDirectory(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect db")
		}
		dir = pg
		logger.Info().Msg("using postgres client directory")
	} else {
		csvDir, err := directory.NewCSVDirectory(cfg.ClientsCSVPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.ClientsCSVPath).Msg("failed to load clients csv")
		}
		dir = csvDir
		logger.Info().Int("clients", csvDir.Len()).Msg("using csv client directory")
	}
	defer dir.Close()

	var completer agent.Completer
	if cfg.LLMBaseURL == "" {
		completer = agent.MockCompleter{ModelVersion: "mock-v1"}
		logger.Info().Msg("using mock completer")
	} else {
		completer = agent.OpenAICompatCompleter{
			BaseURL:   cfg.LLMBaseURL,
			Model:     cfg.LLMModel,
			APIKey:    cfg.LLMAPIKey,
			MaxTokens: cfg.LLMMaxTokens,
		}
	}

	assistant := &agent.Agent{
		Completer:  completer,
		Dispatcher: &claims.Dispatcher{Directory: dir, Logger: logger},
		Logger:     logger,
	}
	sessions := agent.NewSessionManager()

	router := httpapi.Router(cfg, dir, assistant, sessions, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
