package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/akulov/ai-research-assistant/internal/adapter"
	"github.com/akulov/ai-research-assistant/internal/config"
	"github.com/akulov/ai-research-assistant/internal/handler"
	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/metrics"
	"github.com/akulov/ai-research-assistant/internal/research"
	"github.com/akulov/ai-research-assistant/internal/server"
	"github.com/akulov/ai-research-assistant/internal/service"
	"github.com/akulov/ai-research-assistant/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("research-assistant-server")

	// a missing .env file is fine: configuration may come entirely from the
	// environment, flags, or a JSON file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	metricsHandler := metrics.SetupMetricsRoute(registry)

	// nil adapters make the responder degrade gracefully instead of failing
	var searchEngine adapter.SearchEngine
	if cfg.Research.TavilyAPIKey != "" {
		searchEngine = adapter.NewTavilySearchEngine(cfg.Research, log)
	} else {
		log.Warn().Msg("Tavily API key is not configured, search is disabled")
	}

	var chatModel adapter.ChatModel
	if cfg.Research.OpenAIAPIKey != "" {
		chatModel = adapter.NewOpenAIChatModel(cfg.Research, log)
	} else {
		log.Warn().Msg("OpenAI API key is not configured, AI processing is disabled")
	}

	responder := research.NewResponder(searchEngine, chatModel, collector, log)

	services := service.NewServices(storages, responder, collector, cfg, log)

	handlers, err := handler.NewHandlers(services, collector, metricsHandler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
