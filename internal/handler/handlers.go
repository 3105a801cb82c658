package handler

import (
	nethttp "net/http"

	"github.com/akulov/ai-research-assistant/internal/config"
	"github.com/akulov/ai-research-assistant/internal/handler/http"
	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/metrics"
	"github.com/akulov/ai-research-assistant/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, collector metrics.MetricsCollector, metricsHandler nethttp.Handler, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, collector, metricsHandler, logger),
	}, nil
}
