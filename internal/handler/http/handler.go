package http

import (
	nethttp "net/http"

	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/metrics"
	"github.com/akulov/ai-research-assistant/internal/service"
)

type Handler struct {
	services *service.Services

	metrics        metrics.MetricsCollector
	metricsHandler nethttp.Handler

	logger *logger.Logger
}

// NewHandler assembles the HTTP handler. collector and metricsHandler may be
// nil; status metrics and the /metrics route are then disabled.
func NewHandler(services *service.Services, collector metrics.MetricsCollector, metricsHandler nethttp.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        collector,
		metricsHandler: metricsHandler,
		logger:         logger,
	}
}
