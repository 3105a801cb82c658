package service

import (
	"github.com/akulov/ai-research-assistant/internal/config"
	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/metrics"
	"github.com/akulov/ai-research-assistant/internal/store"
)

type Services struct {
	AuthService         AuthService
	UserService         UserService
	ResearchService     ResearchService
	ConversationService ConversationService
}

func NewServices(storages *store.Storages, responder QueryResponder, collector metrics.MetricsCollector, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, cfg.App, collector, logger),
		UserService:         NewUserService(storages.UserRepository, logger),
		ResearchService:     NewResearchService(storages.UserRepository, storages.ConversationRepository, responder, collector, logger),
		ConversationService: NewConversationService(storages.ConversationRepository, logger),
	}
}
