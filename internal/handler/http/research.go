package http

import (
	"net/http"
	"strings"

	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/utils"
)

func (h *Handler) researchQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		log.Error().Msg("empty query parameter")
		http.Error(w, "query parameter is required", http.StatusBadRequest)
		return
	}

	result, err := h.services.ResearchService.ProcessQuery(ctx, userID, query)
	if err != nil {
		log.Err(err).Msg("error occurred during processing research query")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Int64("conversation_id", result.ConversationID).Msg("research query processed")

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) researchHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	history, err := h.services.ResearchService.History(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error occurred during loading research history")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, history, http.StatusOK)
}
