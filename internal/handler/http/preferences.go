package http

import (
	"encoding/json"
	"net/http"

	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/utils"
	"github.com/akulov/ai-research-assistant/models"
)

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.PreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdatePreferences(ctx, userID, req)
	if err != nil {
		log.Err(err).Msg("error occurred during preferences update")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Int64("id", userID).Any("preferences", updatedUser.Preferences()).Msg("preferences updated")

	utils.WriteJSON(w, updatedUser.PublicView(), http.StatusOK)
}
