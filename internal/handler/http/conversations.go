package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/utils"
	"github.com/akulov/ai-research-assistant/models"
)

func (h *Handler) listConversations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	conversations, err := h.services.ConversationService.ListForUser(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error occurred during listing conversations")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, conversations, http.StatusOK)
}

func (h *Handler) getConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	conversationID, err := conversationIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid conversation id")
		http.Error(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	conversation, err := h.services.ConversationService.GetForUser(ctx, userID, conversationID)
	if err != nil {
		log.Err(err).Msg("error occurred during getting conversation")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, conversation, http.StatusOK)
}

func (h *Handler) updateConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	conversationID, err := conversationIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid conversation id")
		http.Error(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	var update models.ConversationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// The record to update is named by the URL, not the body.
	update.ID = conversationID

	updated, err := h.services.ConversationService.UpdateForUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Msg("error occurred during updating conversation")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	conversationID, err := conversationIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid conversation id")
		http.Error(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	if err := h.services.ConversationService.DeleteForUser(ctx, userID, conversationID); err != nil {
		log.Err(err).Msg("error occurred during deleting conversation")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Conversation deleted successfully"}, http.StatusOK)
}

func (h *Handler) deleteAllConversations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	// Deleting an already empty history is a success: the outcome is the
	// same either way.
	if err := h.services.ConversationService.DeleteAllForUser(ctx, userID); err != nil {
		log.Err(err).Msg("error occurred during deleting conversations")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "All conversations deleted successfully"}, http.StatusOK)
}

func conversationIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
