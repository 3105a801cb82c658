package http

import (
	"net/http"

	"github.com/akulov/ai-research-assistant/internal/utils"
)

type welcomeResponse struct {
	Message       string   `json:"message"`
	AvailableAPIs []string `json:"available_apis"`
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, welcomeResponse{
		Message: "Welcome to Personalized Research Assistant API",
		AvailableAPIs: []string{
			"POST /register/ - Register new user with preferences (NO AUTH REQUIRED)",
			"POST /login/ - Login user (returns JWT token) (NO AUTH REQUIRED)",
			"PUT /preferences/ - Update current user preferences (AUTH REQUIRED)",
			"GET /conversations/ - Get all conversations for current user (AUTH REQUIRED)",
			"DELETE /conversations/ - Delete all conversations for current user (AUTH REQUIRED)",
			"GET /conversations/{id} - Get single conversation (AUTH REQUIRED)",
			"PUT /conversations/{id} - Update conversation text (AUTH REQUIRED)",
			"DELETE /conversations/{id} - Delete single conversation (AUTH REQUIRED)",
			"GET /research/query?query=your_question - Process research query with AI (AUTH REQUIRED, URL parameter)",
			"GET /research/history - Get research history for current user (AUTH REQUIRED)",
		},
	}, http.StatusOK)
}
