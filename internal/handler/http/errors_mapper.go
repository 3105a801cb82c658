package http

import (
	"errors"
	"net/http"

	"github.com/akulov/ai-research-assistant/internal/service"
	"github.com/akulov/ai-research-assistant/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrInvalidSummaryLength: http.StatusBadRequest,
	store.ErrEmailAlreadyExists:     http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrConversationNotFound: http.StatusNotFound,

	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	service.ErrQueryProcessingFailed: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
