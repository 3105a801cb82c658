package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/akulov/ai-research-assistant/internal/logger"
	"github.com/akulov/ai-research-assistant/internal/mock"
	"github.com/akulov/ai-research-assistant/internal/service"
	"github.com/akulov/ai-research-assistant/internal/utils"
)

// ---- Helpers ----

type serviceMocks struct {
	auth          *mock.MockAuthService
	users         *mock.MockUserService
	research      *mock.MockResearchService
	conversations *mock.MockConversationService
}

func newTestHandler(t *testing.T) (*Handler, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := serviceMocks{
		auth:          mock.NewMockAuthService(ctrl),
		users:         mock.NewMockUserService(ctrl),
		research:      mock.NewMockResearchService(ctrl),
		conversations: mock.NewMockConversationService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:         mocks.auth,
		UserService:         mocks.users,
		ResearchService:     mocks.research,
		ConversationService: mocks.conversations,
	}, nil, nil, logger.Nop())

	return h, mocks
}

// injectNopLogger puts a nop logger into the request context, standing in for
// the withTraceID middleware.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// authedRequest builds a request that already passed the auth middleware:
// the user ID is stored in the context under utils.UserIDCtxKey.
func authedRequest(method, target string, body io.Reader, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req = injectNopLogger(req)
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
