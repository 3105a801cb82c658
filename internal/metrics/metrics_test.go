package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordResearchQuery(150 * time.Millisecond)
	c.RecordResearchQuery(2 * time.Second)
	c.RecordDegradedResponse()
	c.RecordConversationCreated()
	c.RecordConversationCreated()
	c.RecordUserRegistered()

	if got := testutil.ToFloat64(c.researchQueries); got != 2 {
		t.Errorf("queries total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.degradedResponses); got != 1 {
		t.Errorf("degraded responses total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.conversationsCreated); got != 2 {
		t.Errorf("conversations created total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.usersRegistered); got != 1 {
		t.Errorf("users registered total = %v, want 1", got)
	}
}

func TestCollector_HTTPStatusLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(404)

	if got := testutil.ToFloat64(c.httpStatus.WithLabelValues("200")); got != 2 {
		t.Errorf("status 200 total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.httpStatus.WithLabelValues("404")); got != 1 {
		t.Errorf("status 404 total = %v, want 1", got)
	}
}

func TestSetupMetricsRoute_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordResearchQuery(time.Second)

	handler := SetupMetricsRoute(reg)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "research_assistant_queries_total") {
		t.Error("response should contain research_assistant_queries_total metric")
	}
}
