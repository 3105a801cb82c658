// Package metrics provides Prometheus metric collection and exposure for the
// research assistant service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is the interface the handler and service layers record
// metrics through.
type MetricsCollector interface {
	RecordHTTPStatus(statusCode int)
	RecordResearchQuery(duration time.Duration)
	RecordDegradedResponse()
	RecordConversationCreated()
	RecordUserRegistered()
}

// Collector is the Prometheus-backed implementation of [MetricsCollector].
type Collector struct {
	httpStatus           *prometheus.CounterVec
	researchQueries      prometheus.Counter
	researchLatency      prometheus.Histogram
	degradedResponses    prometheus.Counter
	conversationsCreated prometheus.Counter
	usersRegistered      prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "research_assistant_http_status_total",
			Help: "Responses by HTTP status code.",
		}, []string{"status_code"}),
		researchQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "research_assistant_queries_total",
			Help: "Total number of processed research queries.",
		}),
		researchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "research_assistant_query_latency_seconds",
			Help:    "Latency of the full search-and-summarize round trip.",
			Buckets: prometheus.DefBuckets,
		}),
		degradedResponses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "research_assistant_degraded_responses_total",
			Help: "Responses produced without a working search or model capability.",
		}),
		conversationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "research_assistant_conversations_created_total",
			Help: "Total number of conversation records appended.",
		}),
		usersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "research_assistant_users_registered_total",
			Help: "Total number of registered users.",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.researchQueries,
		c.researchLatency,
		c.degradedResponses,
		c.conversationsCreated,
		c.usersRegistered,
	)

	return c
}

// RecordHTTPStatus counts a response by its status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordResearchQuery counts one processed query and observes its latency.
func (c *Collector) RecordResearchQuery(duration time.Duration) {
	c.researchQueries.Inc()
	c.researchLatency.Observe(duration.Seconds())
}

// RecordDegradedResponse counts a response produced in degraded mode.
func (c *Collector) RecordDegradedResponse() {
	c.degradedResponses.Inc()
}

// RecordConversationCreated counts one appended conversation record.
func (c *Collector) RecordConversationCreated() {
	c.conversationsCreated.Inc()
}

// RecordUserRegistered counts one successful registration.
func (c *Collector) RecordUserRegistered() {
	c.usersRegistered.Inc()
}

// SetupMetricsRoute returns the handler that serves the metrics registered
// on reg in the Prometheus text exposition format.
func SetupMetricsRoute(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
