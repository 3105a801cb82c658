package http

import "net/http"

// withStatusMetrics counts completed responses by HTTP status code. The
// middleware is a no-op when no metrics collector is configured.
func (h *Handler) withStatusMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.RecordHTTPStatus(status)
	})
}
