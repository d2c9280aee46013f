package routes

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shpjp/quicker-api/monitoring"
)

// logRequests emits one debug line per request; server errors are logged
// at warn so they surface at the default level.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := monitoring.NewStatusRecorder(w)
		next.ServeHTTP(sw, r)

		entry := logrus.WithFields(logrus.Fields{
			"method":      r.Method,
			"route":       monitoring.RouteTemplate(r),
			"status":      sw.Status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if sw.Status >= http.StatusInternalServerError {
			entry.Warn("request served")
		} else {
			entry.Debug("request served")
		}
	})
}
