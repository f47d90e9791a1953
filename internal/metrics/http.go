package metrics

import (
	"time"
)

// RecordHTTPRequest records HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		status := categorizeStatus(statusCode)
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// RecordEntityCreated counts a successful entity creation
func (m *Metrics) RecordEntityCreated(entity string) {
	m.safeExecute("RecordEntityCreated", func() {
		m.EntityCreatedTotal.WithLabelValues(entity).Inc()
	})
}

// RecordEntityDeleted counts a successful soft delete
func (m *Metrics) RecordEntityDeleted(entity string) {
	m.safeExecute("RecordEntityDeleted", func() {
		m.EntityDeletedTotal.WithLabelValues(entity).Inc()
	})
}

// RecordImport counts one completed import request
func (m *Metrics) RecordImport(entity string) {
	m.safeExecute("RecordImport", func() {
		m.ImportRowsTotal.WithLabelValues(entity, "processed").Inc()
	})
}

// RecordExport counts one export download
func (m *Metrics) RecordExport(entity string) {
	m.safeExecute("RecordExport", func() {
		m.ExportsTotal.WithLabelValues(entity).Inc()
	})
}

// categorizeStatus converts status code to category (2xx, 3xx, 4xx, 5xx)
func categorizeStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// ShouldSkipEndpoint checks if endpoint should be excluded from metrics
func ShouldSkipEndpoint(path string) bool {
	return path == "/metrics" || path == "/health"
}
