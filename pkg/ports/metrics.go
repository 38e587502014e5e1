package ports

import "time"

// MetricsCollector receives the service's instrumentation events
type MetricsCollector interface {
	// ObserveRequest records one completed HTTP request
	ObserveRequest(method, endpoint string, status int, duration time.Duration)

	// IncDBErrors counts a storage failure hit while serving an item request
	IncDBErrors()

	// SetUptime sets the process uptime gauge
	SetUptime(uptime time.Duration)
}
