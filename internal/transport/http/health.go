package http

import (
	"net/http"
	"runtime"
	"time"
)

// HealthStatus represents the health check response
type HealthStatus struct {
	Status    string      `json:"status"`
	Timestamp string      `json:"timestamp"`
	Uptime    string      `json:"uptime"`
	System    *SystemInfo `json:"system,omitempty"`
}

// SystemInfo contains system information
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_mb"`
}

const StatusHealthy = "healthy"

// Health returns basic liveness status (for load balancer). The service has
// no local dependencies to probe; the LLM provider is only reached from the
// request path.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	status := HealthStatus{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.Started).Round(time.Second).String(),
		System: &SystemInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
			MemAlloc:     memStats.Alloc / 1024 / 1024, // Convert to MB
		},
	}

	writeJSON(w, http.StatusOK, status)
}
