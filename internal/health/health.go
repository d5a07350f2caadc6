package health

import (
	"context"
	"time"
)

// UpstreamPinger checks reachability of the tracking API.
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}

// StorageChecker checks the session credential store.
type StorageChecker interface {
	IsHealthy() bool
}

type HealthChecker struct {
	upstream UpstreamPinger
	storage  StorageChecker
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Upstream UpstreamHealth `json:"upstream"`
	Storage  string         `json:"storage"`
}

type UpstreamHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(upstream UpstreamPinger, storage StorageChecker) *HealthChecker {
	return &HealthChecker{upstream: upstream, storage: storage}
}

// CheckBasic is degraded rather than failed when only session storage is
// down; the dashboard keeps working against the upstream either way.
func (h *HealthChecker) CheckBasic() HealthStatus {
	upstreamHealth := h.checkUpstream()

	status := "healthy"
	storage := "healthy"
	if !h.storage.IsHealthy() {
		storage = "unhealthy"
		status = "degraded"
	}
	if upstreamHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:   status,
		Upstream: upstreamHealth,
		Storage:  storage,
	}
}

func (h *HealthChecker) checkUpstream() UpstreamHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err := h.upstream.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return UpstreamHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return UpstreamHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}
