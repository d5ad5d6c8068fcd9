package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (database.DB, cache.RedisClient, events.EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the set of dependencies to ping in the health endpoint.
// Redis and EventBus are optional; a nil checker is reported as "disabled"
// and does not degrade the overall status.
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
}

const (
	healthOK          = "ok"
	healthUnreachable = "unreachable"
	healthDisabled    = "disabled"
)

// HealthHandler returns an http.HandlerFunc that pings all registered
// HealthCheckers and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: healthOK}
		degraded := false
		check := func(c HealthChecker) string {
			if c == nil {
				return healthDisabled
			}
			if err := c.Ping(ctx); err != nil {
				degraded = true
				return healthUnreachable
			}
			return healthOK
		}

		resp.Database = check(checks.Database)
		resp.Redis = check(checks.Redis)
		resp.EventBus = check(checks.EventBus)
		// The catalog cannot serve anything without its store.
		if checks.Database == nil {
			degraded = true
		}

		status := http.StatusOK
		if degraded {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
