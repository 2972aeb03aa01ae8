package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
)

// PingResponse describes the running service instance
type PingResponse struct {
	Service    string    `json:"service"`
	Version    string    `json:"version"`
	GoVersion  string    `json:"go_version"`
	Hostname   string    `json:"hostname"`
	ServerTime time.Time `json:"server_time"`
}

// HealthChecker probes one dependency
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// DependencyStatus is the probe outcome for one dependency
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessReport aggregates the probe outcomes for all dependencies
type ReadinessReport struct {
	Status       string                      `json:"status"`
	Service      string                      `json:"service,omitempty"`
	Timestamp    time.Time                   `json:"timestamp"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// ReadinessChecker runs every registered dependency probe. The client is not
// ready to serve views when the realtime transport or the marketplace backend
// is down.
type ReadinessChecker struct {
	checkers map[string]HealthChecker
}

// NewReadinessChecker creates an empty readiness checker
func NewReadinessChecker() *ReadinessChecker {
	return &ReadinessChecker{checkers: make(map[string]HealthChecker)}
}

// Add registers a dependency probe under a name
func (r *ReadinessChecker) Add(name string, checker HealthChecker) {
	r.checkers[name] = checker
}

// Check probes every registered dependency and aggregates the outcomes
func (r *ReadinessChecker) Check(ctx context.Context) ReadinessReport {
	report := ReadinessReport{
		Status:       "ready",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyStatus),
	}

	for name, checker := range r.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			logger.Warn("Dependency health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			report.Dependencies[name] = DependencyStatus{
				Status: "unhealthy",
				Error:  err.Error(),
			}
			report.Status = "unhealthy"
		} else {
			report.Dependencies[name] = DependencyStatus{Status: "healthy"}
		}
	}

	return report
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	if version == "" {
		version = "development"
	}

	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, PingResponse{
			Service:    serviceName,
			Version:    version,
			GoVersion:  runtime.Version(),
			Hostname:   hostname,
			ServerTime: time.Now(),
		})
	}
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, readiness *ReadinessChecker) {
	e.GET("/ping", NewPingHandler(serviceName, version))

	// Liveness: the process is up
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Readiness: the realtime transport and backend must answer
	e.GET("/ready", func(c echo.Context) error {
		if readiness == nil {
			return c.String(http.StatusOK, "OK")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		report := readiness.Check(ctx)
		report.Service = serviceName

		if report.Status != "ready" {
			return c.JSON(http.StatusServiceUnavailable, report)
		}
		return c.JSON(http.StatusOK, report)
	})
}
