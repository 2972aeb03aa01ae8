package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/Mat0512/roadbuddy-client/internal/pkg/http"
)

// checkerFunc adapts a function to the HealthChecker interface
type checkerFunc func(ctx context.Context) error

func (f checkerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

func TestNewPingHandler(t *testing.T) {
	t.Run("Reports service identity", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewPingHandler("roadbuddy-client", "1.2.3")
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response PingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "roadbuddy-client", response.Service)
		assert.Equal(t, "1.2.3", response.Version)
		assert.Equal(t, runtime.Version(), response.GoVersion)
		assert.NotEmpty(t, response.Hostname)
		assert.False(t, response.ServerTime.IsZero())
	})

	t.Run("Defaults the version", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewPingHandler("roadbuddy-client", "")
		require.NoError(t, handler(c))

		var response PingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "development", response.Version)
	})
}

func TestReadinessCheck(t *testing.T) {
	t.Run("All dependencies healthy", func(t *testing.T) {
		readiness := NewReadinessChecker()
		readiness.Add("nats", checkerFunc(func(context.Context) error { return nil }))
		readiness.Add("backend", checkerFunc(func(context.Context) error { return nil }))

		report := readiness.Check(context.Background())
		assert.Equal(t, "ready", report.Status)
		assert.Equal(t, "healthy", report.Dependencies["nats"].Status)
		assert.Equal(t, "healthy", report.Dependencies["backend"].Status)
	})

	t.Run("One dependency down", func(t *testing.T) {
		readiness := NewReadinessChecker()
		readiness.Add("nats", checkerFunc(func(context.Context) error { return nil }))
		readiness.Add("backend", checkerFunc(func(context.Context) error {
			return errors.New("backend unreachable")
		}))

		report := readiness.Check(context.Background())
		assert.Equal(t, "unhealthy", report.Status)
		assert.Equal(t, "healthy", report.Dependencies["nats"].Status)
		assert.Equal(t, "unhealthy", report.Dependencies["backend"].Status)
		assert.Contains(t, report.Dependencies["backend"].Error, "unreachable")
	})
}

func TestReadyEndpoint(t *testing.T) {
	t.Run("Ready when dependencies answer", func(t *testing.T) {
		e := echo.New()
		readiness := NewReadinessChecker()
		readiness.Add("nats", checkerFunc(func(context.Context) error { return nil }))
		RegisterHealthEndpoints(e, "roadbuddy-client", "1.0.0", readiness)

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var report ReadinessReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, "ready", report.Status)
		assert.Equal(t, "roadbuddy-client", report.Service)
	})

	t.Run("Unavailable when a dependency is down", func(t *testing.T) {
		e := echo.New()
		readiness := NewReadinessChecker()
		readiness.Add("nats", checkerFunc(func(context.Context) error {
			return errors.New("NATS not connected")
		}))
		RegisterHealthEndpoints(e, "roadbuddy-client", "1.0.0", readiness)

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var report ReadinessReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, "unhealthy", report.Status)
	})

	t.Run("Liveness stays up regardless", func(t *testing.T) {
		e := echo.New()
		RegisterHealthEndpoints(e, "roadbuddy-client", "1.0.0", nil)

		for _, path := range []string{"/health", "/healthz", "/ready"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}
	})
}

func TestBackendHealthChecker(t *testing.T) {
	t.Run("Backend answers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		checker := NewBackendHealthChecker(httpclient.NewClient(srv.URL, "", 2*time.Second))
		assert.NoError(t, checker.CheckHealth(context.Background()))
	})

	t.Run("Backend erroring", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		checker := NewBackendHealthChecker(httpclient.NewClient(srv.URL, "", 2*time.Second))
		assert.Error(t, checker.CheckHealth(context.Background()))
	})

	t.Run("Nil client skipped", func(t *testing.T) {
		checker := NewBackendHealthChecker(nil)
		assert.NoError(t, checker.CheckHealth(context.Background()))
	})
}

func TestNATSHealthCheckerNilClient(t *testing.T) {
	checker := NewNATSHealthChecker(nil)
	assert.NoError(t, checker.CheckHealth(context.Background()))
}
