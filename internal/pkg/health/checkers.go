package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	httpclient "github.com/Mat0512/roadbuddy-client/internal/pkg/http"
	natspkg "github.com/Mat0512/roadbuddy-client/internal/pkg/nats"
)

// NATSHealthChecker checks the realtime transport connection
type NATSHealthChecker struct {
	client *natspkg.Client
}

// NewNATSHealthChecker creates a new NATS health checker
func NewNATSHealthChecker(client *natspkg.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

// CheckHealth checks if the NATS connection is up
func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil // Skip if no NATS client
	}

	conn := n.client.GetConn()
	if conn == nil || !conn.IsConnected() {
		return errors.New("NATS not connected")
	}
	return nil
}

// BackendHealthChecker checks that the marketplace backend answers
type BackendHealthChecker struct {
	client   *httpclient.Client
	endpoint string
}

// NewBackendHealthChecker creates a new backend health checker
func NewBackendHealthChecker(client *httpclient.Client) *BackendHealthChecker {
	return &BackendHealthChecker{client: client, endpoint: "/health"}
}

// CheckHealth probes the backend health endpoint
func (b *BackendHealthChecker) CheckHealth(ctx context.Context) error {
	if b.client == nil {
		return nil // Skip if no backend client
	}

	resp, err := b.client.Get(ctx, b.endpoint)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return nil
}
