package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/Mat0512/roadbuddy-client/internal/pkg/http"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
)

func newTestGW(t *testing.T, handler http.HandlerFunc) *RequestGW {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := httpclient.NewClient(server.URL, "test-token", 5*time.Second)
	return &RequestGW{client: client}
}

func TestCreateServiceRequest(t *testing.T) {
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/service-requests", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req models.CreateServiceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.RequestStatusPending, req.Status)
		assert.Equal(t, "service-1", req.ServiceID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ServiceRequestEnvelope{
			Message: "Service request created",
			ServiceRequest: &models.ServiceRequest{
				RequestID: "req-1",
				UserID:    "user-1",
				Status:    models.RequestStatusPending,
			},
		})
	})

	created, err := gw.CreateServiceRequest(context.Background(), models.CreateServiceRequest{
		UserID:     "user-1",
		ProviderID: "provider-1",
		ServiceID:  "service-1",
		Status:     models.RequestStatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, "req-1", created.RequestID)
	assert.Equal(t, models.RequestStatusPending, created.Status)
}

func TestCreateServiceRequestEmptyEnvelope(t *testing.T) {
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ServiceRequestEnvelope{Message: "created"})
	})

	_, err := gw.CreateServiceRequest(context.Background(), models.CreateServiceRequest{})
	assert.Error(t, err)
}

func TestGetServiceRequest(t *testing.T) {
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/service-requests/req-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ServiceRequestEnvelope{
			ServiceRequest: &models.ServiceRequest{
				RequestID: "req-1",
				Status:    models.RequestStatusAccepted,
				Provider: &models.Provider{
					ProviderID: "provider-1",
					Name:       "Roadside Vulcanizing",
				},
			},
		})
	})

	request, err := gw.GetServiceRequest(context.Background(), "req-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, request.Status)
	require.NotNil(t, request.Provider)
	assert.Equal(t, "Roadside Vulcanizing", request.Provider.Name)
}

func TestUpdateServiceRequestStatus(t *testing.T) {
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/service-requests/req-1", r.URL.Path)

		var body map[string]models.RequestStatus
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.RequestStatusCancelled, body["status"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ServiceRequestEnvelope{
			ServiceRequest: &models.ServiceRequest{
				RequestID: "req-1",
				Status:    models.RequestStatusCancelled,
			},
		})
	})

	updated, err := gw.UpdateServiceRequestStatus(context.Background(), "req-1", models.RequestStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCancelled, updated.Status)
}

func TestUpdateServiceRequestStatusBackendError(t *testing.T) {
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := gw.UpdateServiceRequestStatus(context.Background(), "req-1", models.RequestStatusCancelled)
	assert.Error(t, err)
}

func TestPostRating(t *testing.T) {
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rating", r.URL.Path)

		var rating models.Rating
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rating))
		assert.Equal(t, "req-1", rating.RequestID)
		assert.Equal(t, 5, rating.Score)

		w.WriteHeader(http.StatusCreated)
	})

	err := gw.PostRating(context.Background(), models.Rating{
		RequestID: "req-1",
		UserID:    "user-1",
		Score:     5,
		Comment:   "Fast service",
	})
	assert.NoError(t, err)
}
