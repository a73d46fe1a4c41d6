package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ace-ify/Blud-Dona/domain"
	"github.com/ace-ify/Blud-Dona/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.GatewayConfig{
		BaseURL:        srv.URL,
		RequestTimeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return client, srv
}

func TestNewClientRejectsEmptyBaseURL(t *testing.T) {
	if _, err := NewClient(config.GatewayConfig{}); err == nil {
		t.Fatal("expected an error for empty base url")
	}
}

func TestGetDecodesJSON(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/requests" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]domain.BloodRequest{{ID: "a", Urgency: domain.UrgencyHigh}})
	}))

	var requests []domain.BloodRequest
	if err := client.Get(context.Background(), "/api/v1/requests", &requests); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(requests) != 1 || requests[0].ID != "a" {
		t.Fatalf("decoded %+v", requests)
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	var received domain.BloodRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		json.NewDecoder(r.Body).Decode(&received)
		received.ID = "created"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(received)
	}))

	payload := &domain.BloodRequest{Quantity: 2, Status: domain.RequestPending}
	var created domain.BloodRequest
	if err := client.Post(context.Background(), "/api/v1/requests", payload, &created); err != nil {
		t.Fatalf("post: %v", err)
	}
	if received.Quantity != 2 || created.ID != "created" {
		t.Fatalf("round trip failed: sent %+v, got %+v", received, created)
	}
}

func TestStatusCodesMapToDomainErrors(t *testing.T) {
	tests := []struct {
		status int
		code   domain.ErrorCode
	}{
		{http.StatusNotFound, domain.ErrCodeNotFound},
		{http.StatusUnauthorized, domain.ErrCodeUnauthorized},
		{http.StatusForbidden, domain.ErrCodeForbidden},
		{http.StatusConflict, domain.ErrCodeConflict},
		{http.StatusUnprocessableEntity, domain.ErrCodeInvalid},
		{http.StatusInternalServerError, domain.ErrCodeUnavailable},
		{http.StatusBadGateway, domain.ErrCodeUnavailable},
	}

	for _, tt := range tests {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))
		err := client.Get(context.Background(), "/whatever", nil)
		if !domain.IsDomainError(err, tt.code) {
			t.Errorf("status %d: expected code %s, got %v", tt.status, tt.code, err)
		}
	}
}

func TestUnreachableGatewayIsUnavailable(t *testing.T) {
	client, err := NewClient(config.GatewayConfig{
		BaseURL:        "http://127.0.0.1:1", // nothing listens here
		RequestTimeout: 500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	if err := client.Ping(context.Background()); !domain.IsDomainError(err, domain.ErrCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestPingHitsHealthEndpoint(t *testing.T) {
	var path string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
	}))
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if path != "/health" {
		t.Errorf("ping hit %s, want /health", path)
	}
}
