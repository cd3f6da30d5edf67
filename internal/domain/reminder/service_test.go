package reminder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotifyNoWebhookConfigured(t *testing.T) {
	svc := New("")
	if got := svc.Notify(context.Background(), []string{"m1"}); got != SendNoWebhook {
		t.Fatalf("expected %s, got %s", SendNoWebhook, got)
	}
}

func TestNotifyPostsParticipants(t *testing.T) {
	var received struct {
		ParticipantIDs []string `json:"participantIds"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := New(server.URL)
	if got := svc.Notify(context.Background(), []string{"m1", "m2"}); got != SendSuccess {
		t.Fatalf("expected %s, got %s", SendSuccess, got)
	}
	if len(received.ParticipantIDs) != 2 || received.ParticipantIDs[0] != "m1" {
		t.Fatalf("unexpected participants: %v", received.ParticipantIDs)
	}
}

func TestNotifyReportsWebhookRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := New(server.URL)
	if got := svc.Notify(context.Background(), []string{"m1"}); got != SendError {
		t.Fatalf("expected %s, got %s", SendError, got)
	}
}

func TestNotifyReportsUnreachableWebhook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := New(server.URL)
	if got := svc.Notify(context.Background(), []string{"m1"}); got != SendError {
		t.Fatalf("expected %s, got %s", SendError, got)
	}
}
