package reminder

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Tri-state send result. A reminder failure never fails the surrounding
// request; callers surface the state and may simply re-invoke.
const (
	SendSuccess   = "success"
	SendError     = "error"
	SendNoWebhook = "no_webhook"
)

type Transport interface {
	Notify(ctx context.Context, participantIDs []string) string
}

// Service posts reminder payloads to a configured webhook.
type Service struct {
	WebhookURL string
	Client     *http.Client
}

func New(webhookURL string) *Service {
	return &Service{
		WebhookURL: webhookURL,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type payload struct {
	ParticipantIDs []string `json:"participantIds"`
	SentAt         string   `json:"sentAt"`
}

func (s *Service) Notify(ctx context.Context, participantIDs []string) string {
	if s.WebhookURL == "" {
		return SendNoWebhook
	}
	body, err := json.Marshal(payload{
		ParticipantIDs: participantIDs,
		SentAt:         time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		slog.Warn("reminder payload marshal failed", "err", err)
		return SendError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.WebhookURL, bytes.NewReader(body))
	if err != nil {
		slog.Warn("reminder request build failed", "err", err)
		return SendError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		slog.Warn("reminder send failed", "err", err)
		return SendError
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		slog.Warn("reminder webhook rejected", "status", resp.StatusCode)
		return SendError
	}
	return SendSuccess
}
