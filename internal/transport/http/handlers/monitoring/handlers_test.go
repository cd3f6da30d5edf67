package monitoringhandler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"evalhub/internal/domain/adjustment"
	"evalhub/internal/domain/auth"
	"evalhub/internal/domain/campaign"
	"evalhub/internal/domain/directory"
	"evalhub/internal/domain/evaluation"
	"evalhub/internal/domain/monitoring"
	"evalhub/internal/transport/http/middleware"
)

const testSecret = "test-secret"

type fakeEvalStore struct {
	eval evaluation.Evaluation
}

func (f fakeEvalStore) Get(ctx context.Context, evaluationID string) (evaluation.Evaluation, error) {
	return f.eval, nil
}

func (f fakeEvalStore) ListForSubject(ctx context.Context, subjectID string, limit, offset int) ([]evaluation.Evaluation, error) {
	return nil, nil
}

func (f fakeEvalStore) ListForSubjectYear(ctx context.Context, subjectID string, year int) ([]evaluation.Evaluation, error) {
	return nil, nil
}

type fakeCampaignStore struct {
	assignments []campaign.Assignment
	results     []campaign.Result
}

func (f fakeCampaignStore) ListAssignments(ctx context.Context, evaluationID string) ([]campaign.Assignment, error) {
	return f.assignments, nil
}

func (f fakeCampaignStore) ListResults(ctx context.Context, evaluationID string) ([]campaign.Result, error) {
	return f.results, nil
}

func (f fakeCampaignStore) ListEvaluateeIDs(ctx context.Context, evaluationID string) ([]string, error) {
	return []string{"e1"}, nil
}

func (f fakeCampaignStore) ListPendingEvaluators(ctx context.Context, evaluationID string) ([]string, error) {
	return nil, nil
}

func (f fakeCampaignStore) ListLaggingEvaluators(ctx context.Context, withinDays int) ([]string, error) {
	return nil, nil
}

type fakeAdjustmentStore struct {
	saves int
	saved []adjustment.Adjustment
}

func (f *fakeAdjustmentStore) Save(ctx context.Context, a adjustment.Adjustment) error {
	f.saves++
	f.saved = append(f.saved, a)
	return nil
}

func (f *fakeAdjustmentStore) ListByEvaluation(ctx context.Context, evaluationID string) ([]adjustment.Adjustment, error) {
	return f.saved, nil
}

type fakeDirectory struct{}

func (fakeDirectory) Get(ctx context.Context, memberID string) (directory.Member, error) {
	return directory.Member{ID: memberID, Name: "가영", Team: "플랫폼"}, nil
}

type memoryIdempotency struct {
	hashes    map[string]string
	responses map[string]json.RawMessage
}

func newMemoryIdempotency() *memoryIdempotency {
	return &memoryIdempotency{
		hashes:    make(map[string]string),
		responses: make(map[string]json.RawMessage),
	}
}

func (m *memoryIdempotency) entryKey(userID, endpoint, key string) string {
	return userID + "|" + endpoint + "|" + key
}

func (m *memoryIdempotency) Check(ctx context.Context, userID, endpoint, key, requestHash string) (json.RawMessage, bool, error) {
	entry := m.entryKey(userID, endpoint, key)
	storedHash, ok := m.hashes[entry]
	if !ok {
		return nil, false, nil
	}
	if storedHash != requestHash {
		return nil, false, middleware.ErrIdempotencyConflict
	}
	return m.responses[entry], true, nil
}

func (m *memoryIdempotency) Save(ctx context.Context, userID, endpoint, key, requestHash string, response json.RawMessage) error {
	entry := m.entryKey(userID, endpoint, key)
	m.hashes[entry] = requestHash
	m.responses[entry] = response
	return nil
}

func newTestRouter(adjStore *fakeAdjustmentStore) http.Handler {
	submittedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	evaluations := evaluation.NewService(fakeEvalStore{eval: evaluation.Evaluation{
		ID:               "ev1",
		Name:             "2026 상반기 평가",
		Status:           evaluation.StatusInProgress,
		StartDate:        "2026-01-01",
		EndDate:          "2026-06-30",
		HQAdjustmentRule: adjustment.RuleAnytime,
	}})
	campaigns := campaign.NewService(fakeCampaignStore{
		assignments: []campaign.Assignment{{
			ID:           "a1",
			EvaluationID: "ev1",
			EvaluatorID:  "lead1",
			EvaluateeID:  "e1",
			Relation:     campaign.RelationLeader,
			Status:       campaign.AssignmentStatusSubmitted,
			Progress:     100,
			SubmittedAt:  &submittedAt,
		}},
		results: []campaign.Result{{
			ID:           "r1",
			AssignmentID: "a1",
			EvaluationID: "ev1",
			EvaluatorID:  "lead1",
			EvaluateeID:  "e1",
			TotalScore:   80,
			SubmittedAt:  submittedAt,
		}},
	}, nil)
	adjustments := adjustment.NewService(adjStore, nil)
	monitoringSvc := monitoring.NewService(evaluations, campaigns, adjustments, directory.NewService(fakeDirectory{}))
	handler := NewHandler(monitoringSvc, adjustments, nil, nil, nil, newMemoryIdempotency(), nil)

	router := chi.NewRouter()
	router.Use(middleware.Auth(testSecret))
	handler.RegisterRoutes(router)
	return router
}

func adjustmentRequest(t *testing.T, body, idempotencyKey string) *http.Request {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, auth.Claims{UserID: "u1", Role: auth.RoleTeamAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/evaluations/ev1/evaluatees/e1/adjustments/manager", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
	return req
}

func TestAdjustmentRetryReplaysStoredResponse(t *testing.T) {
	adjStore := &fakeAdjustmentStore{}
	router := newTestRouter(adjStore)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, adjustmentRequest(t, `{"value":3,"note":"소명 반영"}`, "k1"))
	if first.Code != http.StatusCreated {
		t.Fatalf("first save: expected 201, got %d (%s)", first.Code, first.Body.String())
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, adjustmentRequest(t, `{"value":3,"note":"소명 반영"}`, "k1"))
	if second.Code != http.StatusCreated {
		t.Fatalf("retry: expected 201, got %d (%s)", second.Code, second.Body.String())
	}

	if adjStore.saves != 1 {
		t.Fatalf("expected exactly one persisted save, got %d", adjStore.saves)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("retry response diverged:\nfirst:  %s\nsecond: %s", first.Body.String(), second.Body.String())
	}
}

func TestAdjustmentKeyReuseWithDifferentPayloadConflicts(t *testing.T) {
	adjStore := &fakeAdjustmentStore{}
	router := newTestRouter(adjStore)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, adjustmentRequest(t, `{"value":3}`, "k1"))
	if first.Code != http.StatusCreated {
		t.Fatalf("first save: expected 201, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, adjustmentRequest(t, `{"value":-2}`, "k1"))
	if second.Code != http.StatusConflict {
		t.Fatalf("key reuse: expected 409, got %d (%s)", second.Code, second.Body.String())
	}
	if adjStore.saves != 1 {
		t.Fatalf("conflicting retry must not persist, got %d saves", adjStore.saves)
	}
}

func TestAdjustmentWithoutKeySavesEachTime(t *testing.T) {
	adjStore := &fakeAdjustmentStore{}
	router := newTestRouter(adjStore)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, adjustmentRequest(t, `{"value":1}`, ""))
		if rec.Code != http.StatusCreated {
			t.Fatalf("save %d: expected 201, got %d", i, rec.Code)
		}
	}
	if adjStore.saves != 2 {
		t.Fatalf("unkeyed saves are upserts, expected 2 store calls, got %d", adjStore.saves)
	}
}
