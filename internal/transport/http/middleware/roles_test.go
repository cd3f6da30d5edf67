package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evalhub/internal/domain/auth"
)

const testSecret = "test-secret"

func authedRequest(t *testing.T, role string) *http.Request {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, auth.Claims{UserID: "u1", Role: role}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func runGate(t *testing.T, gate func(http.Handler) http.Handler, req *http.Request) int {
	t.Helper()
	called := false
	handler := Auth(testSecret)(gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code == http.StatusOK && !called {
		t.Fatal("gate reported success without invoking the handler")
	}
	return rec.Code
}

func TestRequireAdjustmentLayerManager(t *testing.T) {
	gate := RequireAdjustmentLayer("manager")
	if code := runGate(t, gate, authedRequest(t, auth.RoleTeamAdmin)); code != http.StatusOK {
		t.Fatalf("expected team admin through manager gate, got %d", code)
	}
	if code := runGate(t, gate, authedRequest(t, auth.RoleHQAdmin)); code != http.StatusForbidden {
		t.Fatalf("expected hq admin blocked from manager gate, got %d", code)
	}
	if code := runGate(t, gate, authedRequest(t, auth.RoleSuperAdmin)); code != http.StatusOK {
		t.Fatalf("expected super admin through manager gate, got %d", code)
	}
}

func TestRequireAdjustmentLayerHQ(t *testing.T) {
	gate := RequireAdjustmentLayer("hq")
	if code := runGate(t, gate, authedRequest(t, auth.RoleHQAdmin)); code != http.StatusOK {
		t.Fatalf("expected hq admin through hq gate, got %d", code)
	}
	if code := runGate(t, gate, authedRequest(t, auth.RoleTeamAdmin)); code != http.StatusForbidden {
		t.Fatalf("expected team admin blocked from hq gate, got %d", code)
	}
}

func TestGatesRejectAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if code := runGate(t, RequireAdjustmentLayer("manager"), req); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}
	if code := runGate(t, func(next http.Handler) http.Handler { return RequireTeamAdmin(next) }, httptest.NewRequest(http.MethodGet, "/", nil)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}
}
