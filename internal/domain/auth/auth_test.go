package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateToken(secret, Claims{UserID: "u1", Role: RoleTeamAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != RoleTeamAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", Claims{UserID: "u1"}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := CheckPassword(hash, "hunter2hunter2"); err != nil {
		t.Fatalf("check password: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestContextForRole(t *testing.T) {
	if rc := ContextForRole(RoleSuperAdmin); !rc.IsSuperAdmin || !rc.CanAdjust("manager") || !rc.CanAdjust("hq") {
		t.Fatalf("super admin should imply both layers, got %+v", rc)
	}
	if rc := ContextForRole(RoleTeamAdmin); !rc.CanAdjust("manager") || rc.CanAdjust("hq") {
		t.Fatalf("team admin should only cover the manager layer, got %+v", rc)
	}
	if rc := ContextForRole(RoleHQAdmin); rc.CanAdjust("manager") || !rc.CanAdjust("hq") {
		t.Fatalf("hq admin should only cover the hq layer, got %+v", rc)
	}
	if rc := ContextForRole(RoleMember); rc.CanAdjust("manager") || rc.CanAdjust("hq") {
		t.Fatalf("member should cover neither layer, got %+v", rc)
	}
}
