package token

import (
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := New("test-secret")

	signed, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected a token")
	}

	email, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if email != "a@x.com" {
		t.Fatalf("expected a@x.com, got %q", email)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewWithTTL("test-secret", -time.Minute)

	signed, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(signed); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestVerifyTampered(t *testing.T) {
	svc := New("test-secret")

	signed, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(signed + "x"); err == nil {
		t.Fatalf("expected tampered token to fail")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := New("secret-one").Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := New("secret-two").Verify(signed); err == nil {
		t.Fatalf("expected foreign-secret token to fail")
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := New("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(tok); err == nil {
			t.Fatalf("expected %q to fail", tok)
		}
	}
}
