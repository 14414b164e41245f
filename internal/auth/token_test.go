package auth

import (
	"errors"
	"testing"
	"time"

	"hrgsms-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

func TestVerifyRoundTrip(t *testing.T) {
	v, err := NewVerifier("secret", "HS256")
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	raw, err := v.Issue("alice", domain.RoleManager, time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	p, err := v.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if p.Subject != "alice" || p.Role != domain.RoleManager {
		t.Fatalf("unexpected principal %+v", p)
	}
}

func TestVerifyRejects(t *testing.T) {
	v, _ := NewVerifier("secret", "HS256")

	if _, err := v.Verify(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("empty token: want ErrMissingToken, got %v", err)
	}

	expired, _ := v.Issue("bob", domain.RoleAdmin, -time.Minute)
	if _, err := v.Verify(expired); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token: want ErrInvalidToken, got %v", err)
	}

	other, _ := NewVerifier("other-secret", "HS256")
	forged, _ := other.Issue("bob", domain.RoleAdmin, time.Minute)
	if _, err := v.Verify(forged); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong secret: want ErrInvalidToken, got %v", err)
	}

	hs512, _ := NewVerifier("secret", "HS512")
	wrongAlg, _ := hs512.Issue("bob", domain.RoleAdmin, time.Minute)
	if _, err := v.Verify(wrongAlg); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong alg: want ErrInvalidToken, got %v", err)
	}

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: "Admin"})
	raw, _ := noExp.SignedString([]byte("secret"))
	if _, err := v.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("missing exp: want ErrInvalidToken, got %v", err)
	}

	if _, err := v.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage: want ErrInvalidToken, got %v", err)
	}
}

func TestNewVerifierAlgorithms(t *testing.T) {
	for _, alg := range []string{"HS256", "hs384", "HS512", ""} {
		if _, err := NewVerifier("s", alg); err != nil {
			t.Fatalf("alg %q: %v", alg, err)
		}
	}
	if _, err := NewVerifier("s", "RS256"); err == nil {
		t.Fatalf("RS256 must be rejected")
	}
	if _, err := NewVerifier(" ", "HS256"); err == nil {
		t.Fatalf("empty secret must be rejected")
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		token string
		ok    bool
	}{
		"Bearer abc":   {"abc", true},
		"bearer  abc ": {"abc", true},
		"Basic abc":    {"", false},
		"Bearer":       {"", false},
		"":             {"", false},
	}
	for header, want := range cases {
		got, ok := BearerToken(header)
		if got != want.token || ok != want.ok {
			t.Fatalf("BearerToken(%q) = %q,%v want %q,%v", header, got, ok, want.token, want.ok)
		}
	}
}
