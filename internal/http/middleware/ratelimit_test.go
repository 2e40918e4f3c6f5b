package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterEnforcesWindowLimit(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("login:1.2.3.4", 3, time.Minute) {
			t.Fatalf("expected request %d to be allowed", i+1)
		}
	}
	if limiter.Allow("login:1.2.3.4", 3, time.Minute) {
		t.Fatal("expected fourth request to be rejected")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiter()

	if !limiter.Allow("login:1.2.3.4", 1, time.Minute) {
		t.Fatal("expected first key to be allowed")
	}
	if !limiter.Allow("login:5.6.7.8", 1, time.Minute) {
		t.Fatal("expected second key to have its own window")
	}
}

func TestClientIPTakesFirstForwardedEntry(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1, 10.0.0.2")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded entry, got %q", got)
	}
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	req.RemoteAddr = "192.0.2.4:51234"
	if got := ClientIP(req); got != "192.0.2.4" {
		t.Fatalf("expected remote addr host, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", " , ")
	if got := ClientIP(req); got != "192.0.2.4" {
		t.Fatalf("expected fallback for blank forwarded list, got %q", got)
	}
}

func TestRateLimiterWindowExpires(t *testing.T) {
	limiter := NewRateLimiter()

	if !limiter.Allow("apply:x", 1, time.Millisecond) {
		t.Fatal("expected first request to be allowed")
	}
	if limiter.Allow("apply:x", 1, time.Millisecond) {
		t.Fatal("expected second request inside the window to be rejected")
	}
	time.Sleep(5 * time.Millisecond)
	if !limiter.Allow("apply:x", 1, time.Millisecond) {
		t.Fatal("expected a fresh window after expiry")
	}
}
