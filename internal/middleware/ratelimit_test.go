package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToRate(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first request denied, want allowed")
	}
	if !rl.allow("10.0.0.1") {
		t.Fatal("second request denied, want allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("third request allowed, want denied")
	}
}

func TestRateLimiterTracksClientsIndependently(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first client denied, want allowed")
	}
	if !rl.allow("10.0.0.2") {
		t.Fatal("second client denied, want allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("exhausted client allowed, want denied")
	}
}

func TestRateLimiterRefillsAfterInterval(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first request denied, want allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("request beyond rate allowed, want denied")
	}

	time.Sleep(25 * time.Millisecond)
	if !rl.allow("10.0.0.1") {
		t.Fatal("request after refill denied, want allowed")
	}
}
