package middleware

import (
	"testing"

	"groupmeet/config"
)

func TestGetLimiterUsesConfiguredRate(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	defer func() { config.AppConfig.MaxRequestsPerMin = orig }()

	config.AppConfig.MaxRequestsPerMin = 2
	limiter := limiterStore.getLimiter("203.0.113.7")

	if limiter.Burst() != 2 {
		t.Fatalf("burst = %d, want configured 2", limiter.Burst())
	}
	if !limiter.Allow() || !limiter.Allow() {
		t.Fatal("first two requests should pass")
	}
	if limiter.Allow() {
		t.Error("third request should be limited")
	}
}

func TestGetLimiterFallsBackWhenUnconfigured(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	defer func() { config.AppConfig.MaxRequestsPerMin = orig }()

	config.AppConfig.MaxRequestsPerMin = 0
	limiter := limiterStore.getLimiter("203.0.113.8")

	if limiter.Burst() != 100 {
		t.Errorf("burst = %d, want fallback 100", limiter.Burst())
	}
}

func TestGetLimiterIsPerIP(t *testing.T) {
	a := limiterStore.getLimiter("198.51.100.1")
	b := limiterStore.getLimiter("198.51.100.2")
	if a == b {
		t.Error("distinct IPs should get distinct limiters")
	}
	if again := limiterStore.getLimiter("198.51.100.1"); again != a {
		t.Error("same IP should reuse its limiter")
	}
}
