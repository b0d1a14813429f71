package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 3,
		Window:   time.Minute,
		KeyFunc:  IPKeyFunc,
	})

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/otp/request", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		if code := do("10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i+1, code)
		}
	}

	if code := do("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("over-limit status = %d, want 429", code)
	}

	// A different client is unaffected.
	if code := do("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", code)
	}
}

func TestRateLimiterSkipFunc(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 1,
		Window:   time.Minute,
		KeyFunc:  IPKeyFunc,
		SkipFunc: func(r *http.Request) bool { return r.Header.Get("X-Internal") == "1" },
	})

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/otp/request", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Internal", "1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("skipped request %d: status = %d", i+1, rec.Code)
		}
	}
}
