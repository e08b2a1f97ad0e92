package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

const (
	windowDuration  = 1 * time.Minute
	cleanupInterval = 1 * time.Minute
)

// RateLimiter limits requests per client IP over a sliding window.
type RateLimiter struct {
	limit       int
	window      time.Duration
	requests    map[string][]time.Time
	mu          sync.Mutex
	cleanupDone chan struct{}
	closeOnce   sync.Once
	exempt      []string
	now         func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per minute per IP.
// Paths starting with one of exempt bypass the limiter.
//
// Close must be called on shutdown to stop the cleanup goroutine.
func NewRateLimiter(limit int, exempt ...string) (*RateLimiter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", limit)
	}

	rl := &RateLimiter{
		limit:       limit,
		window:      windowDuration,
		requests:    make(map[string][]time.Time),
		cleanupDone: make(chan struct{}),
		exempt:      exempt,
		now:         time.Now,
	}
	go rl.cleanupLoop()

	slog.Info("rate limiter initialized",
		"limit", limit,
		"window", windowDuration.String(),
		"exempt", exempt,
	)
	return rl, nil
}

// Middleware rejects clients over the limit with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.isExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ip := ExtractIP(r)
		if ip == "" {
			slog.Warn("failed to extract IP from request", "path", r.URL.Path)
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		allowed, retryAfter := rl.allow(ip)
		if !allowed {
			slog.Debug("rate limit exceeded", "ip", ip, "path", r.URL.Path, "limit", rl.limit)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) isExempt(path string) bool {
	return lo.SomeBy(rl.exempt, func(prefix string) bool {
		return strings.HasPrefix(path, prefix)
	})
}

// allow records a request from ip. When the limit is reached it returns
// false and the seconds until the oldest request leaves the window.
func (rl *RateLimiter) allow(ip string) (bool, int) {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	recent := filterValidTimestamps(rl.requests[ip], cutoff)
	if len(recent) >= rl.limit {
		rl.requests[ip] = recent
		retryAfter := int((rl.window - now.Sub(recent[0])).Seconds())
		return false, max(retryAfter, 1)
	}

	rl.requests[ip] = append(recent, now)
	return true, 0
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.cleanupDone:
			return
		}
	}
}

// cleanup drops IPs with no requests inside the window.
func (rl *RateLimiter) cleanup() {
	cutoff := rl.now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, timestamps := range rl.requests {
		recent := filterValidTimestamps(timestamps, cutoff)
		if len(recent) == 0 {
			delete(rl.requests, ip)
		} else {
			rl.requests[ip] = recent
		}
	}
}

func filterValidTimestamps(timestamps []time.Time, cutoff time.Time) []time.Time {
	return lo.Filter(timestamps, func(ts time.Time, _ int) bool {
		return ts.After(cutoff)
	})
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() {
		close(rl.cleanupDone)
	})
}
