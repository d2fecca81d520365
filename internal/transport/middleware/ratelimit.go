package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/taskboard-backend/internal/config"
)

// CounterStore tracks request counts per client key for the fixed-window
// limiter. Observe records a request at time now and returns the state of
// the key's window including the new request.
type CounterStore interface {
	Observe(key string, now time.Time) WindowState
}

// WindowState describes a client's fixed window after recording a request.
type WindowState struct {
	Count       int       // requests seen in the current window
	WindowStart time.Time // when the current window opened
	LastSeen    time.Time // previous request time (zero on the first request)
}

// RateLimiter applies a fixed-window limit per client IP. The window resets
// when the time since the last request exceeds the configured window, so a
// client that keeps retrying keeps the window open.
type RateLimiter struct {
	store  CounterStore
	window time.Duration
	max    int
}

// NewRateLimiter creates a limiter from config backed by the given store.
func NewRateLimiter(cfg config.RateLimitConfig, store CounterStore) *RateLimiter {
	return &RateLimiter{
		store:  store,
		window: cfg.Window,
		max:    cfg.MaxRequests,
	}
}

// Limit returns middleware enforcing the configured fixed-window limit.
// Over-limit requests get 429 with a Retry-After header measured from the
// client's previous request, not the window start.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := rl.store.Observe(ClientIP(r), time.Now())
			if state.Count > rl.max {
				retryAfter := rl.window
				if !state.LastSeen.IsZero() {
					retryAfter = rl.window - time.Since(state.LastSeen)
				}
				if retryAfter < 0 {
					retryAfter = 0
				}
				seconds := int(math.Ceil(retryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				writeError(w, http.StatusTooManyRequests, "Demasiadas solicitudes. Intenta de nuevo más tarde.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP resolves the client key: X-Real-IP, else the first
// X-Forwarded-For hop, else the RemoteAddr host, else "unknown".
func ClientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// MemoryCounterStore is the in-process CounterStore. Counts are per
// instance; a multi-replica deployment rate-limits per replica.
type MemoryCounterStore struct {
	mu      sync.Mutex
	window  time.Duration
	clients map[string]*clientWindow
}

type clientWindow struct {
	count       int
	windowStart time.Time
	lastSeen    time.Time
}

// NewMemoryCounterStore creates an in-memory store for the given window.
func NewMemoryCounterStore(window time.Duration) *MemoryCounterStore {
	return &MemoryCounterStore{
		window:  window,
		clients: make(map[string]*clientWindow),
	}
}

// Observe implements CounterStore. A window expires only when the client
// has been quiet for longer than the window.
func (s *MemoryCounterStore) Observe(key string, now time.Time) WindowState {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[key]
	if !ok || now.Sub(c.lastSeen) > s.window {
		c = &clientWindow{windowStart: now}
		s.clients[key] = c
	}

	prev := c.lastSeen
	c.count++
	c.lastSeen = now

	return WindowState{
		Count:       c.count,
		WindowStart: c.windowStart,
		LastSeen:    prev,
	}
}
