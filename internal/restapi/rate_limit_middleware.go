package restapi

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"painel.telasesalas.org/internal/models"
)

// limiterIdleTTL is how long an unused client limiter is kept.
const limiterIdleTTL = 5 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware provides per-client rate limiting. Clients are
// identified by their API key when it is a configured one, and by their
// address otherwise.
type RateLimitMiddleware struct {
	limiters    map[string]*clientLimiter
	mu          sync.Mutex
	rateLimit   rate.Limit
	burstSize   int
	trustedKey  func(string) bool
	cleanupTick *time.Ticker
	done        chan struct{}
	stopOnce    sync.Once
}

// NewRateLimitMiddleware creates a new rate limiting middleware allowing
// ratePerSecond requests per interval and client. trustedKey decides which
// ?key= values get their own bucket; nil keys every client by address. A
// non-positive rate returns nil, which passes requests through.
func NewRateLimitMiddleware(ratePerSecond int, interval time.Duration, trustedKey func(string) bool) *RateLimitMiddleware {
	if ratePerSecond <= 0 {
		return nil
	}

	rl := &RateLimitMiddleware{
		limiters:    make(map[string]*clientLimiter),
		rateLimit:   rate.Every(interval / time.Duration(ratePerSecond)),
		burstSize:   ratePerSecond,
		trustedKey:  trustedKey,
		cleanupTick: time.NewTicker(limiterIdleTTL),
		done:        make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// getLimiter gets or creates the rate limiter of a client
func (rl *RateLimitMiddleware) getLimiter(client string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[client]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.rateLimit, rl.burstSize)}
		rl.limiters[client] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter
}

// Handler limits next. A nil middleware returns next unchanged.
func (rl *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	if rl == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(rl.clientKey(r)).Allow() {
			rl.sendRateLimitExceeded(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller: "key:<api key>" for trusted keys,
// "addr:<host>" for everyone else.
func (rl *RateLimitMiddleware) clientKey(r *http.Request) string {
	if key := r.URL.Query().Get("key"); key != "" && rl.trustedKey != nil && rl.trustedKey(key) {
		return "key:" + key
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}

// sendRateLimitExceeded sends a 429 Too Many Requests response
func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter) {
	retryAfter := max(int(time.Duration(float64(time.Second)/float64(rl.rateLimit)).Seconds()), 1)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)

	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:        http.StatusTooManyRequests,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "Rate limit exceeded. Please try again later.",
		Version:     1,
	})
}

// cleanup periodically removes limiters of clients that went quiet
func (rl *RateLimitMiddleware) cleanup() {
	for {
		select {
		case <-rl.done:
			return
		case now := <-rl.cleanupTick.C:
			rl.mu.Lock()
			for client, entry := range rl.limiters {
				if now.Sub(entry.lastSeen) > limiterIdleTTL {
					delete(rl.limiters, client)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once and
// on a nil middleware.
func (rl *RateLimitMiddleware) Stop() {
	if rl == nil {
		return
	}
	rl.stopOnce.Do(func() {
		rl.cleanupTick.Stop()
		close(rl.done)
	})
}
