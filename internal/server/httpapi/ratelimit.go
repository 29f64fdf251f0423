package httpapi

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientLimiter enforces a fixed request-count ceiling per time window for
// each client, keyed by remote IP. Each client gets a token bucket sized
// to the ceiling and refilled over the window.
type clientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	message  string
}

func newClientLimiter(max int, window time.Duration, message string) *clientLimiter {
	return &clientLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(max) / window.Seconds()),
		burst:    max,
		message:  message,
	}
}

func (c *clientLimiter) limiterFor(client string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.limiters[client]
	if !ok {
		l = rate.NewLimiter(c.limit, c.burst)
		c.limiters[client] = l
	}
	return l
}

func (c *clientLimiter) allow(client string) bool {
	return c.limiterFor(client).Allow()
}

// clientKey identifies the client for rate limiting purposes. The port is
// stripped so one host counts as one client across connections.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// limit wraps next with a per-client ceiling; exceeding it yields 429.
func (s *HTTPServer) limit(l *clientLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientKey(r)) {
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: l.message})
			return
		}
		next(w, r)
	}
}

// statusWriter records the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// limitFailures wraps next with a per-client ceiling that only failed
// requests count toward: when the handler responds 200 the consumed token
// is returned to the bucket. Used for the auth tier, so a ceiling of five
// bounds guessing attempts without locking out a correctly logged-in user.
func (s *HTTPServer) limitFailures(l *clientLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := l.limiterFor(clientKey(r)).Reserve()
		if !res.OK() || res.Delay() > 0 {
			if res.OK() {
				res.Cancel()
			}
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: l.message})
			return
		}

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)

		if sw.status == http.StatusOK {
			res.Cancel()
		}
	}
}

// limitMiddleware adapts limit to the mux.Use middleware shape, for the
// ceiling applied to the whole API subrouter.
func (s *HTTPServer) limitMiddleware(l *clientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return s.limit(l, next.ServeHTTP)
	}
}
