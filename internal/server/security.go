package server

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/battlesim/internal/logger"
)

// AuthMiddleware checks the X-API-Key header against apiKey. An empty apiKey
// turns the check off, which is how local development runs.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	resolve := newIPResolver(trustedProxies)
	want := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := resolve.clientIP(r)
			detector.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", provided != "")

			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

type clientWindow struct {
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector keeps per-IP request and failed-auth tallies over
// a fixed RateWindow. All tallies reset together when the window rolls over.
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	clients     map[string]*clientWindow
	windowStart time.Time
	now         func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		clients:     make(map[string]*clientWindow),
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// window returns the tally for ip, rolling the window first. Caller holds mu.
func (s *SuspiciousActivityDetector) window(ip string) *clientWindow {
	if now := s.now(); now.Sub(s.windowStart) > RateWindow {
		clear(s.clients)
		s.windowStart = now
	}
	cw, ok := s.clients[ip]
	if !ok {
		cw = &clientWindow{}
		s.clients[ip] = cw
	}
	return cw
}

// RecordFailedAuth counts a rejected API key and alerts once the IP crosses
// FailedAuthThreshold.
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cw := s.window(ip)
	cw.failedAuth++
	if cw.failedAuth >= FailedAuthThreshold {
		logger.Warn(SecurityAlertFailedAuth, "ip", ip, "count", cw.failedAuth)
	}
}

// RecordRequest charges cost against the IP's budget for the current window
// and returns false once the budget is exceeded
func (s *SuspiciousActivityDetector) RecordRequest(ip string, cost int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cw := s.window(ip)
	before := cw.requests
	cw.requests += cost
	if cw.requests <= RequestBudget {
		return true
	}

	// one alert per highRateLogEvery units spent over budget
	if before/highRateLogEvery != cw.requests/highRateLogEvery {
		logger.Warn(SecurityAlertHighRate, "ip", ip, "spent", cw.requests, "window", RateWindow)
	}
	return false
}

// Tally reports what ip has spent in the current window.
func (s *SuspiciousActivityDetector) Tally(ip string) (requests, failedAuth int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cw, ok := s.clients[ip]; ok {
		return cw.requests, cw.failedAuth
	}
	return 0, 0
}

// SecurityLoggingMiddleware enforces the per-IP request budget
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	resolve := newIPResolver(trustedProxies)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(resolve.clientIP(r), requestCost(r)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestCost weights simulate calls because one request can play a whole batch.
func requestCost(r *http.Request) int {
	if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, simulatePathSuffix) {
		return SimulateRequestCost
	}
	return 1
}

type ipResolver struct {
	trusted map[string]struct{}
}

func newIPResolver(proxies []string) ipResolver {
	trusted := make(map[string]struct{}, len(proxies))
	for _, p := range proxies {
		if p = strings.TrimSpace(p); p != "" {
			trusted[p] = struct{}{}
		}
	}
	return ipResolver{trusted: trusted}
}

// clientIP returns the peer address, or the last X-Forwarded-For hop when the
// peer is a trusted proxy.
func (res ipResolver) clientIP(r *http.Request) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}

	if _, ok := res.trusted[remote]; !ok {
		return remote
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

var securityHeaders = []struct{ name, value string }{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

// SecurityHeadersMiddleware sets the fixed hardening headers on every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, sh := range securityHeaders {
				h.Set(sh.name, sh.value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
