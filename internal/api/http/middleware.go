package http

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"ptoshare-backend/internal/config"
	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/security"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

// Handler authenticates requests according to the security level of the matched route.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := config.SecurityAdmin
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				level = config.GetSecurityLevel(r.Method, tpl)
			}
		}

		// Public endpoint - skip auth
		if level == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		token := bearerToken(r)
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization token is not provided", RequestID: RequestIDFromContext(r.Context())})
			return
		}

		claims, err := m.tokenManager.ValidateToken(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), RequestID: RequestIDFromContext(r.Context())})
			return
		}

		if status, msg := checkSecurityLevel(level, claims); status != 0 {
			writeJSON(w, status, errorResponse{Error: msg, RequestID: RequestIDFromContext(r.Context())})
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

func checkSecurityLevel(level config.SecurityLevel, claims *security.UserClaims) (int, string) {
	switch level {
	case config.SecurityRefresh:
		if claims.Type != security.TokenTypeRefresh {
			return http.StatusUnauthorized, "refresh token required"
		}
	case config.SecurityAccess:
		if claims.Type != security.TokenTypeAccess {
			return http.StatusUnauthorized, "access token required"
		}
	case config.SecurityAdmin:
		if claims.Type != security.TokenTypeAccess {
			return http.StatusUnauthorized, "access token required"
		}
		if !claims.IsAdmin {
			return http.StatusForbidden, "admin privileges required"
		}
	}
	return 0, ""
}

func bearerToken(r *http.Request) string {
	token := strings.TrimSpace(r.Header.Get("Authorization"))
	// Remove Bearer prefix if present
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}

// RequestID propagates or assigns an X-Request-ID for every request.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// AccessLog logs one line per request once the handler returns.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.HTTPRequest(r.Method, r.URL.Path, rec.status, time.Since(start),
			"requestID", RequestIDFromContext(r.Context()),
			"remote", remoteHost(r),
		)
	})
}

// RateLimiter throttles requests per client IP with a token bucket.
// X-Forwarded-For is honored only when the socket peer is a trusted proxy.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	trusted  []*net.IPNet
}

// NewRateLimiter builds a limiter. trustedProxies holds IPs or CIDRs of the
// reverse proxies in front of the server; unparsable entries are skipped.
func NewRateLimiter(requestsPerMinute, burst int, trustedProxies ...string) *RateLimiter {
	l := &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(requestsPerMinute) / 60),
		burst:    burst,
	}
	for _, entry := range trustedProxies {
		ipNet, err := parseProxy(entry)
		if err != nil {
			logger.Warn("Ignoring invalid trusted proxy", "entry", entry, "error", err)
			continue
		}
		l.trusted = append(l.trusted, ipNet)
	}
	return l
}

func (l *RateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = lim
	}
	return lim
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := l.clientIP(r)
		if !l.limiter(ip).Allow() {
			logger.Warn("Rate limit exceeded", "ip", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many requests", RequestID: RequestIDFromContext(r.Context())})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Prune drops limiters that have refilled completely, keeping the map bounded.
func (l *RateLimiter) Prune() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, lim := range l.limiters {
		if lim.Tokens() >= float64(l.burst) {
			delete(l.limiters, ip)
		}
	}
}

// clientIP returns the socket peer unless it is a trusted proxy. Behind trusted
// proxies it walks X-Forwarded-For from the right and returns the first hop
// that is not itself trusted; the left-most entries are client controlled.
func (l *RateLimiter) clientIP(r *http.Request) string {
	peer := remoteHost(r)
	if !l.isTrusted(net.ParseIP(peer)) {
		return peer
	}
	var hops []string
	for _, v := range r.Header.Values("X-Forwarded-For") {
		hops = append(hops, strings.Split(v, ",")...)
	}
	for i := len(hops) - 1; i >= 0; i-- {
		ip := net.ParseIP(strings.TrimSpace(hops[i]))
		if ip == nil {
			return peer
		}
		if !l.isTrusted(ip) {
			return ip.String()
		}
	}
	return peer
}

func (l *RateLimiter) isTrusted(ip net.IP) bool {
	if ip == nil {
		return false
	}
	for _, n := range l.trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// parseProxy accepts a CIDR or a single IP.
func parseProxy(entry string) (*net.IPNet, error) {
	entry = strings.TrimSpace(entry)
	if strings.Contains(entry, "/") {
		_, ipNet, err := net.ParseCIDR(entry)
		return ipNet, err
	}
	ip := net.ParseIP(entry)
	if ip == nil {
		return nil, &net.ParseError{Type: "IP address", Text: entry}
	}
	bits := 128
	if ip4 := ip.To4(); ip4 != nil {
		ip, bits = ip4, 32
	}
	return &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}, nil
}

func remoteHost(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
