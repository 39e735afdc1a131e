package server

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GrimArmory_Go/internal/logger"
)

type clientIPKey struct{}

// ClientIP returns the caller address stored by ClientIPMiddleware
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// ClientIPMiddleware resolves the caller address once per request.
// X-Forwarded-For is honoured only when the direct peer is a trusted proxy.
func ClientIPMiddleware(trustedProxies []string) func(http.Handler) http.Handler {
	trusted := make(map[string]struct{}, len(trustedProxies))
	for _, p := range trustedProxies {
		trusted[strings.TrimSpace(p)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trusted)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), clientIPKey{}, ip)))
		})
	}
}

func extractIP(r *http.Request, trusted map[string]struct{}) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}
	if _, ok := trusted[remoteIP]; !ok {
		return remoteIP
	}

	// The rightmost hop is the one our proxy actually saw.
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
		return last
	}
	return remoteIP
}

// clientWindow counts one address's activity inside its current window
type clientWindow struct {
	requests   int
	failedAuth int
}

// ClientTracker keeps per-address request and failed-auth counts. Each
// address gets its own window that opens on its first request and expires
// RateLimitWindow later; the least recently seen addresses are evicted
// once MaxTrackedClients is reached.
type ClientTracker struct {
	mu      sync.Mutex
	windows *expirable.LRU[string, *clientWindow]
	limit   int
}

// NewClientTracker allows limit requests per address per RateLimitWindow
func NewClientTracker(limit int) *ClientTracker {
	return &ClientTracker{
		windows: expirable.NewLRU[string, *clientWindow](MaxTrackedClients, nil, RateLimitWindow),
		limit:   limit,
	}
}

// window must be called with mu held
func (t *ClientTracker) window(ip string) *clientWindow {
	if w, ok := t.windows.Get(ip); ok {
		return w
	}
	w := &clientWindow{}
	t.windows.Add(ip, w)
	return w
}

// Allow counts a request and reports whether the address is still under its limit
func (t *ClientTracker) Allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	w := t.window(ip)
	w.requests++
	if w.requests <= t.limit {
		return true
	}
	if (w.requests-t.limit)%RateLimitLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count", w.requests)
	}
	return false
}

// FailedAuth counts a rejected API key and returns the running total
func (t *ClientTracker) FailedAuth(ip string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	w := t.window(ip)
	w.failedAuth++
	if w.failedAuth >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failedAuth)
	}
	return w.failedAuth
}

// RateLimitMiddleware rejects addresses over their request budget with 429
func RateLimitMiddleware(tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tracker.Allow(ClientIP(r.Context())) {
				w.Header().Set(HeaderRetryAfter, RetryAfterSeconds)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware requires the API key on everything outside PublicPaths.
// The key is read from X-API-Key or an "Authorization: Bearer" header.
// An empty apiKey leaves the API open.
func AuthMiddleware(apiKey string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		want := []byte(apiKey)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := providedKey(r)
			if subtle.ConstantTimeCompare([]byte(provided), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := ClientIP(r.Context())
			failures := tracker.FailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", provided != "",
				"failures", failures)

			w.Header().Set(HeaderWWWAuthenticate, AuthScheme)
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

func providedKey(r *http.Request) string {
	if key := r.Header.Get(HeaderAPIKey); key != "" {
		return key
	}
	auth := r.Header.Get(HeaderAuthorization)
	if len(auth) > len(AuthScheme) && strings.EqualFold(auth[:len(AuthScheme)+1], AuthScheme+" ") {
		return strings.TrimSpace(auth[len(AuthScheme)+1:])
	}
	return ""
}

func isPublicPath(path string) bool {
	_, ok := PublicPaths[strings.TrimSuffix(path, "/")]
	return ok
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

// SecurityHeadersMiddleware marks every response as non-embeddable and
// keeps API payloads out of shared caches.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueNoReferrer)
			if strings.HasPrefix(r.URL.Path, APIPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}
			next.ServeHTTP(w, r)
		})
	}
}
