package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/QuestCraft_Go/internal/logger"
)

const (
	HeaderAPIKey        = "X-API-Key"
	HeaderAuthorization = "Authorization"
	HeaderForwardedFor  = "X-Forwarded-For"

	// QueryAPIKey carries the key for EventSource clients, which cannot set headers
	QueryAPIKey = "key"

	redacted = "[REDACTED]"
)

// Guard defaults
const (
	DefaultRequestLimit = 1000
	DefaultWindow       = 5 * time.Minute
	DefaultAlertAfter   = 5
	maxTrackedClients   = 4096
)

var openPaths = []string{"/healthz", "/readyz", "/metrics", "/version"}

var securityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "SAMEORIGIN",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
	"Cache-Control":          "no-store",
}

// GuardOptions tunes the API key check and the per-client request budget
type GuardOptions struct {
	APIKey         string
	TrustedProxies []string
	RequestLimit   int
	Window         time.Duration
	AlertAfter     int
}

type counter struct {
	count int
	since time.Time
}

// Guard authenticates API calls and throttles noisy clients.
// Idle clients age out of the tracking caches after one window.
type Guard struct {
	key     []byte
	proxies map[string]struct{}
	limit   int
	window  time.Duration
	alertAt int
	now     func() time.Time

	mu       sync.Mutex
	requests *expirable.LRU[string, counter]
	failures *expirable.LRU[string, counter]
}

// NewGuard fills zero options with the defaults
func NewGuard(opts GuardOptions) *Guard {
	if opts.RequestLimit <= 0 {
		opts.RequestLimit = DefaultRequestLimit
	}
	if opts.Window <= 0 {
		opts.Window = DefaultWindow
	}
	if opts.AlertAfter <= 0 {
		opts.AlertAfter = DefaultAlertAfter
	}

	proxies := make(map[string]struct{}, len(opts.TrustedProxies))
	for _, p := range opts.TrustedProxies {
		proxies[p] = struct{}{}
	}

	return &Guard{
		key:      []byte(opts.APIKey),
		proxies:  proxies,
		limit:    opts.RequestLimit,
		window:   opts.Window,
		alertAt:  opts.AlertAfter,
		now:      time.Now,
		requests: expirable.NewLRU[string, counter](maxTrackedClients, nil, opts.Window),
		failures: expirable.NewLRU[string, counter](maxTrackedClients, nil, opts.Window),
	}
}

// bump increments the client's counter, restarting it once the window has passed
func (g *Guard) bump(cache *expirable.LRU[string, counter], ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	c, ok := cache.Get(ip)
	if !ok || now.Sub(c.since) > g.window {
		c = counter{since: now}
	}
	c.count++
	cache.Add(ip, c)
	return c.count
}

// Authenticate rejects API calls without the configured key. An empty key disables the check.
func (g *Guard) Authenticate(next http.Handler) http.Handler {
	if len(g.key) == 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isOpenPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		provided := r.Header.Get(HeaderAPIKey)
		if provided == "" {
			provided = r.URL.Query().Get(QueryAPIKey)
		}
		if subtle.ConstantTimeCompare([]byte(provided), g.key) == 1 {
			next.ServeHTTP(w, r)
			return
		}

		ip := g.clientIP(r)
		failures := g.bump(g.failures, ip)
		logger.FromContext(r.Context()).Warn("Authentication failed",
			"ip", ip,
			"path", r.URL.Path,
			"has_key", provided != "")
		if failures == g.alertAt {
			slog.Warn("Repeated authentication failures", "ip", ip, "count", failures)
		}

		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})
}

// Throttle answers 429 once a client exceeds its request budget for the window
func (g *Guard) Throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := g.clientIP(r)
		n := g.bump(g.requests, ip)
		if n > g.limit {
			if n == g.limit+1 {
				slog.Warn("Throttling client", "ip", ip, "limit", g.limit, "window", g.window)
			}
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP trusts X-Forwarded-For only when the direct peer is a known proxy,
// and then takes the hop that proxy reported.
func (g *Guard) clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if _, trusted := g.proxies[ip]; !trusted {
		return ip
	}
	if fwd := r.Header.Get(HeaderForwardedFor); fwd != "" {
		hops := strings.Split(fwd, ",")
		return strings.TrimSpace(hops[len(hops)-1])
	}
	return ip
}

func isOpenPath(path string) bool {
	for _, p := range openPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range securityHeaders {
			w.Header().Set(k, v)
		}
		next.ServeHTTP(w, r)
	})
}

func limitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
