package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/podcast-api/internal/api/shared"
	"golang.org/x/time/rate"
)

// DefaultMaxBuckets bounds how many client addresses a RateLimiter tracks at once.
const DefaultMaxBuckets = 10000

// RateLimiter throttles requests per client address with a token bucket
// for each address.
//
// The client address is the socket peer. X-Forwarded-For is only consulted
// when the peer is a trusted proxy, so clients cannot pick their own key.
// Buckets idle long enough to have refilled completely are dropped while
// handling later requests.
type RateLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	interval   time.Duration
	burst      int
	idleTTL    time.Duration
	maxBuckets int
	lastSweep  time.Time
	trusted    []netip.Prefix
	now        func() time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterOption customizes a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithTrustedProxies makes the limiter key requests arriving from one of
// prefixes on the client address those proxies report in X-Forwarded-For.
func WithTrustedProxies(prefixes []netip.Prefix) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.trusted = prefixes
	}
}

// WithMaxBuckets overrides DefaultMaxBuckets.
func WithMaxBuckets(n int) RateLimiterOption {
	return func(rl *RateLimiter) {
		if n > 0 {
			rl.maxBuckets = n
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.now = now
	}
}

// NewRateLimiter allows perMinute requests per client address with the given
// burst. A non-positive perMinute returns nil, which Limit treats as disabled.
func NewRateLimiter(perMinute, burst int, opts ...RateLimiterOption) *RateLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	interval := time.Minute / time.Duration(perMinute)
	rl := &RateLimiter{
		buckets:    make(map[string]*bucket),
		interval:   interval,
		burst:      burst,
		idleTTL:    interval * time.Duration(burst),
		maxBuckets: DefaultMaxBuckets,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// ParseTrustedProxies parses CIDR prefixes and bare IP addresses.
func ParseTrustedProxies(entries []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// Allow reports whether a request from key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		rl.evictIdle(now)
	}

	b, ok := rl.buckets[key]
	if !ok {
		if len(rl.buckets) >= rl.maxBuckets {
			rl.evictIdle(now)
			if len(rl.buckets) >= rl.maxBuckets {
				rl.evictOldest()
			}
		}
		b = &bucket{limiter: rate.NewLimiter(rate.Every(rl.interval), rl.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// Len reports how many client addresses currently have a bucket.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

// evictIdle drops buckets that have been full again for a while; a fresh
// bucket for the same key behaves identically. Callers hold rl.mu.
func (rl *RateLimiter) evictIdle(now time.Time) {
	cutoff := now.Add(-rl.idleTTL)
	for key, b := range rl.buckets {
		if !b.lastSeen.After(cutoff) {
			delete(rl.buckets, key)
		}
	}
	rl.lastSweep = now
}

// evictOldest drops the least recently seen bucket. Callers hold rl.mu.
func (rl *RateLimiter) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for key, b := range rl.buckets {
		if !found || b.lastSeen.Before(oldest) {
			oldestKey, oldest, found = key, b.lastSeen, true
		}
	}
	if found {
		delete(rl.buckets, oldestKey)
	}
}

// retryAfter is the whole number of seconds until one token refills.
func (rl *RateLimiter) retryAfter() int {
	seconds := int(math.Ceil(rl.interval.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

// Limit returns middleware applying the limiter. A nil limiter passes every
// request through.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	if rl == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(rl.clientAddr(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
			shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests, "Too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientAddr returns the socket peer, or when the peer is a trusted proxy,
// the right-most X-Forwarded-For hop that is not itself trusted.
func (rl *RateLimiter) clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	peer, err := netip.ParseAddr(host)
	if err != nil || !rl.isTrusted(peer) {
		return host
	}

	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		if !rl.isTrusted(hop) {
			return hop.Unmap().String()
		}
	}
	return host
}

func (rl *RateLimiter) isTrusted(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, prefix := range rl.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
