package middleware

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// ErrInvalidTrustedProxy адрес доверенного прокси не является IP или CIDR
var ErrInvalidTrustedProxy = errors.New("middleware: invalid trusted proxy")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nano
}

// RateLimiter ограничивает частоту запросов с одного IP.
// X-Forwarded-For учитывается только от доверенных прокси.
type RateLimiter struct {
	visitors sync.Map // map[string]*visitor
	rps      rate.Limit
	burst    int
	trusted  []netip.Prefix
	now      func() time.Time
}

// NewRateLimiter создает ограничитель. burst <= 0 заменяется на 5.
// trustedProxies принимает адреса и подсети ("10.0.0.1", "10.0.0.0/8").
func NewRateLimiter(rps float64, burst int, trustedProxies []string) (*RateLimiter, error) {
	if burst <= 0 {
		burst = 5
	}

	trusted := make([]netip.Prefix, 0, len(trustedProxies))
	for _, raw := range trustedProxies {
		prefix, err := parseProxy(raw)
		if err != nil {
			return nil, err
		}
		trusted = append(trusted, prefix)
	}

	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		trusted: trusted,
		now:     time.Now,
	}, nil
}

func parseProxy(raw string) (netip.Prefix, error) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "/") {
		prefix, err := netip.ParsePrefix(raw)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("%w: %q", ErrInvalidTrustedProxy, raw)
		}
		return prefix.Masked(), nil
	}

	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %q", ErrInvalidTrustedProxy, raw)
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

// Middleware отвечает 429, когда лимит клиента исчерпан
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.getLimiter(l.clientIP(r)).Allow() {
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Sweep удаляет клиентов, не обращавшихся дольше idle
func (l *RateLimiter) Sweep(idle time.Duration) {
	cutoff := l.now().Add(-idle).UnixNano()
	l.visitors.Range(func(key, value any) bool {
		if value.(*visitor).lastSeen.Load() < cutoff {
			l.visitors.Delete(key)
		}
		return true
	})
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := l.now().UnixNano()
	if v, ok := l.visitors.Load(key); ok {
		vis := v.(*visitor)
		vis.lastSeen.Store(now)
		return vis.limiter
	}

	vis := &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
	vis.lastSeen.Store(now)
	actual, _ := l.visitors.LoadOrStore(key, vis)
	return actual.(*visitor).limiter
}

// clientIP адрес соединения. Если соединение пришло от доверенного прокси,
// берётся самый правый недоверенный адрес из X-Forwarded-For.
func (l *RateLimiter) clientIP(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)
	if !l.isTrusted(peer) {
		return peer
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !l.isTrusted(hop) {
			return hop
		}
	}
	return peer
}

func (l *RateLimiter) isTrusted(ip string) bool {
	if len(l.trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range l.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
