package handlers

import (
	"net/http"
	"sync"
	"time"

	"vitta/internal/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL      = 10 * time.Minute
	limiterSweepEvery   = 5 * time.Minute
	rateLimitRetryAfter = "60"
)

// ipLimiter stores per-IP token buckets. Idle entries are swept lazily.
type ipLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	rate      rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(perMinute float64, burst int) *ipLimiter {
	return &ipLimiter{
		limiters:  make(map[string]*limiterEntry),
		rate:      rate.Limit(perMinute / 60),
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterSweepEvery {
		for k, e := range l.limiters {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(l.limiters, k)
			}
		}
		l.lastSweep = now
	}

	e, ok := l.limiters[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// rateLimit is a no-op when l is nil.
func (h *Handler) rateLimit(l *ipLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.allow(c.ClientIP()) {
			c.Next()
			return
		}
		metrics.SignInAttempts.WithLabelValues("rate_limited").Inc()
		if h.log != nil {
			h.log.Infow("rate_limited", "ip", c.ClientIP(), "path", c.FullPath())
		}
		c.Header("Retry-After", rateLimitRetryAfter)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": "too many requests, try again later",
		})
	}
}
