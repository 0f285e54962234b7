package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/response"
	"github.com/A-Basit02/Disaster-Management-App/pkg/logger"
)

// limiterIdle is how long an unused bucket is kept
const limiterIdle = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	keyFunc  func(*gin.Context) string
	now      func() time.Time

	lastSweep time.Time
}

// NewRateLimiter creates a limiter of rps requests per second with the given burst, keyed by client IP
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(rps),
		burst:    burst,
		keyFunc:  func(c *gin.Context) string { return c.ClientIP() },
		now:      time.Now,
	}
}

// getLimiter returns the bucket of key and drops buckets idle for too long
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	if now.Sub(rl.lastSweep) > limiterIdle {
		for k, other := range rl.visitors {
			if now.Sub(other.lastSeen) > limiterIdle {
				delete(rl.visitors, k)
			}
		}
		rl.lastSweep = now
	}
	return v.limiter
}

// Handler rejects requests over the limit with 429
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.keyFunc(c)
		if !rl.getLimiter(key).AllowN(rl.now(), 1) {
			logger.L().Warn("rate limit exceeded",
				zap.String("key", key),
				zap.String("path", c.Request.URL.Path),
			)
			response.AbortWithCode(c, code.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// IPRateLimiter limits each client IP to rps requests per second
func IPRateLimiter(rps float64, burst int) gin.HandlerFunc {
	return NewRateLimiter(rps, burst).Handler()
}
