package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	resp "go-gin-gorm-inventory/internal/transport/http/response"
)

// RateLimit 全局令牌桶限速
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(resp.CodeTooManyRequest, resp.Error(resp.CodeTooManyRequest, ""))
	}
}

type ipBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// 空闲超过 ipIdle 的桶会被清理
const ipIdle = 10 * time.Minute

// RateLimitPerIP 每 IP 限速
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		buckets = make(map[string]*ipBucket)
		swept   = time.Now()
	)
	allow := func(ip string) bool {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		if now.Sub(swept) > ipIdle {
			for k, b := range buckets {
				if now.Sub(b.seen) > ipIdle {
					delete(buckets, k)
				}
			}
			swept = now
		}
		b, ok := buckets[ip]
		if !ok {
			b = &ipBucket{lim: rate.NewLimiter(rps, burst)}
			buckets[ip] = b
		}
		b.seen = now
		return b.lim.Allow()
	}
	return func(c *gin.Context) {
		if allow(c.ClientIP()) {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(resp.CodeTooManyRequest, resp.Error(resp.CodeTooManyRequest, ""))
	}
}
