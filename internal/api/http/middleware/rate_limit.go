package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

// RateLimitMiddleware applies a per-client token bucket. Stale client
// entries are collected every few minutes so the map does not grow with
// one-off visitors.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		clients = map[string]*limiterEntry{}
	)

	gc := time.NewTicker(5 * time.Minute)
	go func() {
		for range gc.C {
			mu.Lock()
			for k, v := range clients {
				if time.Since(v.last) > 10*time.Minute {
					delete(clients, k)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := clientIP(c)

		mu.Lock()
		entry, ok := clients[ip]
		if !ok {
			entry = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			clients[ip] = entry
		}
		entry.last = time.Now()
		allow := entry.limiter.Allow()
		mu.Unlock()

		if !allow {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
