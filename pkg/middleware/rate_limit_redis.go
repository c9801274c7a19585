package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gameface/payloadstore/pkg/logger"
	"github.com/gameface/payloadstore/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RedisRateLimitMiddleware limits each client IP to floor(rps*window)+burst requests per
// window, counted in Redis so every replica sharing the instance shares the budget.
// The window starts with the client's first request and ends when its counter key expires.
// A nil client falls back to the in-process limiter.
func RedisRateLimitMiddleware(client *redis.Client, rps float64, burst int, window time.Duration) gin.HandlerFunc {
	if client == nil {
		return RateLimitMiddleware(rps, burst)
	}
	if window < time.Second {
		window = time.Second
	}
	budget := int64(rps*window.Seconds()) + int64(burst)

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "rl:" + clientKey(c)

		n, err := client.Incr(ctx, key).Result()
		if err != nil {
			logger.Errorf("rate limit: incr %s: %v", key, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			return
		}
		if n == 1 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				logger.Warnf("rate limit: expire %s: %v", key, err)
			}
		}
		if n <= budget {
			metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
			c.Next()
			return
		}

		retry := window
		if ttl, err := client.TTL(ctx, key).Result(); err == nil && ttl > 0 {
			retry = ttl
		}
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
		metrics.RateLimitRejected.WithLabelValues("redis").Inc()
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
	}
}
