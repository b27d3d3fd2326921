package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type HitCounter interface {
	Hit(ctx context.Context, key string, window time.Duration, now time.Time) (int64, time.Duration, error)
}

// RateLimit allows limit requests per client IP per fixed window. When the
// counter store is unavailable requests are let through.
func RateLimit(counter HitCounter, limit int, window time.Duration, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		ctx := c.Request.Context()

		n, left, err := counter.Hit(ctx, c.ClientIP(), window, time.Now())
		if err != nil {
			log.LogAttrs(ctx, logger.WarnLevel, "rate limiter unavailable",
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}

		remaining := int64(limit) - n
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if n > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(left.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
