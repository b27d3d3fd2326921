package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		ctx := c.Request.Context()
		log.LogRequest(ctx, c.Request.Method, path, c.Writer.Status(), time.Since(start))

		if msg, ok := c.Get("error"); ok {
			log.LogAttrs(ctx, logger.WarnLevel, "request failed",
				logger.String("method", c.Request.Method),
				logger.String("path", path),
				logger.Int("status", c.Writer.Status()),
				logger.Any("error", msg),
			)
		}
	}
}
