package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"syscall"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 carrying the request id. A panic
// caused by the client hanging up is logged and the response is skipped.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			ctx := c.Request.Context()
			if clientGone(rec) {
				log.LogAttrs(ctx, logger.WarnLevel, "client disconnected",
					logger.String("method", c.Request.Method),
					logger.String("path", c.Request.URL.Path),
				)
				c.Abort()
				return
			}

			c.Set("error", fmt.Sprint(rec))
			log.LogAttrs(ctx, logger.ErrorLevel, "panic recovered",
				logger.Any("panic", rec),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.String("stack", string(debug.Stack())),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"error":      "internal server error",
				"request_id": logger.GetRequestID(ctx),
			})
		}()

		c.Next()
	}
}

func clientGone(rec any) bool {
	err, ok := rec.(error)
	if !ok {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, http.ErrAbortHandler)
}
