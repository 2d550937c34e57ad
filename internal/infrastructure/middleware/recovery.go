package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-gateway/internal/pkg/httputil"
)

// Recovery turns a handler panic into a 500 envelope. If image bytes were
// already flushed the status line is gone, so the request is only aborted.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logger.Error("handler panicked",
				zap.Any("panic", rec),
				zap.String("method", c.Request.Method),
				zap.String("route", c.FullPath()),
				zap.String("object_key", c.Param("key")),
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.ByteString("stack", debug.Stack()),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			httputil.InternalError(c)
			c.Abort()
		}()
		c.Next()
	}
}
