package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"network/pkg/context"
	"network/pkg/log"
	"network/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZap 访问日志，同时兜底 panic
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", path),
					zap.ByteString("stack", debug.Stack()),
				)
				response.Abort(c, http.StatusInternalServerError, response.MsgInternalError)
			}

			fields := []zap.Field{
				zap.Int("status", c.Writer.Status()),
				zap.String("method", c.Request.Method),
				zap.String("path", path),
				zap.String("query", c.Request.URL.RawQuery),
				zap.String("ip", c.ClientIP()),
				zap.Duration("latency", time.Since(start)),
			}
			if uid := context.OptionalUserID(c); uid != 0 {
				fields = append(fields, zap.Int64("user_id", uid))
			}
			if len(c.Errors) > 0 {
				fields = append(fields, zap.String("errors", c.Errors.String()))
			}

			if c.Writer.Status() >= http.StatusInternalServerError {
				log.L.Error("request", fields...)
				return
			}
			log.L.Info("request", fields...)
		}()

		c.Next()
	}
}
