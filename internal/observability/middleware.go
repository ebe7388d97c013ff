package observability

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const loggerKey = "observability.logger"

// RequestLogger logs one entry per request and stores a request-scoped
// logger on the gin context.
func RequestLogger(base *zap.Logger, sessionID func(*gin.Context) string) gin.HandlerFunc {
	if base == nil {
		base = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(loggerKey, base.With(zap.String("path", c.Request.URL.Path)))

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_ip", c.ClientIP()),
			zap.Bool("htmx", c.GetHeader("HX-Request") == "true"),
		}
		if sessionID != nil {
			if sid := sessionID(c); sid != "" {
				fields = append(fields, zap.String("session", sid))
			}
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case c.Writer.Status() >= 500:
			base.Error("request", fields...)
		case c.Writer.Status() >= 400:
			base.Warn("request", fields...)
		default:
			base.Info("request", fields...)
		}
	}
}

// Logger returns the request-scoped logger, or a no-op logger outside a
// logged request.
func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}
