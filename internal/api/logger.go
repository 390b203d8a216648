package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thanquan654/mood-diary/internal/auth"
	"github.com/thanquan654/mood-diary/internal/logging"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// RequestLogger logs one line per request and tags it with a request id,
// taken from X-Request-ID when the caller sends one.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		args := []any{
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if email, ok := auth.EmailFrom(c.Request.Context()); ok {
			args = append(args, "user", email)
		}

		ctx := c.Request.Context()
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error(ctx, "http request", args...)
		case status >= http.StatusBadRequest:
			log.Warn(ctx, "http request", args...)
		default:
			log.Info(ctx, "http request", args...)
		}
	}
}
