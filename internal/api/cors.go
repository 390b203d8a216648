package api

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thanquan654/mood-diary/internal/config"
)

// CORS adds the Access-Control-Allow-* headers for permitted origins.
// Pre-flight requests are answered by the OPTIONS route, not here.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)
	wildcard := slices.Contains(cfg.AllowedOrigins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allow := ""
		switch {
		case origin != "" && slices.Contains(cfg.AllowedOrigins, origin):
			allow = origin
		case wildcard && cfg.AllowCredentials && origin != "":
			// browsers reject "*" together with credentials
			allow = origin
		case wildcard:
			allow = "*"
		}

		if allow != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", allow)
			if allow != "*" {
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			if cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			if c.Request.Method == http.MethodOptions && cfg.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", maxAge)
			}
		}

		c.Next()
	}
}
