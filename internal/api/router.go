// Package api wires the HTTP boundary: middleware, routes and the server.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thanquan654/mood-diary/internal/auth"
	"github.com/thanquan654/mood-diary/internal/config"
	"github.com/thanquan654/mood-diary/internal/logging"
)

// NewRouter builds the gin engine. Middleware order: request log, error
// mapping, CORS headers, perimeter rules.
func NewRouter(cfg *config.Config, log logging.Logger, h *auth.Handler) *gin.Engine {
	r := gin.New()
	r.Use(
		RequestLogger(log),
		ErrorHandler(log, cfg.HTTP.StrictStatus),
		CORS(cfg.CORS),
		auth.Perimeter(auth.DefaultRules(), []byte(cfg.Auth.JWTSecret)),
	)

	r.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	a := r.Group("/auth")
	a.POST("/login", h.Login)
	a.GET("/me", h.Me)

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(errRouteNotFound)
	})

	return r
}
