package api

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/thanquan654/mood-diary/internal/auth"
	"github.com/thanquan654/mood-diary/internal/logging"
	"github.com/thanquan654/mood-diary/internal/users"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

var errRouteNotFound = errors.New("route not found")

const (
	msgInternal  = "internal server error"
	msgMalformed = "malformed request body"
)

// ErrorHandler turns the last error recorded on the context, or a panic,
// into an ErrorResponse. Unless strict is set every failure is a 500.
func ErrorHandler(log logging.Logger, strict bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error(c.Request.Context(), "panic recovered",
					"request_id", c.GetString(requestIDKey),
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
				writeError(c, http.StatusInternalServerError, msgInternal)
			}
		}()

		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		status, msg := classify(last, strict)

		args := []any{"request_id", c.GetString(requestIDKey), "status", status, "error", last.Err.Error()}
		if status >= http.StatusInternalServerError {
			log.Error(c.Request.Context(), "request failed", args...)
		} else {
			log.Debug(c.Request.Context(), "request rejected", args...)
		}

		if c.Writer.Written() {
			return
		}
		writeError(c, status, msg)
	}
}

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Message: msg, Status: status})
}

func classify(ge *gin.Error, strict bool) (int, string) {
	err := ge.Err
	pick := func(strictStatus int) int {
		if strict {
			return strictStatus
		}
		return http.StatusInternalServerError
	}

	var ce *auth.CredentialsError
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, auth.ErrUnauthenticated.Error()
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusUnauthorized, auth.ErrForbidden.Error()
	case errors.Is(err, errRouteNotFound):
		return http.StatusNotFound, errRouteNotFound.Error()
	case errors.As(err, &ce):
		return pick(http.StatusUnauthorized), ce.Message
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pick(http.StatusUnauthorized), auth.ErrInvalidCredentials.Error()
	case ge.IsType(gin.ErrorTypeBind):
		return pick(http.StatusBadRequest), msgMalformed
	case errors.Is(err, users.ErrNotFound):
		return pick(http.StatusNotFound), users.ErrNotFound.Error()
	case errors.Is(err, users.ErrStoreUnavailable):
		return http.StatusInternalServerError, users.ErrStoreUnavailable.Error()
	}
	return http.StatusInternalServerError, msgInternal
}
