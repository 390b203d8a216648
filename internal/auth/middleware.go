package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrUnauthenticated is reported for requests a rule requires an identity
// for but that carry no valid bearer token.
var ErrUnauthenticated = errors.New("authentication required")

// ErrForbidden is reported for requests matched by no permitting rule.
var ErrForbidden = errors.New("access denied")

type ctxKey struct{}

// Perimeter applies rules before any handler runs. Rejected requests are
// aborted with the cause recorded through c.Error.
func Perimeter(rules Rules, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch rules.Match(c.Request.Method, c.Request.URL.Path) {
		case PermitAll:
			c.Next()
			return
		case Authenticated:
		default:
			_ = c.Error(ErrForbidden)
			c.Abort()
			return
		}

		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			_ = c.Error(ErrUnauthenticated)
			c.Abort()
			return
		}
		claims, err := ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			_ = c.Error(fmt.Errorf("%w: %w", ErrUnauthenticated, err))
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithEmail(c.Request.Context(), claims.Identity()))
		c.Next()
	}
}

// WithEmail stores the authenticated caller's email in ctx.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ctxKey{}, email)
}

// EmailFrom returns the authenticated caller's email, if any.
func EmailFrom(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ctxKey{}).(string)
	return email, ok && email != ""
}
