package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thanquan654/mood-diary/internal/users"
)

type loginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Handler serves the login and current-user endpoints.
type Handler struct {
	svc   *Service
	users users.Store
}

func NewHandler(svc *Service, store users.Store) *Handler {
	return &Handler{svc: svc, users: store}
}

// Login checks the posted credentials and returns the matching user.
// Failures are left to the error middleware.
func (h *Handler) Login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	u, err := h.svc.Login(c.Request.Context(), dto.Email, dto.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, users.ToResponse(u))
}

// Me returns the record of the authenticated caller.
func (h *Handler) Me(c *gin.Context) {
	email, ok := EmailFrom(c.Request.Context())
	if !ok {
		_ = c.Error(ErrUnauthenticated)
		return
	}

	u, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, users.ToResponse(u))
}
