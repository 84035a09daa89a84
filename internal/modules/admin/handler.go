package admin

import (
	"errors"
	"time"

	"github.com/acwang/folio-core/internal/middleware"
	"github.com/acwang/folio-core/internal/pkg/jwt"
	"github.com/acwang/folio-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler exposes admin authentication endpoints.
type Handler struct {
	service  *Service
	tokenTTL time.Duration
}

func NewHandler(db *gorm.DB, tokenTTL time.Duration) *Handler {
	return &Handler{service: NewService(db), tokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	admin := rg.Group("/admin")
	{
		admin.POST("/token", h.login)
		admin.POST("/register", h.register)
		admin.GET("/me", authMW, h.me)
	}
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.Authenticate(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c, "Incorrect email or password")
			return
		}
		response.InternalError(c, err)
		return
	}

	token, err := jwt.Sign(user.Email, h.tokenTTL)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.Register(&dto)
	if err != nil {
		if errors.Is(err, ErrAlreadyRegistered) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, meResponse{Email: user.Email, Nickname: user.Nickname})
}

func (h *Handler) me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "Could not validate credentials")
		return
	}
	response.OK(c, meResponse{Email: user.Email, Nickname: user.Nickname})
}
