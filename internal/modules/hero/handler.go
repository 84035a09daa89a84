package hero

import (
	"github.com/acwang/folio-core/internal/models"
	"github.com/acwang/folio-core/internal/pkg/markdown"
	"github.com/acwang/folio-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler exposes the hero section settings endpoints.
type Handler struct {
	service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	settings := rg.Group("/settings")
	{
		settings.GET("/hero", h.get)
		settings.PUT("/hero", authMW, h.update)
	}
}

func (h *Handler) get(c *gin.Context) {
	settings, err := h.service.GetOrCreate()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.respond(c, settings)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateHeroDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.service.Update(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.respond(c, settings)
}

func (h *Handler) respond(c *gin.Context, settings *models.HeroSettingsModel) {
	bioHTML, err := markdown.Render(settings.BioContent)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(settings, bioHTML))
}
