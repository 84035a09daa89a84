package portfolio

import (
	"errors"

	"github.com/acwang/folio-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const detailNotFound = "portfolio item not found"

// Handler handles portfolio HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{svc: NewService(db)}
}

// RegisterRoutes mounts portfolio routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	items := rg.Group("/portfolio")

	items.GET("", h.list)
	items.GET("/:id", h.get)

	authed := items.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

// list GET /portfolio
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}

	out := make([]portfolioResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	response.OK(c, out)
}

// get GET /portfolio/:id
func (h *Handler) get(c *gin.Context) {
	item, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, detailNotFound)
		return
	}
	response.OK(c, toResponse(item))
}

// create POST /portfolio  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreatePortfolioDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(item))
}

// update PUT /portfolio/:id  [auth]
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePortfolioDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, detailNotFound)
		return
	}
	response.OK(c, toResponse(item))
}

// delete DELETE /portfolio/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, detailNotFound)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
