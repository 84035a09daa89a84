package blog

import (
	"errors"

	"github.com/acwang/folio-core/internal/models"
	"github.com/acwang/folio-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const detailNotFound = "blog post not found"

// Handler exposes blog post endpoints.
type Handler struct {
	service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	blog := rg.Group("/blog")
	{
		blog.GET("", h.list)
		blog.GET("/count", h.count)
		blog.GET("/all", authMW, h.listAll)
		blog.GET("/:id", h.get)

		authed := blog.Group("", authMW)
		{
			authed.POST("", h.create)
			authed.PUT("/:id", h.update)
			authed.DELETE("/:id", h.delete)
		}
	}
}

func (h *Handler) list(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	publishedOnly := true
	if query.PublishedOnly != nil {
		publishedOnly = *query.PublishedOnly
	}

	posts, err := h.service.List(publishedOnly)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponseList(posts))
}

// listAll returns every post, drafts included.
func (h *Handler) listAll(c *gin.Context) {
	posts, err := h.service.List(false)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponseList(posts))
}

func (h *Handler) count(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	publishedOnly := true
	if query.PublishedOnly != nil {
		publishedOnly = *query.PublishedOnly
	}

	count, err := h.service.Count(publishedOnly)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"count": count})
}

func (h *Handler) get(c *gin.Context) {
	post, err := h.service.GetByID(c.Param("id"), false)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, detailNotFound)
		return
	}
	response.OK(c, toResponse(post))
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateBlogPostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.service.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(post))
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateBlogPostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.service.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, detailNotFound)
		return
	}
	response.OK(c, toResponse(post))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, detailNotFound)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func toResponseList(posts []models.BlogPostModel) []blogPostResponse {
	out := make([]blogPostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toResponse(&posts[i]))
	}
	return out
}
