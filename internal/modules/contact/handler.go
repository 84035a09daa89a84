package contact

import (
	"errors"

	"github.com/acwang/folio-core/internal/pkg/mail"
	"github.com/acwang/folio-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler exposes the public contact/subscribe endpoints and the
// admin views over what they collect.
type Handler struct {
	service *Service
}

func NewHandler(db *gorm.DB, sender *mail.Sender, notifyTo string, logger *zap.Logger) *Handler {
	return &Handler{service: NewService(db, sender, notifyTo, logger)}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/subscribe", h.subscribe)
	rg.POST("/contactme", h.contact)

	rg.GET("/contacts", authMW, h.listContacts)
	rg.PUT("/contacts/:id/read", authMW, h.markRead)
	rg.GET("/subscribers", authMW, h.listSubscribers)
}

func (h *Handler) subscribe(c *gin.Context) {
	var dto SubscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Subscribe(&dto)
	if err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			response.BadRequest(c, "This email is already subscribed to the newsletter.")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{
		"success":       true,
		"message":       result.Message,
		"subscriber_id": result.SubscriberID,
	})
}

func (h *Handler) contact(c *gin.Context) {
	var dto ContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contact, err := h.service.SubmitContact(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{
		"success":    true,
		"message":    "Thanks for reaching out! I'll get back to you soon.",
		"contact_id": contact.ID,
	})
}

func (h *Handler) listContacts(c *gin.Context) {
	contacts, err := h.service.ListContacts()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, contacts)
}

func (h *Handler) markRead(c *gin.Context) {
	contact, err := h.service.MarkContactRead(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if contact == nil {
		response.NotFound(c, "contact message not found")
		return
	}
	response.OK(c, contact)
}

func (h *Handler) listSubscribers(c *gin.Context) {
	subs, err := h.service.ListSubscribers()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, subs)
}
