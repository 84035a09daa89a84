package middleware

import (
	"errors"
	"strings"

	"github.com/acwang/folio-core/internal/models"
	"github.com/acwang/folio-core/internal/pkg/jwt"
	"github.com/acwang/folio-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const ContextKeyUser = "current_user"

// Auth returns a middleware that enforces bearer JWT authentication and
// loads the admin user into the request context.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := validateRequest(db, c)
		if err != nil {
			response.Unauthorized(c, "Could not validate credentials")
			return
		}
		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser extracts the authenticated admin from context.
func CurrentUser(c *gin.Context) *models.UserModel {
	v, _ := c.Get(ContextKeyUser)
	user, _ := v.(*models.UserModel)
	return user
}

func validateRequest(db *gorm.DB, c *gin.Context) (*models.UserModel, error) {
	token := NormalizeToken(c.GetHeader("Authorization"))
	if token == "" {
		return nil, errors.New("token is required")
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return nil, err
	}

	var user models.UserModel
	if err := db.Where("email = ?", claims.Email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
