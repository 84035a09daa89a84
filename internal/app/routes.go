package app

import (
	"net/http"
	"time"

	"github.com/acwang/folio-core/internal/middleware"
	"github.com/acwang/folio-core/internal/modules/admin"
	"github.com/acwang/folio-core/internal/modules/blog"
	"github.com/acwang/folio-core/internal/modules/contact"
	"github.com/acwang/folio-core/internal/modules/hero"
	"github.com/acwang/folio-core/internal/modules/portfolio"
	"github.com/acwang/folio-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(a.rc.Raw()))

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	tokenTTL := time.Duration(a.cfg.TokenTTLMin) * time.Minute
	admin.NewHandler(db, tokenTTL).RegisterRoutes(api, authMW)
	portfolio.NewHandler(db).RegisterRoutes(api, authMW)
	blog.NewHandler(db).RegisterRoutes(api, authMW)
	hero.NewHandler(db).RegisterRoutes(api, authMW)
	contact.NewHandler(db, a.mailSender(), a.cfg.Mail.To, a.logger).RegisterRoutes(api, authMW)
}
