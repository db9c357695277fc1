package company

import (
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/middleware"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *rbac.Enforcer) {
	companies := r.Group("/company")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("/settings", rbac.Authorize(enforcer, "company", "read"), handler.GetSettings)
		companies.PUT("/settings", rbac.Authorize(enforcer, "company", "update"), handler.UpdateSettings)
	}
}
