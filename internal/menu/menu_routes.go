package menu

import (
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/middleware"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *rbac.Enforcer) {
	menus := r.Group("/menus")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.GET("", rbac.Authorize(enforcer, "menu", "read"), handler.GetForDate)
	}
}
