package ordering

import (
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/middleware"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *rbac.Enforcer, rdb *redis.Client) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("/available-dates", rbac.Authorize(enforcer, "order", "read"), handler.AvailableDates)
		orders.GET("/deadline", rbac.Authorize(enforcer, "order", "read"), handler.CheckDeadline)

		orders.POST("",
			rbac.Authorize(enforcer, "order", "create"),
			middleware.RateLimitByUser(rate.Limit(2), 10),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		orders.GET("", rbac.Authorize(enforcer, "order", "read"), handler.History)
		orders.GET("/:id", rbac.Authorize(enforcer, "order", "read"), handler.GetByID)
		orders.PUT("/:id", rbac.Authorize(enforcer, "order", "update"), handler.Update)
		orders.POST("/:id/cancel", rbac.Authorize(enforcer, "order", "cancel"), handler.Cancel)
	}

	companyOrders := r.Group("/company/orders")
	companyOrders.Use(middleware.AuthMiddleware())
	{
		companyOrders.GET("", rbac.Authorize(enforcer, "company_orders", "read"), handler.CompanyOrders)
	}
}
