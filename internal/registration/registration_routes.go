package registration

import (
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	// Registration is unauthenticated and therefore rate-limited per IP.
	reg := r.Group("/registration")
	reg.Use(middleware.RateLimitByIP(rate.Limit(1), 5))
	{
		reg.POST("/company", handler.RegisterCompany)
		reg.POST("/user", handler.RegisterUser)
	}
}
