package app

import (
	"time"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/auth"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/billing"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/company"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/deadline"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/menu"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/messaging/kafka"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/middleware"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/ordering"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/rbac"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/registration"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/apperror"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/counter"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/response"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	loc *time.Location,
	horizonDays int,
) error {
	// --- Repositories ---
	companyRepo := company.NewRepository(db)
	userRepo := user.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	menuRepo := menu.NewRepository(db)
	orderRepo := ordering.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Domain Core ---
	deadlineCalc := deadline.NewCalculator(loc)
	billingCalc := billing.NewCalculator()

	// --- Services ---
	authService := auth.NewService(userRepo)
	companyService := company.NewService(companyRepo)
	menuService := menu.NewService(menuRepo, rdb)
	registrationService := registration.NewService(db, companyRepo, userRepo, counterRepo)
	orderService := ordering.NewService(
		db,
		orderRepo,
		menuService,
		companyRepo,
		deadlineCalc,
		billingCalc,
		outboxRepo,
		horizonDays,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	menuHandler := menu.NewHandler(menuService)
	orderHandler := ordering.NewHandler(orderService)
	registrationHandler := registration.NewHandler(registrationService)

	// --- Routes Registration ---
	router.Use(middleware.ContextLogger(zap.L()))
	router.NoRoute(func(c *gin.Context) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	})

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		registration.RegisterRoutes(api, registrationHandler)
		company.RegisterRoutes(api, companyHandler, enforcer)
		menu.RegisterRoutes(api, menuHandler, enforcer)
		ordering.RegisterRoutes(api, orderHandler, enforcer, rdb)
	}

	return nil
}
