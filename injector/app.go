package injector

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qassab/loyalty-core/internal/app/deliveries"
	"github.com/qassab/loyalty-core/internal/app/middlewares"
	"github.com/qassab/loyalty-core/pkg/ratelimit"
)

// Application represents the main application container for loyalty-core
type Application struct {
	HealthHandler       *deliveries.HealthHandler
	CustomerHandler     *deliveries.CustomerHandler
	PointsHandler       *deliveries.PointsHandler
	VoucherHandler      *deliveries.VoucherHandler
	RateLimitMiddleware *middlewares.RateLimitMiddleware
}

// RegisterRoutes registers all application routes using a Fiber router
func (app *Application) RegisterRoutes(router fiber.Router) {
	// Public read endpoints share the IP-based limit; staff endpoints get
	// their own per-key budget.
	router.Use(app.RateLimitMiddleware.LimitByAdminKey(ratelimit.AdminAPILimit))

	app.HealthHandler.RegisterRoutes(router)
	app.CustomerHandler.RegisterRoutes(router)
	app.PointsHandler.RegisterRoutes(router)
	app.VoucherHandler.RegisterRoutes(router)
}
