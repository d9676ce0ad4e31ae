//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/google/wire"
	"github.com/qassab/loyalty-core/internal/app/deliveries"
	"github.com/qassab/loyalty-core/internal/app/middlewares"
	"github.com/qassab/loyalty-core/internal/app/services"
	"github.com/qassab/loyalty-core/internal/infrastructures"
	"github.com/qassab/loyalty-core/pkg/keylock"
	"github.com/qassab/loyalty-core/pkg/ratelimit"
)

// Infrastructure providers
var infrastructureSet = wire.NewSet(
	infrastructures.NewDatabase,
	infrastructures.NewRedisClient,
	infrastructures.NewValidator,
	infrastructures.NewWalletClient,
	keylock.New,
	wire.Value("loyalty"),
	ratelimit.NewRedisRateLimiter,
	wire.Bind(new(ratelimit.RateLimiter), new(*ratelimit.RedisRateLimiter)),
)

// Service providers
var serviceSet = wire.NewSet(
	services.NewLedgerService,
	services.NewCustomerService,
	services.NewVoucherService,
	services.NewAuditService,
	services.NewAdminKeyService,
	services.NewWebhookNotifier,
	wire.Bind(new(services.Notifier), new(*services.WebhookNotifier)),
	services.NewAdjustmentService,
	services.NewRedemptionService,
	services.NewBalanceService,
)

// Middleware providers
var middlewareSet = wire.NewSet(
	middlewares.NewAdminAuthMiddleware,
	middlewares.NewRateLimitMiddleware,
)

// Handler providers
var handlerSet = wire.NewSet(
	deliveries.NewHealthHandler,
	deliveries.NewCustomerHandler,
	deliveries.NewPointsHandler,
	deliveries.NewVoucherHandler,
	wire.Struct(new(Application), "*"),
)

// InitializeApplication initializes the application with all its dependencies
func InitializeApplication() (*Application, error) {
	wire.Build(
		infrastructureSet,
		serviceSet,
		middlewareSet,
		handlerSet,
	)
	return &Application{}, nil
}
