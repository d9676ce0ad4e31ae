package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/pkg"
	"github.com/qassab/loyalty-core/internal/app/services"
	"github.com/qassab/loyalty-core/pkg/adminkey"
	"github.com/sirupsen/logrus"
)

// AdminAuthMiddleware resolves the staff API key on balance-mutating routes
// into the acting admin id. Authorization policy lives upstream; the core
// only needs to know who the actor is.
type AdminAuthMiddleware struct {
	adminKeyService *services.AdminKeyService
}

func NewAdminAuthMiddleware(adminKeyService *services.AdminKeyService) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		adminKeyService: adminKeyService,
	}
}

func (m *AdminAuthMiddleware) RequireAdmin(c *fiber.Ctx) error {
	raw := c.Get(adminkey.HeaderName)
	if raw == "" {
		return pkg.ErrorResponse(c, errors.NewUnauthorizedError("Missing admin key"))
	}

	key, err := m.adminKeyService.GetByKey(raw)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	go func() {
		if err := m.adminKeyService.TouchLastUsed(key.ID); err != nil {
			logrus.Warnf("admin key usage stamp failed: %v", err)
		}
	}()

	c.Locals("admin_key", key)
	c.Locals("admin_id", key.AdminID)

	return c.Next()
}
