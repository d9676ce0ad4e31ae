package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qassab/loyalty-core/internal/app/middlewares"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/qassab/loyalty-core/internal/app/pkg"
	"github.com/qassab/loyalty-core/internal/app/services"
)

type CustomerHandler struct {
	customerService *services.CustomerService
	adminAuth       *middlewares.AdminAuthMiddleware
}

func NewCustomerHandler(customerService *services.CustomerService, adminAuth *middlewares.AdminAuthMiddleware) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		adminAuth:       adminAuth,
	}
}

func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerGroup := router.Group("/customers")

	customerGroup.Post("/", h.adminAuth.RequireAdmin, h.CreateCustomer)
	customerGroup.Get("/:id", h.GetCustomer)
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req models.CustomerCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	customer, err := h.customerService.CreateCustomer(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, customer)
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.customerService.GetCustomer(c.Params("id"))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, customer)
}
