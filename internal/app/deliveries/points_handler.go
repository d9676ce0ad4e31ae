package deliveries

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/middlewares"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/qassab/loyalty-core/internal/app/pkg"
	"github.com/qassab/loyalty-core/internal/app/services"
	"github.com/qassab/loyalty-core/internal/infrastructures"
)

// PointsHandler exposes the loyalty core over HTTP: redeem, adjust, balance
// and history per customer.
type PointsHandler struct {
	adjustmentService *services.AdjustmentService
	redemptionService *services.RedemptionService
	balanceService    *services.BalanceService
	ledgerService     *services.LedgerService
	customerService   *services.CustomerService
	validator         *infrastructures.Validator
	adminAuth         *middlewares.AdminAuthMiddleware
}

func NewPointsHandler(
	adjustmentService *services.AdjustmentService,
	redemptionService *services.RedemptionService,
	balanceService *services.BalanceService,
	ledgerService *services.LedgerService,
	customerService *services.CustomerService,
	validator *infrastructures.Validator,
	adminAuth *middlewares.AdminAuthMiddleware,
) *PointsHandler {
	return &PointsHandler{
		adjustmentService: adjustmentService,
		redemptionService: redemptionService,
		balanceService:    balanceService,
		ledgerService:     ledgerService,
		customerService:   customerService,
		validator:         validator,
		adminAuth:         adminAuth,
	}
}

func (h *PointsHandler) RegisterRoutes(router fiber.Router) {
	pointsGroup := router.Group("/customers/:id/points")

	// Balance mutations are staff-only
	pointsGroup.Post("/redeem", h.adminAuth.RequireAdmin, h.Redeem)
	pointsGroup.Post("/adjust", h.adminAuth.RequireAdmin, h.Adjust)

	pointsGroup.Get("/balance", h.GetBalance)
	pointsGroup.Get("/history", h.GetHistory)
}

func (h *PointsHandler) Redeem(c *fiber.Ctx) error {
	customerId := c.Params("id")
	adminID := c.Locals("admin_id").(uuid.UUID)

	var req models.RedeemRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	if err := h.validator.Validate(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	voucher, err := h.redemptionService.Redeem(customerId, req.Points, req.Description, &adminID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, models.RedeemResponse{
		VoucherCode: voucher.Code,
		Value:       voucher.Value,
		Currency:    voucher.Currency,
		ExpiresAt:   voucher.ExpiresAt,
	})
}

func (h *PointsHandler) Adjust(c *fiber.Ctx) error {
	customerId := c.Params("id")
	adminID := c.Locals("admin_id").(uuid.UUID)

	var req models.AdjustRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	if err := h.validator.Validate(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	entry, newBalance, err := h.adjustmentService.Adjust(customerId, req.Delta, req.Description, &adminID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, models.AdjustResponse{
		EntryID:    entry.ID,
		NewBalance: newBalance,
	})
}

func (h *PointsHandler) GetBalance(c *fiber.Ctx) error {
	customerId := c.Params("id")

	balance, err := h.balanceService.GetBalance(customerId)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, balance)
}

func (h *PointsHandler) GetHistory(c *fiber.Ctx) error {
	customer, err := h.customerService.GetCustomer(c.Params("id"))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	pagination := parsePagination(c)

	entries, err := h.ledgerService.GetEntriesByCustomer(customer.ID, pagination)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, entries)
}

func parsePagination(c *fiber.Ctx) *models.PaginationRequest {
	var pagination models.PaginationRequest

	if page, err := strconv.Atoi(c.Query("page", "1")); err == nil && page > 0 {
		pagination.Page = page
	} else {
		pagination.Page = 1
	}

	if limit, err := strconv.Atoi(c.Query("limit", "10")); err == nil && limit > 0 {
		pagination.Limit = limit
	} else {
		pagination.Limit = 10
	}

	return &pagination
}
