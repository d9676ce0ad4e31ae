package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qassab/loyalty-core/internal/app/pkg"
	"github.com/qassab/loyalty-core/internal/app/services"
)

type VoucherHandler struct {
	voucherService *services.VoucherService
}

func NewVoucherHandler(voucherService *services.VoucherService) *VoucherHandler {
	return &VoucherHandler{
		voucherService: voucherService,
	}
}

func (h *VoucherHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/vouchers/:code", h.GetVoucherByCode)
	router.Get("/customers/:id/vouchers", h.GetCustomerVouchers)
}

func (h *VoucherHandler) GetVoucherByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	voucher, err := h.voucherService.GetVoucherByCode(code)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, voucher)
}

func (h *VoucherHandler) GetCustomerVouchers(c *fiber.Ctx) error {
	customerId := c.Params("id")

	vouchers, err := h.voucherService.GetVouchersByCustomer(customerId, parsePagination(c))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, vouchers)
}
