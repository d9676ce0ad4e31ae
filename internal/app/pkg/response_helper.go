package pkg

import (
	"errors"
	"reflect"

	"github.com/gofiber/fiber/v2"
	appError "github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/sirupsen/logrus"
)

func SuccessResponse[T any](c *fiber.Ctx, data T) error {
	return c.JSON(models.WebResponse[T]{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, err error) error {
	var balErr *appError.InsufficientBalanceError
	if errors.As(err, &balErr) {
		return c.Status(balErr.StatusCode).JSON(models.WebResponse[fiber.Map]{
			Success: false,
			Code:    balErr.Code,
			Message: balErr.Message,
			Data: fiber.Map{
				"balance":   balErr.Balance,
				"requested": balErr.Requested,
			},
		})
	}

	var appErr *appError.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(models.WebResponse[any]{
			Success: false,
			Code:    appErr.Code,
			Message: appErr.Message,
		})
	}

	logrus.Errorf("[%s] %s", reflect.TypeOf(err).String(), err)

	return c.Status(fiber.StatusInternalServerError).JSON(models.WebResponse[any]{
		Success: false,
		Code:    appError.CodeInternal,
		Message: "Internal Server Error",
	})
}
