package middleware

import (
	"errors"

	"github.com/esteria/esteria-go/internal/constants"
	"github.com/esteria/esteria-go/internal/service"
	"github.com/gofiber/fiber/v2"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Code:    constants.ErrCodeInternalError,
			Message: constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	status := constants.GetHTTPStatus(err.Code)

	return c.Status(status).JSON(Response{
		Code:    err.Code,
		Message: constants.GetErrorMessage(err.Code),
		Detail:  err.Cause.Error(),
	})
}
