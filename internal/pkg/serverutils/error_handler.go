package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors returned by downstream handlers into
// the API's JSON error bodies. Status mapping: AppError carries its own code;
// everything else is an upstream/store failure and maps to 500 with the raw
// error text attached for diagnostics.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			body := fiber.Map{"error": appErr.Message}
			if appErr.Details != "" {
				body["details"] = appErr.Details
			}
			return ctx.Status(appErr.Code).JSON(body)
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"details": err.Error(),
		})
	}
}
