package serverutils

import (
	"feedback-forms-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts unhandled handler errors into a plain 500
// and logs them, so a failing provider call never drops the connection.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if e, ok := err.(*fiber.Error); ok {
			return ctx.Status(e.Code).SendString(e.Message)
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
}
