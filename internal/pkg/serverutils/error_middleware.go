package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mrsameer/rag-with-gemini/internal/pkg/apperror"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/logger"
)

// statusFor maps error kinds to HTTP statuses. Remote outages and failed
// generations surface as bad gateway; a poll deadline as gateway timeout.
func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindInvalidArgument:
		return fiber.StatusBadRequest
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindTimeout:
		return fiber.StatusGatewayTimeout
	case apperror.KindRemoteUnavailable, apperror.KindIngestFailed, apperror.KindGenerationFailed:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// NewErrorHandler returns the fiber error handler that translates service
// errors into the uniform error envelope.
func NewErrorHandler(sysLogger logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			status := statusFor(appErr.Kind)
			if status >= fiber.StatusInternalServerError {
				sysLogger.Error("Server", "Request failed", map[string]interface{}{
					"path":  ctx.Path(),
					"kind":  string(appErr.Kind),
					"error": appErr.Error(),
				})
			}
			return ctx.Status(status).JSON(ErrorResponse(status, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		sysLogger.Error("Server", "Unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
