package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"frontdesk_backend/internals/apperr"
)

// FromError renders err with the standard envelope. Classified errors keep
// their message; anything else becomes a generic 500 and is logged.
func FromError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		zap.L().Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}

	switch ae.Kind {
	case apperr.KindValidation:
		return JsonValidationError(c, ae.Fields)
	case apperr.KindNotFound:
		return JsonError(c, fiber.StatusNotFound, ae.Message)
	case apperr.KindPreconditionFailed:
		return JsonErrorCode(c, fiber.StatusBadRequest, "PRECONDITION_FAILED", ae.Message)
	case apperr.KindConflict:
		return JsonError(c, fiber.StatusConflict, ae.Message)
	case apperr.KindUnauthorized:
		return JsonError(c, fiber.StatusUnauthorized, ae.Message)
	case apperr.KindForbidden:
		return JsonError(c, fiber.StatusForbidden, ae.Message)
	default:
		zap.L().Error("internal error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// ErrorHandler is the fiber.Config ErrorHandler: errors returned by handlers
// and middlewares all leave with the same envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromError(c, err)
}
