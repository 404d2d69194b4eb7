package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/handwerkpro/handwerkpro-api/internal/application/dto"
	"github.com/handwerkpro/handwerkpro-api/internal/domain"
	"github.com/handwerkpro/handwerkpro-api/pkg/logger"
	"github.com/handwerkpro/handwerkpro-api/pkg/validation"
)

// NewErrorHandler returns the single error mapping stage of the API.
// Handlers never write error responses themselves; they return the error and
// this function owns the client-visible contract:
//
//	validation failure  -> 400 {type:"validation", errors: per-field map}
//	domain error        -> mapped status, {type:"error"}
//	anything else       -> 500 {type:"internal"}, detail only in the log
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Type:    "validation",
				Message: verr.Message,
				Errors:  verr.Fields,
			})
		}

		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Type:    "error",
				Message: err.Error(),
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Type:    "error",
				Message: err.Error(),
			})
		case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Type:    "error",
				Message: err.Error(),
			})
		}

		// Fiber's own errors (404 route misses, body limits, ...) keep their
		// status but share the envelope.
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{
				Type:    "error",
				Message: fe.Message,
			})
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Type:    "internal",
			Message: "Internal Server Error",
		})
	}
}
