package http

import (
	"errors"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// StatusTooEarly 425: el stock de cierre aún no está disponible.
const StatusTooEarly = fiber.StatusTooEarly

// writeError traduce los errores de dominio a HTTP con dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	msg := err.Error()

	var (
		rangeErr  *domain.InvalidRangeError
		yetErr    *domain.UnavailableYetError
		amountErr *domain.InvalidAmountError
	)
	switch {
	case errors.As(err, &rangeErr):
		status, code = fiber.StatusBadRequest, "INVALID_RANGE"
	case errors.As(err, &yetErr):
		status, code = StatusTooEarly, "UNAVAILABLE_YET"
		c.Set("Retry-After", yetErr.AvailableFrom.UTC().Format(nethttp.TimeFormat))
	case errors.As(err, &amountErr):
		status, code = fiber.StatusUnprocessableEntity, "INVALID_AMOUNT"
	case errors.Is(err, domain.ErrInvalidRange):
		status, code = fiber.StatusBadRequest, "INVALID_RANGE"
	case errors.Is(err, domain.ErrUnavailableYet):
		status, code = StatusTooEarly, "UNAVAILABLE_YET"
	case errors.Is(err, domain.ErrInvalidAmount):
		status, code = fiber.StatusUnprocessableEntity, "INVALID_AMOUNT"
	case errors.Is(err, domain.ErrSerialUnavailable):
		status, code = fiber.StatusUnprocessableEntity, "SERIAL_UNAVAILABLE"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	default:
		// no filtrar detalles de infraestructura
		msg = "error interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
