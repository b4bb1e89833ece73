package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
)

// SalesHandler maneja la enmienda de líneas de venta.
type SalesHandler struct {
	amend *sales.AmendLineUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(amend *sales.AmendLineUseCase) *SalesHandler {
	return &SalesHandler{amend: amend}
}

// AmendLine godoc
// @Summary      Enmendar una línea de venta
// @Description  Cambia serial, monto, pagado o descripción. Un cambio de serial devuelve el anterior al stock y retira el nuevo.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string                 true  "ID de la venta"
// @Param        lineId  path  string                 true  "ID de la línea"
// @Param        body    body  dto.AmendLineRequest   true  "Campos a modificar"
// @Success      200  {object}  dto.AmendLineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/lines/{lineId} [put]
func (h *SalesHandler) AmendLine(c *fiber.Ctx) error {
	saleID, lineID := c.Params("id"), c.Params("lineId")
	if saleID == "" || lineID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id y lineId requeridos"})
	}
	var in dto.AmendLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.amend.Execute(c.Context(), saleID, lineID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
