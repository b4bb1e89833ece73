package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/billing"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/document"
	"github.com/jhoicas/ventas-api/internal/infrastructure/metrics"
)

// DocumentHandler sirve facturas y recibos de una venta.
type DocumentHandler struct {
	uc      *billing.DocumentUseCase
	metrics *metrics.Metrics
}

// NewDocumentHandler construye el handler. m puede ser nil.
func NewDocumentHandler(uc *billing.DocumentUseCase, m *metrics.Metrics) *DocumentHandler {
	return &DocumentHandler{uc: uc, metrics: m}
}

// parseKind lee ?kind=; vacío es factura.
func parseKind(c *fiber.Ctx) (string, error) {
	var q dto.DocumentQuery
	if err := c.QueryParser(&q); err != nil {
		return "", err
	}
	if err := validate.Struct(q); err != nil {
		return "", err
	}
	kind, err := document.ParseKind(q.Kind)
	if err != nil {
		return "", err
	}
	return string(kind), nil
}

// Get godoc
// @Summary      Factura o recibo de una venta (JSON)
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID de la venta"
// @Param        kind  query  string  false  "invoice|receipt (default invoice)"
// @Success      200  {object}  dto.DocumentDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/document [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Document(c.Context(), c.Params("id"), kind)
	if err != nil {
		return writeError(c, err)
	}
	h.metrics.ObserveDocument(out.Kind, "json")
	return c.JSON(out)
}

// PDF godoc
// @Summary      Factura o recibo de una venta (PDF)
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true   "ID de la venta"
// @Param        kind  query  string  false  "invoice|receipt (default invoice)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/document/pdf [get]
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return validationError(c, err)
	}
	pdf, filename, err := h.uc.PDF(c.Context(), c.Params("id"), kind)
	if err != nil {
		return writeError(c, err)
	}
	h.metrics.ObserveDocument(kind, "pdf")
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
