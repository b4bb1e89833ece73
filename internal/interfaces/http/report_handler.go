package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	appreport "github.com/jhoicas/ventas-api/internal/application/report"
	domreport "github.com/jhoicas/ventas-api/internal/domain/report"
	"github.com/jhoicas/ventas-api/internal/infrastructure/metrics"
)

// ReportHandler expone los reportes de ganancia, gastos, saldos y stock.
type ReportHandler struct {
	uc      *appreport.ReportUseCase
	metrics *metrics.Metrics
}

// NewReportHandler construye el handler. m puede ser nil.
func NewReportHandler(uc *appreport.ReportUseCase, m *metrics.Metrics) *ReportHandler {
	return &ReportHandler{uc: uc, metrics: m}
}

// parsePeriod lee y valida el query string común de período.
func parsePeriod(c *fiber.Ctx) (domreport.PeriodRequest, error) {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return domreport.PeriodRequest{}, err
	}
	if err := validate.Struct(q); err != nil {
		return domreport.PeriodRequest{}, err
	}
	return domreport.PeriodRequest{Period: q.Period, StartDate: q.StartDate, EndDate: q.EndDate}, nil
}

// Profit godoc
// @Summary      Ganancia de ventas por período
// @Description  Suma amount_paid - purchase_amount de las líneas con venta dentro de la ventana (extremos inclusivos).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period      query  string  false  "day|week|month|quarter|previousMonth|year|custom (default month)"
// @Param        start_date  query  string  false  "Inicio (YYYY-MM-DD o RFC3339), solo custom"
// @Param        end_date    query  string  false  "Fin (YYYY-MM-DD o RFC3339), solo custom"
// @Success      200  {object}  dto.ProfitReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/profit [get]
func (h *ReportHandler) Profit(c *fiber.Ctx) error {
	req, err := parsePeriod(c)
	if err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Profit(c.Context(), req)
	h.metrics.ObserveReport("profit", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Expenses godoc
// @Summary      Gastos por período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period      query  string  false  "day|week|month|quarter|previousMonth|year|custom (default month)"
// @Param        start_date  query  string  false  "Inicio, solo custom"
// @Param        end_date    query  string  false  "Fin, solo custom"
// @Success      200  {object}  dto.ExpenseReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/expenses [get]
func (h *ReportHandler) Expenses(c *fiber.Ctx) error {
	req, err := parsePeriod(c)
	if err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Expenses(c.Context(), req)
	h.metrics.ObserveReport("expenses", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de día, semana, mes, trimestre y año
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	h.metrics.ObserveReport("summary", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Pending godoc
// @Summary      Líneas con saldo por cobrar
// @Description  Sin period devuelve todos los saldos pendientes. Orden: más recientes primero.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period      query  string  false  "day|week|month|quarter|previousMonth|year|custom"
// @Param        start_date  query  string  false  "Inicio, solo custom"
// @Param        end_date    query  string  false  "Fin, solo custom"
// @Param        limit       query  int     false  "Tamaño de página (1-500, default 50)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.PendingReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/pending [get]
func (h *ReportHandler) Pending(c *fiber.Ctx) error {
	req, err := parsePeriod(c)
	if err != nil {
		return validationError(c, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return validationError(c, err)
	}
	if err := validate.Struct(page); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Pending(c.Context(), req, page)
	h.metrics.ObserveReport("pending", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// OpeningStock godoc
// @Summary      Stock de apertura del día por producto y talla
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock/opening [get]
func (h *ReportHandler) OpeningStock(c *fiber.Ctx) error {
	return h.stock(c, domreport.StockOpening)
}

// ClosingStock godoc
// @Summary      Stock de cierre del día por producto y talla
// @Description  Disponible solo a partir de la hora de cierre configurada; antes responde 425.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockReportDTO
// @Failure      425  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock/closing [get]
func (h *ReportHandler) ClosingStock(c *fiber.Ctx) error {
	return h.stock(c, domreport.StockClosing)
}

func (h *ReportHandler) stock(c *fiber.Ctx, mode domreport.StockMode) error {
	out, err := h.uc.Stock(c.Context(), mode)
	h.metrics.ObserveReport("stock_"+string(mode), err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
