package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/ventas-api/internal/application/billing"
	appreport "github.com/jhoicas/ventas-api/internal/application/report"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportUC    *appreport.ReportUseCase
	DocumentUC  *billing.DocumentUseCase
	AmendLineUC *sales.AmendLineUseCase
	Metrics     *metrics.Metrics // opcional: sin métricas no se expone /metrics
	JWTSecret   string
	JWTIssuer   string
}

// Router registra las rutas de la API. Todas las de /api requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	managers := RequireRole(entity.RoleAdmin, entity.RoleManager)
	everyone := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleSales)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC, deps.Metrics)
	reports := api.Group("/reports")
	reports.Get("/profit", managers, reportHandler.Profit)
	reports.Get("/expenses", managers, reportHandler.Expenses)
	reports.Get("/summary", managers, reportHandler.Summary)
	reports.Get("/pending", managers, reportHandler.Pending)
	reports.Get("/stock/opening", everyone, reportHandler.OpeningStock)
	reports.Get("/stock/closing", everyone, reportHandler.ClosingStock)

	// Sales
	salesGroup := api.Group("/sales")
	docHandler := NewDocumentHandler(deps.DocumentUC, deps.Metrics)
	salesGroup.Get("/:id/document", everyone, docHandler.Get)
	salesGroup.Get("/:id/document/pdf", everyone, docHandler.PDF)
	salesHandler := NewSalesHandler(deps.AmendLineUC)
	salesGroup.Put("/:id/lines/:lineId", managers, salesHandler.AmendLine)
}
