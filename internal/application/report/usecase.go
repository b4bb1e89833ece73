// Package report contiene los casos de uso de reportes: ganancia, gastos,
// saldos pendientes, resumen por períodos y stock de apertura/cierre.
//
// Los casos de uso cargan los registros desde los repositorios, resuelven la
// ventana en la zona horaria configurada y delegan el cálculo en el núcleo puro
// (internal/domain/report). Nada se cachea: cada consulta recalcula.
package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	domreport "github.com/jhoicas/ventas-api/internal/domain/report"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/currency"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// summaryTokens períodos del resumen, en el orden de la respuesta.
var summaryTokens = []domreport.Token{
	domreport.TokenDay,
	domreport.TokenWeek,
	domreport.TokenMonth,
	domreport.TokenQuarter,
	domreport.TokenYear,
}

// ReportUseCase genera los reportes de ventas y stock.
type ReportUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	expenseRepo repository.ExpenseRepository
	resolver    *domreport.Resolver
	gate        domreport.ClosingGate
	currency    currency.Currency
	log         *logger.Logger
}

// Options parámetros de ReportUseCase que vienen de la configuración.
type Options struct {
	Resolver *domreport.Resolver    // nil: reloj real en time.Local
	Gate     *domreport.ClosingGate // nil: DefaultClosingGate (18:00)
	Currency currency.Currency      // vacío: NGN
	Logger   *logger.Logger         // nil: descarta
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	expenseRepo repository.ExpenseRepository,
	opts Options,
) *ReportUseCase {
	if opts.Resolver == nil {
		opts.Resolver = domreport.NewResolver(nil)
	}
	gate := domreport.DefaultClosingGate
	if opts.Gate != nil {
		gate = *opts.Gate
	}
	if opts.Currency.Code == "" {
		opts.Currency = currency.NGN
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &ReportUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		expenseRepo: expenseRepo,
		resolver:    opts.Resolver,
		gate:        gate,
		currency:    opts.Currency,
		log:         opts.Logger.Component("report"),
	}
}

// ── Ganancia y gastos ─────────────────────────────────────────────────────────

// Profit agrega las líneas vendidas en el período pedido.
func (uc *ReportUseCase) Profit(ctx context.Context, req domreport.PeriodRequest) (*dto.ProfitReportDTO, error) {
	w, err := uc.resolver.Resolve(req)
	if err != nil {
		return nil, err
	}
	lines, err := uc.saleRepo.ListLineViews(ctx, &w.Start, &w.End)
	if err != nil {
		return nil, fmt.Errorf("report: profit: listar líneas: %w", err)
	}

	agg := domreport.Aggregate(lines, w)
	uc.log.Debug().
		Time("start", w.Start).Time("end", w.End).
		Int("lines", agg.LineCount).
		Msg("reporte de ganancia")

	out := &dto.ProfitReportDTO{
		Window:          windowDTO(periodName(req), w),
		Currency:        uc.currency.Code,
		TotalProfit:     agg.TotalProfit.Decimal(),
		TotalAmount:     agg.TotalAmount.Decimal(),
		TotalPaid:       agg.TotalPaid.Decimal(),
		TotalProfitText: currency.Format(agg.TotalProfit, uc.currency),
		LineCount:       agg.LineCount,
		Lines:           make([]dto.SaleLineDTO, 0, len(agg.Lines)),
	}
	for _, l := range agg.Lines {
		out.Lines = append(out.Lines, saleLineDTO(l))
	}
	return out, nil
}

// Expenses resume los gastos del período pedido.
func (uc *ReportUseCase) Expenses(ctx context.Context, req domreport.PeriodRequest) (*dto.ExpenseReportDTO, error) {
	w, err := uc.resolver.Resolve(req)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.ListBetween(ctx, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("report: expenses: listar gastos: %w", err)
	}

	sum := domreport.SummarizeExpenses(expenses, w)
	uc.log.Debug().
		Time("start", w.Start).Time("end", w.End).
		Int("expenses", sum.Count).
		Msg("reporte de gastos")

	out := &dto.ExpenseReportDTO{
		Window:    windowDTO(periodName(req), w),
		Currency:  uc.currency.Code,
		Total:     sum.Total.Decimal(),
		TotalText: currency.Format(sum.Total, uc.currency),
		Count:     sum.Count,
		Items:     make([]dto.ExpenseDTO, 0, len(sum.Items)),
	}
	for _, e := range sum.Items {
		out.Items = append(out.Items, dto.ExpenseDTO{
			ID:      e.ID,
			SpentOn: e.SpentOn,
			Amount:  e.Amount.Decimal(),
			Date:    e.Date,
			AddedBy: e.AddedBy,
		})
	}
	return out, nil
}

// Summary calcula ganancia, gastos y ganancia neta de día, semana, mes,
// trimestre y año en paralelo. Todas las ventanas se resuelven con el mismo
// "ahora" para que sean coherentes entre sí.
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.SummaryDTO, error) {
	now := uc.resolver.Current()

	windows := make([]domreport.PeriodWindow, len(summaryTokens))
	for i, tok := range summaryTokens {
		w, err := domreport.ResolvePeriod(tok, now)
		if err != nil {
			return nil, err
		}
		windows[i] = w
	}

	results := make([]domreport.PeriodReport, len(summaryTokens))
	g, gctx := errgroup.WithContext(ctx)
	for i := range summaryTokens {
		g.Go(func() error {
			w := windows[i]
			lines, err := uc.saleRepo.ListLineViews(gctx, &w.Start, &w.End)
			if err != nil {
				return fmt.Errorf("report: summary %s: listar líneas: %w", summaryTokens[i], err)
			}
			expenses, err := uc.expenseRepo.ListBetween(gctx, w.Start, w.End)
			if err != nil {
				return fmt.Errorf("report: summary %s: listar gastos: %w", summaryTokens[i], err)
			}
			results[i] = domreport.BuildPeriodReport(lines, expenses, w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.SummaryDTO{
		Currency:    uc.currency.Code,
		GeneratedAt: now,
		Periods:     make([]dto.PeriodSummaryDTO, 0, len(results)),
	}
	for i, r := range results {
		out.Periods = append(out.Periods, dto.PeriodSummaryDTO{
			Window:        windowDTO(string(summaryTokens[i]), r.Window),
			TotalProfit:   r.Profit.TotalProfit.Decimal(),
			TotalExpenses: r.Expenses.Total.Decimal(),
			NetProfit:     r.NetProfit.Decimal(),
			NetProfitText: currency.Format(r.NetProfit, uc.currency),
			LineCount:     r.Profit.LineCount,
			ExpenseCount:  r.Expenses.Count,
		})
	}
	uc.log.Debug().Time("now", now).Msg("resumen por períodos")
	return out, nil
}

// ── Saldos pendientes ─────────────────────────────────────────────────────────

// Pending lista las líneas con saldo por cobrar, más recientes primero.
// Sin period en la consulta se revisan todas las ventas. Count y TotalPending
// cubren todas las líneas pendientes; Lines trae solo la página pedida.
func (uc *ReportUseCase) Pending(
	ctx context.Context,
	req domreport.PeriodRequest,
	page dto.PageRequest,
) (*dto.PendingReportDTO, error) {
	var (
		from, to *time.Time
		window   *dto.WindowDTO
	)
	if req.Period != "" {
		w, err := uc.resolver.Resolve(req)
		if err != nil {
			return nil, err
		}
		from, to = &w.Start, &w.End
		wd := windowDTO(req.Period, w)
		window = &wd
	}

	lines, err := uc.saleRepo.ListLineViews(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("report: pending: listar líneas: %w", err)
	}

	pending := domreport.PendingFor(domreport.SortByDateDesc(lines))
	total := domreport.TotalPending(pending)
	uc.log.Debug().Int("lines", len(lines)).Int("pending", len(pending)).Msg("saldos pendientes")

	lo, hi := page.Bounds(len(pending))
	out := &dto.PendingReportDTO{
		Window:           window,
		Currency:         uc.currency.Code,
		TotalPending:     total.Decimal(),
		TotalPendingText: currency.Format(total, uc.currency),
		Count:            len(pending),
		Page:             dto.PageResponse{Limit: page.Size(), Offset: lo, Total: len(pending)},
		Lines:            make([]dto.PendingLineDTO, 0, hi-lo),
	}
	for _, p := range pending[lo:hi] {
		out.Lines = append(out.Lines, dto.PendingLineDTO{
			SaleLineDTO: saleLineDTO(p.Line),
			Pending:     p.Pending.Decimal(),
			PendingText: currency.Format(p.Pending, uc.currency),
		})
	}
	return out, nil
}

// ── Stock ─────────────────────────────────────────────────────────────────────

// Stock arma el snapshot de apertura o de cierre relativo a ahora.
// El cierre antes de la compuerta devuelve *domain.UnavailableYetError sin consultar la DB.
func (uc *ReportUseCase) Stock(ctx context.Context, mode domreport.StockMode) (*dto.StockReportDTO, error) {
	now := uc.resolver.Current()
	if mode == domreport.StockClosing {
		if err := uc.gate.Check(now); err != nil {
			return nil, err
		}
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: stock: listar productos: %w", err)
	}
	sold, err := uc.saleRepo.ListLineViews(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("report: stock: listar líneas: %w", err)
	}

	snap, err := domreport.BuildSnapshot(products, sold, now, mode, uc.gate)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("mode", string(mode)).Int("groups", len(snap)).Msg("snapshot de stock")

	out := &dto.StockReportDTO{
		Mode: string(mode),
		AsOf: now,
		Rows: make([]dto.StockRowDTO, 0, len(snap)),
	}
	if len(snap) > 0 {
		out.AsOf = snap[0].AsOf
	} else if mode == domreport.StockOpening {
		y, m, d := now.Date()
		out.AsOf = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	}
	for _, s := range snap {
		out.Rows = append(out.Rows, dto.StockRowDTO{
			ProductName:        s.ProductName,
			Size:               s.Size,
			TotalSerialNumbers: s.TotalSerialNumbers,
		})
		out.TotalSerialNumbers += s.TotalSerialNumbers
	}
	return out, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func periodName(req domreport.PeriodRequest) string {
	if req.Period == "" {
		return string(domreport.TokenMonth)
	}
	return req.Period
}

func windowDTO(period string, w domreport.PeriodWindow) dto.WindowDTO {
	return dto.WindowDTO{Period: period, Start: w.Start, End: w.End}
}

func saleLineDTO(l entity.SaleLineView) dto.SaleLineDTO {
	return dto.SaleLineDTO{
		ID:             l.ID,
		SaleID:         l.SaleID,
		InvoiceNumber:  l.InvoiceNumber,
		SaleDate:       l.SaleDate,
		SaleStatus:     string(l.SaleStatus),
		ProductID:      l.ProductID,
		ProductName:    l.ProductName,
		SerialNumber:   l.SerialNumber,
		Description:    l.Description,
		Amount:         l.Amount.Decimal(),
		AmountPaid:     l.AmountPaid.Decimal(),
		PurchaseAmount: l.PurchaseAmount.Decimal(),
		Profit:         l.Profit().Decimal(),
	}
}
