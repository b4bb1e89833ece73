package report

import (
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/money"
)

// ProfitAggregate totales de ventas de una ventana. Se recalcula en cada consulta.
type ProfitAggregate struct {
	TotalProfit money.Amount // Σ (AmountPaid - PurchaseAmount)
	TotalAmount money.Amount // Σ Amount
	TotalPaid   money.Amount // Σ AmountPaid
	LineCount   int
	Lines       []entity.SaleLineView // en el orden de entrada
}

// Aggregate filtra las líneas cuya venta cae en la ventana y acumula los totales.
//
// La ganancia de una línea es lo pagado menos el costo del producto: solo se
// realiza ganancia sobre la porción pagada. Las ventas en estado "returned" se
// incluyen igual que las demás. Sin líneas en la ventana devuelve el agregado cero.
func Aggregate(lines []entity.SaleLineView, w PeriodWindow) ProfitAggregate {
	var agg ProfitAggregate
	for _, l := range lines {
		if !w.Contains(l.SaleDate) {
			continue
		}
		agg.TotalProfit += l.Profit()
		agg.TotalAmount += l.Amount
		agg.TotalPaid += l.AmountPaid
		agg.LineCount++
		agg.Lines = append(agg.Lines, l)
	}
	return agg
}

// Merge combina dos agregados de ventanas disjuntas. Las líneas de a van primero.
func (a ProfitAggregate) Merge(b ProfitAggregate) ProfitAggregate {
	lines := make([]entity.SaleLineView, 0, len(a.Lines)+len(b.Lines))
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	if len(lines) == 0 {
		lines = nil
	}
	return ProfitAggregate{
		TotalProfit: a.TotalProfit + b.TotalProfit,
		TotalAmount: a.TotalAmount + b.TotalAmount,
		TotalPaid:   a.TotalPaid + b.TotalPaid,
		LineCount:   a.LineCount + b.LineCount,
		Lines:       lines,
	}
}

// ── Gastos ────────────────────────────────────────────────────────────────────

// ExpenseSummary totales de gastos de una ventana.
type ExpenseSummary struct {
	Total money.Amount
	Count int
	Items []entity.Expense // en el orden de entrada
}

// SummarizeExpenses filtra los gastos con fecha en la ventana y los suma.
func SummarizeExpenses(expenses []entity.Expense, w PeriodWindow) ExpenseSummary {
	var s ExpenseSummary
	for _, e := range expenses {
		if !w.Contains(e.Date) {
			continue
		}
		s.Total += e.Amount
		s.Count++
		s.Items = append(s.Items, e)
	}
	return s
}

// PeriodReport resumen de un período: ganancia de ventas, gastos y ganancia neta.
type PeriodReport struct {
	Window    PeriodWindow
	Profit    ProfitAggregate
	Expenses  ExpenseSummary
	NetProfit money.Amount // Profit.TotalProfit - Expenses.Total
}

// BuildPeriodReport arma el resumen de ganancia y gastos de la ventana.
func BuildPeriodReport(lines []entity.SaleLineView, expenses []entity.Expense, w PeriodWindow) PeriodReport {
	profit := Aggregate(lines, w)
	exp := SummarizeExpenses(expenses, w)
	return PeriodReport{
		Window:    w,
		Profit:    profit,
		Expenses:  exp,
		NetProfit: profit.TotalProfit - exp.Total,
	}
}
