package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/money"
	"github.com/jhoicas/ventas-api/internal/domain/report"
)

// Escenario 1: una línea pagada completa dentro de la ventana.
func TestAggregate_UnaLinea(t *testing.T) {
	lines := []entity.SaleLineView{line("l1", at(2026, time.May, 14, 10, 0), 10000, 10000, 6000)}
	w, err := report.ResolvePeriod(report.TokenDay, at(2026, time.May, 14, 12, 0))
	require.NoError(t, err)

	agg := report.Aggregate(lines, w)

	assert.Equal(t, money.FromMajor(4000), agg.TotalProfit)
	assert.Equal(t, money.FromMajor(10000), agg.TotalAmount)
	assert.Equal(t, money.FromMajor(10000), agg.TotalPaid)
	assert.Equal(t, 1, agg.LineCount)
	require.Len(t, agg.Lines, 1)
	assert.Equal(t, "l1", agg.Lines[0].ID)
}

func TestAggregate_GananciaSobreLoPagado(t *testing.T) {
	// pago parcial: la ganancia usa AmountPaid, no Amount
	lines := []entity.SaleLineView{line("l1", at(2026, time.May, 14, 10, 0), 10000, 5000, 6000)}
	w, _ := report.ResolvePeriod(report.TokenDay, at(2026, time.May, 14, 12, 0))

	agg := report.Aggregate(lines, w)
	assert.Equal(t, money.FromMajor(-1000), agg.TotalProfit)
}

func TestAggregate_FiltraPorVentanaInclusiva(t *testing.T) {
	w, err := report.CustomPeriod(at(2026, time.May, 1, 0, 0), at(2026, time.May, 31, 0, 0))
	require.NoError(t, err)

	lines := []entity.SaleLineView{
		line("antes", at(2026, time.April, 30, 23, 59), 100, 100, 10),
		line("inicio", at(2026, time.May, 1, 0, 0), 200, 200, 20),
		line("fin", at(2026, time.May, 31, 0, 0), 300, 300, 30),
		line("despues", at(2026, time.May, 31, 0, 1), 400, 400, 40),
	}

	agg := report.Aggregate(lines, w)
	assert.Equal(t, 2, agg.LineCount)
	assert.Equal(t, money.FromMajor(500), agg.TotalAmount)
	assert.Equal(t, "inicio", agg.Lines[0].ID)
	assert.Equal(t, "fin", agg.Lines[1].ID)
}

func TestAggregate_IncluyeDevoluciones(t *testing.T) {
	l := line("dev", at(2026, time.May, 14, 10, 0), 1000, 1000, 500)
	l.SaleStatus = entity.SaleStatusReturned
	w, _ := report.ResolvePeriod(report.TokenDay, at(2026, time.May, 14, 12, 0))

	agg := report.Aggregate([]entity.SaleLineView{l}, w)
	assert.Equal(t, 1, agg.LineCount)
	assert.Equal(t, money.FromMajor(500), agg.TotalProfit)
}

func TestAggregate_Vacio(t *testing.T) {
	w, _ := report.ResolvePeriod(report.TokenDay, at(2026, time.May, 14, 12, 0))

	agg := report.Aggregate(nil, w)
	assert.Equal(t, report.ProfitAggregate{}, agg)

	agg = report.Aggregate([]entity.SaleLineView{line("x", at(2025, time.May, 14, 10, 0), 1, 1, 1)}, w)
	assert.Zero(t, agg.TotalProfit)
	assert.Zero(t, agg.TotalAmount)
	assert.Zero(t, agg.TotalPaid)
	assert.Zero(t, agg.LineCount)
}

func TestAggregate_Idempotente(t *testing.T) {
	lines := []entity.SaleLineView{
		line("a", at(2026, time.May, 3, 10, 0), 1500, 1200, 700),
		line("b", at(2026, time.May, 9, 10, 0), 800, 800, 900),
	}
	snapshot := append([]entity.SaleLineView(nil), lines...)
	w, _ := report.ResolvePeriod(report.TokenMonth, at(2026, time.May, 14, 12, 0))

	first := report.Aggregate(lines, w)
	second := report.Aggregate(lines, w)
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, lines, "Aggregate no debe mutar la entrada")
}

func TestAggregate_UnionDeVentanasDisjuntas(t *testing.T) {
	lines := []entity.SaleLineView{
		line("a", at(2026, time.April, 3, 10, 0), 1500, 1200, 700),
		line("b", at(2026, time.April, 28, 10, 0), 800, 800, 900),
		line("c", at(2026, time.May, 2, 10, 0), 2500, 2000, 1000),
		line("d", at(2026, time.June, 2, 10, 0), 9999, 9999, 1),
	}
	april, _ := report.ResolvePeriod(report.TokenMonth, at(2026, time.April, 10, 0, 0))
	may, _ := report.ResolvePeriod(report.TokenMonth, at(2026, time.May, 10, 0, 0))
	merged, err := report.CustomPeriod(april.Start, may.End)
	require.NoError(t, err)

	combined := report.Aggregate(lines, april).Merge(report.Aggregate(lines, may))
	whole := report.Aggregate(lines, merged)

	assert.Equal(t, whole.TotalProfit, combined.TotalProfit)
	assert.Equal(t, whole.TotalAmount, combined.TotalAmount)
	assert.Equal(t, whole.TotalPaid, combined.TotalPaid)
	assert.Equal(t, whole.LineCount, combined.LineCount)
	assert.Equal(t, whole.Lines, combined.Lines)
}

func TestSummarizeExpenses(t *testing.T) {
	expenses := []entity.Expense{
		{ID: "e1", SpentOn: "Diesel", Amount: money.FromMajor(5000), Date: at(2026, time.May, 14, 9, 0)},
		{ID: "e2", SpentOn: "Renta", Amount: money.FromMajor(50000), Date: at(2026, time.April, 30, 9, 0)},
		{ID: "e3", SpentOn: "Agua", Amount: money.New(250, 50), Date: at(2026, time.May, 20, 9, 0)},
	}
	w, _ := report.ResolvePeriod(report.TokenMonth, at(2026, time.May, 14, 12, 0))

	s := report.SummarizeExpenses(expenses, w)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, money.New(5250, 50), s.Total)
	assert.Equal(t, "e1", s.Items[0].ID)
}

func TestBuildPeriodReport_GananciaNeta(t *testing.T) {
	lines := []entity.SaleLineView{line("l1", at(2026, time.May, 14, 10, 0), 10000, 10000, 6000)}
	expenses := []entity.Expense{{ID: "e1", Amount: money.FromMajor(1500), Date: at(2026, time.May, 14, 9, 0)}}
	w, _ := report.ResolvePeriod(report.TokenDay, at(2026, time.May, 14, 12, 0))

	r := report.BuildPeriodReport(lines, expenses, w)
	assert.Equal(t, money.FromMajor(4000), r.Profit.TotalProfit)
	assert.Equal(t, money.FromMajor(1500), r.Expenses.Total)
	assert.Equal(t, money.FromMajor(2500), r.NetProfit)
	assert.Equal(t, w, r.Window)
}
