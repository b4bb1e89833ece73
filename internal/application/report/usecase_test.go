package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	appreport "github.com/jhoicas/ventas-api/internal/application/report"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/money"
	domreport "github.com/jhoicas/ventas-api/internal/domain/report"
	"github.com/jhoicas/ventas-api/internal/infrastructure/memory"
)

var lagos = time.FixedZone("WAT", 1*60*60)

func at(d, h int) time.Time { return time.Date(2026, time.May, d, h, 0, 0, 0, lagos) }

// seed: dos ventas hoy (14 de mayo), una el 2 de mayo y una en abril.
func seed() *memory.Store {
	st := memory.NewStore()
	st.AddProduct(entity.Product{ID: "p1", ProductName: "Reloj", Size: "U", PurchaseAmount: money.FromMajor(6000),
		SerialNumbers: []string{"R3", "R4"}, CreatedAt: at(1, 9)})
	st.AddProduct(entity.Product{ID: "p2", ProductName: "Camisa", Size: "M", PurchaseAmount: money.FromMajor(1000),
		SerialNumbers: []string{"C2"}, CreatedAt: at(1, 9)})

	st.AddSale(entity.Sale{ID: "s1", InvoiceNumber: "INV-1", Date: at(14, 10), Status: entity.SaleStatusCompleted},
		entity.SaleLine{ID: "l1", ProductID: "p1", SerialNumber: "R1", Amount: money.FromMajor(10000), AmountPaid: money.FromMajor(10000)})
	st.AddSale(entity.Sale{ID: "s2", InvoiceNumber: "INV-2", Date: at(14, 12), Status: entity.SaleStatusPending},
		entity.SaleLine{ID: "l2", ProductID: "p2", SerialNumber: "C1", Amount: money.FromMajor(5000), AmountPaid: money.FromMajor(3000)})
	st.AddSale(entity.Sale{ID: "s3", InvoiceNumber: "INV-3", Date: at(2, 10), Status: entity.SaleStatusCompleted},
		entity.SaleLine{ID: "l3", ProductID: "p1", SerialNumber: "R2", Amount: money.FromMajor(8000), AmountPaid: money.FromMajor(7000)})
	st.AddSale(entity.Sale{ID: "s4", InvoiceNumber: "INV-4", Date: time.Date(2026, time.April, 20, 10, 0, 0, 0, lagos), Status: entity.SaleStatusCompleted},
		entity.SaleLine{ID: "l4", ProductID: "p2", SerialNumber: "C0", Amount: money.FromMajor(2000), AmountPaid: money.FromMajor(2000)})

	st.AddExpense(entity.Expense{ID: "e1", SpentOn: "Diesel", Amount: money.FromMajor(1500), Date: at(14, 8)})
	st.AddExpense(entity.Expense{ID: "e2", SpentOn: "Renta", Amount: money.FromMajor(20000), Date: at(3, 8)})
	return st
}

func newUC(st *memory.Store, now time.Time) *appreport.ReportUseCase {
	return appreport.NewReportUseCase(st.Sales(), st.Products(), st.Expenses(), appreport.Options{
		Resolver: &domreport.Resolver{Location: lagos, Now: func() time.Time { return now }},
		Gate:     &domreport.DefaultClosingGate,
	})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProfit_Dia(t *testing.T) {
	uc := newUC(seed(), at(14, 15))

	out, err := uc.Profit(context.Background(), domreport.PeriodRequest{Period: "day"})
	require.NoError(t, err)

	// l1: 10000-6000, l2: 3000-1000
	assert.True(t, dec("6000").Equal(out.TotalProfit), out.TotalProfit.String())
	assert.True(t, dec("15000").Equal(out.TotalAmount))
	assert.True(t, dec("13000").Equal(out.TotalPaid))
	assert.Equal(t, "₦6,000.00", out.TotalProfitText)
	assert.Equal(t, 2, out.LineCount)
	assert.Equal(t, "day", out.Window.Period)
	assert.Equal(t, "NGN", out.Currency)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, "Reloj", out.Lines[0].ProductName)
}

func TestProfit_MesPorDefecto(t *testing.T) {
	uc := newUC(seed(), at(14, 15))

	out, err := uc.Profit(context.Background(), domreport.PeriodRequest{})
	require.NoError(t, err)
	assert.Equal(t, "month", out.Window.Period)
	assert.Equal(t, 3, out.LineCount)
}

func TestProfit_RangoInvalido(t *testing.T) {
	uc := newUC(seed(), at(14, 15))

	_, err := uc.Profit(context.Background(), domreport.PeriodRequest{
		Period: "custom", StartDate: "2026-05-10", EndDate: "2026-05-01",
	})
	var rangeErr *domain.InvalidRangeError
	assert.True(t, errors.As(err, &rangeErr))
}

func TestProfit_ErrorDeRepositorio(t *testing.T) {
	st := seed()
	st.FailWith = errors.New("db caída")
	uc := newUC(st, at(14, 15))

	_, err := uc.Profit(context.Background(), domreport.PeriodRequest{Period: "day"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db caída")
}

func TestExpenses_Mes(t *testing.T) {
	uc := newUC(seed(), at(14, 15))

	out, err := uc.Expenses(context.Background(), domreport.PeriodRequest{Period: "month"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.True(t, dec("21500").Equal(out.Total))
	assert.Equal(t, "₦21,500.00", out.TotalText)
	assert.Equal(t, "e2", out.Items[0].ID, "ordenados por fecha")
}

func TestSummary(t *testing.T) {
	uc := newUC(seed(), at(14, 15))

	out, err := uc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Periods, 5)

	names := make([]string, 0, len(out.Periods))
	for _, p := range out.Periods {
		names = append(names, p.Window.Period)
	}
	assert.Equal(t, []string{"day", "week", "month", "quarter", "year"}, names)

	day := out.Periods[0]
	assert.True(t, dec("6000").Equal(day.TotalProfit))
	assert.True(t, dec("1500").Equal(day.TotalExpenses))
	assert.True(t, dec("4500").Equal(day.NetProfit))
	assert.Equal(t, "₦4,500.00", day.NetProfitText)

	month := out.Periods[2]
	// 6000 + (7000-6000) = 7000; gastos 21500
	assert.True(t, dec("-14500").Equal(month.NetProfit), month.NetProfit.String())
	assert.Equal(t, 3, month.LineCount)

	quarter := out.Periods[3]
	assert.Equal(t, 4, quarter.LineCount)
}

func TestSummary_Error(t *testing.T) {
	st := seed()
	st.FailWith = errors.New("timeout")
	uc := newUC(st, at(14, 15))

	_, err := uc.Summary(context.Background())
	assert.Error(t, err)
}

func TestPending_OrdenDescendente(t *testing.T) {
	uc := newUC(seed(), at(14, 15))

	out, err := uc.Pending(context.Background(), domreport.PeriodRequest{}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Nil(t, out.Window)
	require.Equal(t, 2, out.Count)
	assert.Equal(t, "l2", out.Lines[0].ID)
	assert.True(t, dec("2000").Equal(out.Lines[0].Pending))
	assert.Equal(t, "l3", out.Lines[1].ID)
	assert.True(t, dec("3000").Equal(out.TotalPending))
	assert.Equal(t, "₦3,000.00", out.TotalPendingText)
}

func TestPending_ConPeriodo(t *testing.T) {
	uc := newUC(seed(), at(14, 15))

	out, err := uc.Pending(context.Background(), domreport.PeriodRequest{Period: "day"}, dto.PageRequest{})
	require.NoError(t, err)
	require.NotNil(t, out.Window)
	assert.Equal(t, 1, out.Count)
}

func TestPending_Paginado(t *testing.T) {
	uc := newUC(seed(), at(14, 15))
	ctx := context.Background()

	out, err := uc.Pending(ctx, domreport.PeriodRequest{}, dto.PageRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, dto.PageResponse{Limit: 1, Offset: 1, Total: 2}, out.Page)
	require.Len(t, out.Lines, 1)
	assert.Equal(t, "l3", out.Lines[0].ID)
	assert.True(t, dec("3000").Equal(out.TotalPending), "el total no depende de la página")

	out, err = uc.Pending(ctx, domreport.PeriodRequest{}, dto.PageRequest{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, out.Lines)
	assert.Equal(t, dto.PageResponse{Limit: dto.DefaultPageLimit, Offset: 2, Total: 2}, out.Page)
}

func TestStock_CierreAntesDeLaCompuerta(t *testing.T) {
	st := seed()
	st.FailWith = errors.New("no debería consultarse la DB")
	uc := newUC(st, at(14, 17))

	_, err := uc.Stock(context.Background(), domreport.StockClosing)
	assert.ErrorIs(t, err, domain.ErrUnavailableYet)
}

func TestStock_Cierre(t *testing.T) {
	uc := newUC(seed(), at(14, 19))

	out, err := uc.Stock(context.Background(), domreport.StockClosing)
	require.NoError(t, err)
	assert.Equal(t, "closing", out.Mode)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "Camisa", out.Rows[0].ProductName)
	assert.Equal(t, 1, out.Rows[0].TotalSerialNumbers)
	assert.Equal(t, 2, out.Rows[1].TotalSerialNumbers)
	assert.Equal(t, 3, out.TotalSerialNumbers)
}

func TestStock_CompuertaPorDefecto(t *testing.T) {
	st := seed()
	clock := func(now time.Time) *domreport.Resolver {
		return &domreport.Resolver{Location: lagos, Now: func() time.Time { return now }}
	}

	// Sin Gate en Options se aplica la compuerta de las 18:00.
	uc := appreport.NewReportUseCase(st.Sales(), st.Products(), st.Expenses(), appreport.Options{
		Resolver: clock(at(14, 17)),
	})
	_, err := uc.Stock(context.Background(), domreport.StockClosing)
	var yet *domain.UnavailableYetError
	require.ErrorAs(t, err, &yet)
	assert.True(t, at(14, 18).Equal(yet.AvailableFrom))

	// Una compuerta configurada la reemplaza.
	uc = appreport.NewReportUseCase(st.Sales(), st.Products(), st.Expenses(), appreport.Options{
		Resolver: clock(at(14, 17)),
		Gate:     &domreport.ClosingGate{Hour: 16, Minute: 30},
	})
	out, err := uc.Stock(context.Background(), domreport.StockClosing)
	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalSerialNumbers)
}

func TestStock_Apertura(t *testing.T) {
	uc := newUC(seed(), at(14, 11))

	out, err := uc.Stock(context.Background(), domreport.StockOpening)
	require.NoError(t, err)
	// las ventas de hoy (R1, C1) seguían en stock al abrir
	assert.Equal(t, 5, out.TotalSerialNumbers)
	assert.True(t, at(14, 0).Equal(out.AsOf))
}

func TestStock_SinProductos(t *testing.T) {
	uc := newUC(memory.NewStore(), at(14, 19))

	out, err := uc.Stock(context.Background(), domreport.StockClosing)
	require.NoError(t, err)
	assert.NotNil(t, out.Rows)
	assert.Empty(t, out.Rows)
}
