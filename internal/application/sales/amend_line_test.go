package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/money"
	domreport "github.com/jhoicas/ventas-api/internal/domain/report"
	"github.com/jhoicas/ventas-api/internal/infrastructure/memory"
)

func seed() *memory.Store {
	st := memory.NewStore()
	st.AddProduct(entity.Product{ID: "p1", ProductName: "Reloj", SerialNumbers: []string{"R2", "R3"}})
	st.AddSale(entity.Sale{ID: "s1", InvoiceNumber: "INV-1", Date: time.Now(), Status: entity.SaleStatusCompleted},
		entity.SaleLine{ID: "l1", ProductID: "p1", SerialNumber: "R1", Amount: money.FromMajor(5000), AmountPaid: money.FromMajor(3000)},
		entity.SaleLine{ID: "l2", ProductID: "p1", SerialNumber: "R9", Amount: money.FromMajor(1000), AmountPaid: money.FromMajor(1000)},
	)
	return st
}

func ptr[T any](v T) *T { return &v }

func TestAmendLine_MontoPagado(t *testing.T) {
	st := seed()
	uc := sales.NewAmendLineUseCase(st.TxRunner(), nil)

	out, err := uc.Execute(context.Background(), "s1", "l1", dto.AmendLineRequest{
		AmountPaid: ptr(decimal.RequireFromString("4500.50")),
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("499.5").Equal(out.Pending), out.Pending.String())
	assert.True(t, decimal.RequireFromString("6000").Equal(out.SaleTotal))
	assert.True(t, decimal.RequireFromString("5500.5").Equal(out.SalePaid))

	sale, err := st.Sales().GetByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, money.New(5500, 50), sale.TotalPaid)
	assert.Equal(t, money.FromMajor(6000), sale.TotalAmount)
}

func TestAmendLine_PagoMayorQueMonto(t *testing.T) {
	st := seed()
	uc := sales.NewAmendLineUseCase(st.TxRunner(), nil)

	_, err := uc.Execute(context.Background(), "s1", "l1", dto.AmendLineRequest{
		AmountPaid: ptr(decimal.NewFromInt(6000)),
	})
	var amountErr *domain.InvalidAmountError
	require.True(t, errors.As(err, &amountErr))
	assert.Equal(t, "l1", amountErr.LineID)
	assert.Equal(t, int64(500000), amountErr.Amount)

	line, _ := st.Sales().GetLine(context.Background(), "s1", "l1")
	assert.Equal(t, money.FromMajor(3000), line.AmountPaid, "sin cambios tras el error")
}

func TestAmendLine_CambioDeSerial(t *testing.T) {
	st := seed()
	uc := sales.NewAmendLineUseCase(st.TxRunner(), nil)

	out, err := uc.Execute(context.Background(), "s1", "l1", dto.AmendLineRequest{SerialNumber: ptr("R3")})
	require.NoError(t, err)
	assert.Equal(t, "R3", out.SerialNumber)

	p, err := st.Products().GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"R2", "R1"}, p.SerialNumbers)
}

func TestAmendLine_CambioDeSerialEnDevolucion(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	// La venta devuelta no retira R1: sigue en el pool junto a R2.
	st.AddProduct(entity.Product{ID: "p1", ProductName: "Reloj", SerialNumbers: []string{"R1", "R2"}})
	st.AddSale(entity.Sale{
		ID: "s2", InvoiceNumber: "INV-2",
		Date:   time.Now().AddDate(0, 0, -1),
		Status: entity.SaleStatusReturned,
	}, entity.SaleLine{ID: "l1", ProductID: "p1", SerialNumber: "R1", Amount: money.FromMajor(100)})

	closing := func() int {
		products, err := st.Products().List(ctx)
		require.NoError(t, err)
		sold, err := st.Sales().ListLineViews(ctx, nil, nil)
		require.NoError(t, err)
		y, m, d := time.Now().Date()
		snap, err := domreport.BuildSnapshot(products, sold,
			time.Date(y, m, d, 19, 0, 0, 0, time.Local), domreport.StockClosing, domreport.DefaultClosingGate)
		require.NoError(t, err)
		require.Len(t, snap, 1)
		return snap[0].TotalSerialNumbers
	}
	before := closing()

	uc := sales.NewAmendLineUseCase(st.TxRunner(), nil)
	out, err := uc.Execute(ctx, "s2", "l1", dto.AmendLineRequest{SerialNumber: ptr("R2")})
	require.NoError(t, err)
	assert.Equal(t, "R2", out.SerialNumber)

	p, err := st.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"R1", "R2"}, p.SerialNumbers, "el pool no cambia")
	assert.Equal(t, 2, before)
	assert.Equal(t, before, closing())

	_, err = uc.Execute(ctx, "s2", "l1", dto.AmendLineRequest{SerialNumber: ptr("R7")})
	assert.ErrorIs(t, err, domain.ErrSerialUnavailable)
}

func TestAmendLine_SerialNoDisponible(t *testing.T) {
	st := seed()
	uc := sales.NewAmendLineUseCase(st.TxRunner(), nil)

	_, err := uc.Execute(context.Background(), "s1", "l1", dto.AmendLineRequest{
		SerialNumber: ptr("R9"),
		Amount:       ptr(decimal.NewFromInt(7000)),
	})
	assert.ErrorIs(t, err, domain.ErrSerialUnavailable)

	line, _ := st.Sales().GetLine(context.Background(), "s1", "l1")
	assert.Equal(t, "R1", line.SerialNumber)
	assert.Equal(t, money.FromMajor(5000), line.Amount)
}

func TestAmendLine_NoEncontrado(t *testing.T) {
	uc := sales.NewAmendLineUseCase(seed().TxRunner(), nil)

	_, err := uc.Execute(context.Background(), "nope", "l1", dto.AmendLineRequest{Description: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Execute(context.Background(), "s1", "nope", dto.AmendLineRequest{Description: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAmendLine_SinCambios(t *testing.T) {
	uc := sales.NewAmendLineUseCase(seed().TxRunner(), nil)

	_, err := uc.Execute(context.Background(), "s1", "l1", dto.AmendLineRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAmendLine_MontoNegativo(t *testing.T) {
	uc := sales.NewAmendLineUseCase(seed().TxRunner(), nil)

	_, err := uc.Execute(context.Background(), "s1", "l1", dto.AmendLineRequest{Amount: ptr(decimal.NewFromInt(-1))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
