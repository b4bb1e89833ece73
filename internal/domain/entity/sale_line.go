package entity

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/money"
)

// SaleLine representa una unidad (producto + número de serie) dentro de una venta.
type SaleLine struct {
	ID           string
	SaleID       string
	ProductID    string
	SerialNumber string
	Amount       money.Amount // precio de venta
	AmountPaid   money.Amount
	Description  string
	CreatedAt    time.Time
}

// Pending saldo por pagar de la línea (Amount - AmountPaid).
func (l SaleLine) Pending() money.Amount {
	return l.Amount.Sub(l.AmountPaid)
}

// Validate aplica las reglas de negocio al crear o editar una línea.
// AmountPaid > Amount se rechaza (no se recorta en silencio).
func (l SaleLine) Validate() error {
	if l.Amount < 0 || l.AmountPaid < 0 {
		return domain.ErrInvalidInput
	}
	if l.AmountPaid > l.Amount {
		return &domain.InvalidAmountError{
			LineID:     l.ID,
			Amount:     int64(l.Amount),
			AmountPaid: int64(l.AmountPaid),
		}
	}
	return nil
}

// SaleLineView vista de lectura: la línea junto con los datos de su venta y de su producto.
// Es la forma que consumen los agregadores de reportes.
type SaleLineView struct {
	SaleLine
	SaleDate       time.Time
	SaleStatus     SaleStatus
	InvoiceNumber  string
	ProductName    string
	PurchaseAmount money.Amount // costo del producto
}

// Profit ganancia realizada: lo pagado menos el costo (nunca Amount - costo).
func (v SaleLineView) Profit() money.Amount {
	return v.AmountPaid.Sub(v.PurchaseAmount)
}
