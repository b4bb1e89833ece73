package entity

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/money"
)

// SaleStatus estado de una venta.
type SaleStatus string

// Estados válidos de Sale.
const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusReturned  SaleStatus = "returned"
	SaleStatusBorrowed  SaleStatus = "borrowed"
)

// Valid true si el estado es uno de los conocidos.
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusPending, SaleStatusCompleted, SaleStatusReturned, SaleStatusBorrowed:
		return true
	}
	return false
}

// ConsumesStock true si la venta retira del pool disponible los seriales de sus líneas.
// Solo las ventas completadas o pendientes cuentan; devoluciones y préstamos no.
func (s SaleStatus) ConsumesStock() bool {
	return s == SaleStatusCompleted || s == SaleStatusPending
}

// Sale representa la cabecera de una venta (factura) con un cliente.
// Invariante: TotalAmount == Σ line.Amount y TotalPaid == Σ line.AmountPaid.
type Sale struct {
	ID            string
	InvoiceNumber string // único
	CustomerID    string
	Date          time.Time
	Status        SaleStatus
	TotalAmount   money.Amount
	TotalPaid     money.Amount
	SoldBy        string // UserID del vendedor
}

// Recalculate recalcula TotalAmount y TotalPaid a partir de las líneas.
func (s *Sale) Recalculate(lines []SaleLine) {
	var total, paid money.Amount
	for _, l := range lines {
		total += l.Amount
		paid += l.AmountPaid
	}
	s.TotalAmount = total
	s.TotalPaid = paid
}
