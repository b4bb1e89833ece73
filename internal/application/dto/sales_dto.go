package dto

import (
	"github.com/shopspring/decimal"
)

// AmendLineRequest body para PUT /api/sales/:id/lines/:lineId.
// Los campos ausentes no se modifican.
type AmendLineRequest struct {
	SerialNumber *string          `json:"serial_number,omitempty" validate:"omitempty,min=1,max=100"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	AmountPaid   *decimal.Decimal `json:"amount_paid,omitempty"`
	Description  *string          `json:"description,omitempty" validate:"omitempty,max=500"`
}

// Empty true si el body no trae ningún cambio.
func (r AmendLineRequest) Empty() bool {
	return r.SerialNumber == nil && r.Amount == nil && r.AmountPaid == nil && r.Description == nil
}

// AmendLineResponse línea enmendada junto con los totales recalculados de la venta.
type AmendLineResponse struct {
	SaleID       string          `json:"sale_id"`
	LineID       string          `json:"line_id"`
	SerialNumber string          `json:"serial_number"`
	Amount       decimal.Decimal `json:"amount"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	Pending      decimal.Decimal `json:"pending"`
	Description  string          `json:"description,omitempty"`
	SaleTotal    decimal.Decimal `json:"sale_total_amount"`
	SalePaid     decimal.Decimal `json:"sale_total_paid"`
}
