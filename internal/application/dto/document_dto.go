package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentQuery query string de los endpoints de documentos.
type DocumentQuery struct {
	Kind string `query:"kind" validate:"omitempty,oneof=invoice receipt"`
}

// PartyDTO cliente o proveedor impreso en el documento.
type PartyDTO struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// DocumentItemDTO fila de la tabla de detalle.
type DocumentItemDTO struct {
	LineID       string          `json:"line_id"`
	ProductName  string          `json:"product_name"`
	SerialNumber string          `json:"serial_number"`
	Description  string          `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	AmountText   string          `json:"amount_text"`
}

// DocumentTotalsDTO bloque de totales.
// amount_due es igual a total aunque haya pagos parciales (comportamiento conocido).
type DocumentTotalsDTO struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	Total          decimal.Decimal `json:"total"`
	AmountDue      decimal.Decimal `json:"amount_due"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	SubtotalText   string          `json:"subtotal_text"`
	TotalText      string          `json:"total_text"`
	AmountDueText  string          `json:"amount_due_text"`
	AmountPaidText string          `json:"amount_paid_text"`
}

// DocumentDTO respuesta de GET /api/sales/:id/document.
type DocumentDTO struct {
	Kind              string            `json:"kind"`
	Title             string            `json:"title"`
	InvoiceNumber     string            `json:"invoice_number"`
	IssuedAt          time.Time         `json:"issued_at"`
	SaleDate          time.Time         `json:"sale_date"`
	Status            string            `json:"status"`
	Currency          string            `json:"currency"`
	Customer          PartyDTO          `json:"customer"`
	Seller            *PartyDTO         `json:"seller,omitempty"`
	Items             []DocumentItemDTO `json:"items"`
	Totals            DocumentTotalsDTO `json:"totals"`
	AmountPaidInWords string            `json:"amount_paid_in_words"`
	FileName          string            `json:"file_name"`
}
