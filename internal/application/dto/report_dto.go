package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportQuery query string común de los reportes por período.
type ReportQuery struct {
	Period    string `query:"period" validate:"omitempty,oneof=day week month quarter previousMonth year custom"`
	StartDate string `query:"start_date" validate:"required_if=Period custom"`
	EndDate   string `query:"end_date" validate:"required_if=Period custom"`
}

// WindowDTO ventana resuelta de un reporte (extremos inclusivos).
type WindowDTO struct {
	Period string    `json:"period"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// SaleLineDTO línea de venta con datos de la venta y del producto.
type SaleLineDTO struct {
	ID             string          `json:"id"`
	SaleID         string          `json:"sale_id"`
	InvoiceNumber  string          `json:"invoice_number,omitempty"`
	SaleDate       time.Time       `json:"sale_date"`
	SaleStatus     string          `json:"sale_status"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name,omitempty"`
	SerialNumber   string          `json:"serial_number"`
	Description    string          `json:"description,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	PurchaseAmount decimal.Decimal `json:"purchase_amount"`
	Profit         decimal.Decimal `json:"profit"` // amount_paid - purchase_amount
}

// ProfitReportDTO respuesta de GET /api/reports/profit.
type ProfitReportDTO struct {
	Window          WindowDTO       `json:"window"`
	Currency        string          `json:"currency"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	TotalProfitText string          `json:"total_profit_text"` // ej: "₦4,000.00"
	LineCount       int             `json:"line_count"`
	Lines           []SaleLineDTO   `json:"lines"`
}

// ExpenseDTO gasto en respuestas.
type ExpenseDTO struct {
	ID      string          `json:"id"`
	SpentOn string          `json:"spent_on"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	AddedBy string          `json:"added_by,omitempty"`
}

// ExpenseReportDTO respuesta de GET /api/reports/expenses.
type ExpenseReportDTO struct {
	Window    WindowDTO       `json:"window"`
	Currency  string          `json:"currency"`
	Total     decimal.Decimal `json:"total"`
	TotalText string          `json:"total_text"`
	Count     int             `json:"count"`
	Items     []ExpenseDTO    `json:"items"`
}

// PeriodSummaryDTO una tarjeta del resumen: ganancia, gastos y ganancia neta de un período.
type PeriodSummaryDTO struct {
	Window        WindowDTO       `json:"window"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	NetProfitText string          `json:"net_profit_text"`
	LineCount     int             `json:"line_count"`
	ExpenseCount  int             `json:"expense_count"`
}

// SummaryDTO respuesta de GET /api/reports/summary.
type SummaryDTO struct {
	Currency    string             `json:"currency"`
	GeneratedAt time.Time          `json:"generated_at"`
	Periods     []PeriodSummaryDTO `json:"periods"` // day, week, month, quarter, year
}

// PendingLineDTO línea con saldo por cobrar.
type PendingLineDTO struct {
	SaleLineDTO
	Pending     decimal.Decimal `json:"pending"`
	PendingText string          `json:"pending_text"`
}

// PendingReportDTO respuesta de GET /api/reports/pending.
// Window es nil cuando no se filtró por período.
type PendingReportDTO struct {
	Window           *WindowDTO       `json:"window,omitempty"`
	Currency         string           `json:"currency"`
	TotalPending     decimal.Decimal  `json:"total_pending"`
	TotalPendingText string           `json:"total_pending_text"`
	Count            int              `json:"count"`
	Page             PageResponse     `json:"page"`
	Lines            []PendingLineDTO `json:"lines"` // más recientes primero
}

// StockRowDTO stock de un grupo (producto, talla).
type StockRowDTO struct {
	ProductName        string `json:"product_name"`
	Size               string `json:"size"`
	TotalSerialNumbers int    `json:"total_serial_numbers"`
}

// StockReportDTO respuesta de GET /api/reports/stock/{opening|closing}.
type StockReportDTO struct {
	Mode               string        `json:"mode"`
	AsOf               time.Time     `json:"as_of"`
	TotalSerialNumbers int           `json:"total_serial_numbers"`
	Rows               []StockRowDTO `json:"rows"`
}
