// Package document arma el modelo estructurado de facturas y recibos de venta,
// listo para renderizar (PDF o impresión). No hace I/O.
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/money"
	"github.com/jhoicas/ventas-api/pkg/currency"
)

// Kind tipo de documento.
type Kind string

// Tipos de documento.
const (
	KindInvoice Kind = "invoice"
	KindReceipt Kind = "receipt"
)

// ParseKind interpreta el tipo de documento; vacío equivale a factura.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindInvoice:
		return KindInvoice, nil
	case KindReceipt:
		return KindReceipt, nil
	}
	return "", fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, s)
}

// Title título impreso en la cabecera.
func (k Kind) Title() string {
	if k == KindReceipt {
		return "RECEIPT"
	}
	return "INVOICE"
}

// FileName nombre de archivo sugerido para el PDF.
func (k Kind) FileName(invoiceNumber string) string {
	kind := k
	if kind == "" {
		kind = KindInvoice
	}
	return fmt.Sprintf("%s_%s.pdf", kind, invoiceNumber)
}

// Party identidad de cliente o proveedor en el documento.
type Party struct {
	Name  string
	Email string
	Phone string
}

// PartyFromCustomer arma la identidad del cliente.
func PartyFromCustomer(c entity.Customer) Party {
	return Party{Name: c.FullName(), Email: c.Email, Phone: c.PhoneNumber}
}

// PartyFromVendor arma la identidad del proveedor.
func PartyFromVendor(v entity.Vendor) Party {
	return Party{Name: v.FullName(), Email: v.Email, Phone: v.PhoneNumber}
}

// Item una fila de la tabla de detalle.
type Item struct {
	LineID       string
	ProductName  string
	SerialNumber string
	Description  string
	Amount       money.Amount
	AmountText   string
}

// Totals bloque de totales.
//
// AmountDue es siempre igual a Total: el pago parcial no se descuenta del
// "monto a pagar" impreso. Es un comportamiento conocido que se conserva hasta
// que negocio decida lo contrario; el saldo real está en Total - AmountPaid.
type Totals struct {
	Subtotal   money.Amount // Σ line.Amount
	Total      money.Amount // = Subtotal, sin impuestos
	AmountDue  money.Amount // = Total
	AmountPaid money.Amount // sale.TotalPaid

	SubtotalText   string
	TotalText      string
	AmountDueText  string
	AmountPaidText string
}

// Document modelo de factura o recibo.
type Document struct {
	Kind          Kind
	Title         string
	InvoiceNumber string
	IssuedAt      time.Time
	SaleDate      time.Time
	Status        entity.SaleStatus
	Currency      currency.Currency
	Customer      Party
	Seller        *Party // opcional
	Items         []Item
	Totals        Totals

	// AmountPaidInWords ej: "One Hundred Twenty Naira, Fifty Kobo Only".
	AmountPaidInWords string
}

// FileName nombre de archivo sugerido para el PDF del documento.
func (d Document) FileName() string { return d.Kind.FileName(d.InvoiceNumber) }

// Options parámetros opcionales de Compose.
type Options struct {
	Kind         Kind              // vacío: factura
	ProductNames map[string]string // ProductID → nombre; sin entrada se usa el ProductID
	Currency     currency.Currency // vacío: NGN
	IssuedAt     time.Time         // vacío: fecha de la venta
	Seller       *Party
}

// Compose arma el documento de la venta. Una venta sin líneas produce una tabla
// vacía y totales en cero, no un error.
func Compose(sale entity.Sale, lines []entity.SaleLine, customer entity.Customer, opts Options) Document {
	cur := opts.Currency
	if cur.Code == "" {
		cur = currency.NGN
	}
	kind := opts.Kind
	if kind == "" {
		kind = KindInvoice
	}
	issued := opts.IssuedAt
	if issued.IsZero() {
		issued = sale.Date
	}

	items := make([]Item, 0, len(lines))
	var subtotal money.Amount
	for _, l := range lines {
		name, ok := opts.ProductNames[l.ProductID]
		if !ok || name == "" {
			name = l.ProductID
		}
		items = append(items, Item{
			LineID:       l.ID,
			ProductName:  name,
			SerialNumber: l.SerialNumber,
			Description:  l.Description,
			Amount:       l.Amount,
			AmountText:   currency.Format(l.Amount, cur),
		})
		subtotal += l.Amount
	}

	total := subtotal
	totals := Totals{
		Subtotal:   subtotal,
		Total:      total,
		AmountDue:  total,
		AmountPaid: sale.TotalPaid,
	}
	totals.SubtotalText = currency.Format(totals.Subtotal, cur)
	totals.TotalText = currency.Format(totals.Total, cur)
	totals.AmountDueText = currency.Format(totals.AmountDue, cur)
	totals.AmountPaidText = currency.Format(totals.AmountPaid, cur)

	return Document{
		Kind:              kind,
		Title:             kind.Title(),
		InvoiceNumber:     sale.InvoiceNumber,
		IssuedAt:          issued,
		SaleDate:          sale.Date,
		Status:            sale.Status,
		Currency:          cur,
		Customer:          PartyFromCustomer(customer),
		Seller:            opts.Seller,
		Items:             items,
		Totals:            totals,
		AmountPaidInWords: currency.AmountInWords(sale.TotalPaid, cur),
	}
}
