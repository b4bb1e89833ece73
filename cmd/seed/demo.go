package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// demoWindow ventas y gastos demo caen en los últimos 90 días.
const demoWindow = 90 * 24 * time.Hour

var expenseConcepts = []string{"Diesel", "Renta", "Transporte", "Electricidad", "Publicidad", "Mantenimiento"}

type demoCustomer struct {
	ID, FirstName, LastName, Email, Phone string
}

type demoSale struct {
	ID, InvoiceNumber, CustomerID, Status string
	Date                                  time.Time
	Line                                  demoLine
}

type demoLine struct {
	ID, ProductID, SerialNumber string
	Amount, AmountPaid          decimal.Decimal
}

type demoExpense struct {
	ID, SpentOn string
	Amount      decimal.Decimal
	Date        time.Time
}

// demoData datos ficticios listos para escribir como SQL.
type demoData struct {
	Customers []demoCustomer
	Sales     []demoSale
	Expenses  []demoExpense
}

// buildDemo genera hasta n ventas de una línea sobre los seriales de rows y los
// retira del pool. Se detiene antes si no quedan seriales. Una de cada tres
// ventas queda con pago parcial (estado pending). Todos los productos quedan
// registrados el día anterior a la primera venta posible.
func buildDemo(rows []productRow, n int, f *gofakeit.Faker, id func() string, now time.Time) *demoData {
	d := &demoData{}
	start := now.Add(-demoWindow)
	for i := range rows {
		rows[i].CreatedAt = start.AddDate(0, 0, -1).Truncate(time.Second)
	}

	for i := 0; i < n; i++ {
		idx := pickProduct(rows, f)
		if idx < 0 {
			break
		}
		p := &rows[idx]
		serial := p.Serials[0]
		p.Serials = p.Serials[1:]

		c := demoCustomer{
			ID:        id(),
			FirstName: f.FirstName(),
			LastName:  f.LastName(),
			Email:     f.Email(),
			Phone:     f.Phone(),
		}
		d.Customers = append(d.Customers, c)

		amount := p.SalesPrice
		paid, status := amount, "completed"
		if i%3 == 2 {
			pct := decimal.NewFromInt(int64(f.Number(10, 90)))
			paid = amount.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
			status = "pending"
		}
		d.Sales = append(d.Sales, demoSale{
			ID:            id(),
			InvoiceNumber: fmt.Sprintf("INV-%05d", i+1),
			CustomerID:    c.ID,
			Status:        status,
			Date:          f.DateRange(start, now).Truncate(time.Second),
			Line: demoLine{
				ID:           id(),
				ProductID:    p.ID,
				SerialNumber: serial,
				Amount:       amount,
				AmountPaid:   paid,
			},
		})
	}

	for i := 0; i < n/2; i++ {
		d.Expenses = append(d.Expenses, demoExpense{
			ID:      id(),
			SpentOn: f.RandomString(expenseConcepts),
			Amount:  decimal.NewFromFloat(f.Float64Range(500, 20000)).Round(2),
			Date:    f.DateRange(start, now).Truncate(time.Second),
		})
	}
	return d
}

// pickProduct elige al azar un producto con seriales disponibles; -1 si no queda ninguno.
func pickProduct(rows []productRow, f *gofakeit.Faker) int {
	var candidates []int
	for i, r := range rows {
		if len(r.Serials) > 0 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[f.Number(0, len(candidates)-1)]
}

// writeDemoSQL escribe clientes, ventas con su línea y gastos.
func writeDemoSQL(w io.Writer, d *demoData) error {
	var b strings.Builder
	b.WriteString("\n-- Datos demo\n")
	for _, c := range d.Customers {
		fmt.Fprintf(&b, "INSERT INTO customers (id, first_name, last_name, email, phone_number) VALUES ('%s', '%s', '%s', '%s', '%s');\n",
			c.ID, escapeSQL(c.FirstName), escapeSQL(c.LastName), escapeSQL(c.Email), escapeSQL(c.Phone))
	}
	for _, s := range d.Sales {
		fmt.Fprintf(&b, "INSERT INTO sales (id, invoice_number, customer_id, date, status, total_amount, total_paid) VALUES ('%s', '%s', '%s', '%s', '%s', %s, %s);\n",
			s.ID, s.InvoiceNumber, s.CustomerID, s.Date.Format(time.RFC3339), s.Status,
			s.Line.Amount.StringFixed(2), s.Line.AmountPaid.StringFixed(2))
		fmt.Fprintf(&b, "INSERT INTO sale_lines (id, sale_id, product_id, serial_number, amount, amount_paid) VALUES ('%s', '%s', '%s', '%s', %s, %s);\n",
			s.Line.ID, s.ID, s.Line.ProductID, escapeSQL(s.Line.SerialNumber),
			s.Line.Amount.StringFixed(2), s.Line.AmountPaid.StringFixed(2))
	}
	for _, e := range d.Expenses {
		fmt.Fprintf(&b, "INSERT INTO expenses (id, spent_on, amount, date, added_by) VALUES ('%s', '%s', %s, '%s', 'seed');\n",
			e.ID, escapeSQL(e.SpentOn), e.Amount.StringFixed(2), e.Date.Format(time.RFC3339))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
