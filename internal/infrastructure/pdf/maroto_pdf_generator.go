// Package pdf renderiza facturas y recibos de venta (document.Document) con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título (INVOICE/RECEIPT)  │  N° + Fecha + Estado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE (y vendedor si se indica)                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto | Serial | Descripción | Monto         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Total / Amount Due / Amount Paid       │
//	│  MONTO PAGADO EN PALABRAS                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de verificación + leyenda                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/jhoicas/ventas-api/internal/application/billing"
	"github.com/jhoicas/ventas-api/internal/domain/document"
	"github.com/jhoicas/ventas-api/internal/domain/money"
	"github.com/jhoicas/ventas-api/pkg/currency"
)

var _ appbilling.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	// Issuer nombre del negocio impreso como autor y en la leyenda.
	Issuer string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(issuer string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{Issuer: issuer}
}

// GenerateDocumentPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(_ context.Context, doc document.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title+" "+doc.InvoiceNumber, true).
		WithAuthor(g.Issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))
	m.AddRows(wordsRow(doc))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(doc, g.Issuer))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y número + fecha + estado (der).
func headerRow(doc document.Document) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("No. "+doc.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Date: "+doc.IssuedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Status: "+string(doc.Status), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// partyRows: cliente y, si se indica, vendedor.
func partyRows(doc document.Document) []core.Row {
	rows := []core.Row{partyRow("BILL TO", doc.Customer)}
	if doc.Seller != nil {
		rows = append(rows, partyRow("SOLD BY", *doc.Seller))
	}
	return rows
}

func partyRow(label string, p document.Party) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(p.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(p.Email, "—"),
				nonEmpty(p.Phone, "—"),
			), props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalle.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Product", 3, align.Left),
		h("Serial No.", 3, align.Left),
		h("Description", 3, align.Left),
		h("Amount", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por línea. Sin líneas la tabla queda vacía.
func tableDetailRows(doc document.Document) []core.Row {
	result := make([]core.Row, 0, len(doc.Items))
	for i, it := range doc.Items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(it.SerialNumber,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(amountText(it.Amount, doc.Currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
// Amount Due repite Total aunque haya pagos parciales.
func totalsRow(doc document.Document) core.Row {
	t := doc.Totals
	labels := []string{"Subtotal:", "Total:", "Amount Due:", "Amount Paid:"}
	values := []money.Amount{t.Subtotal, t.Total, t.AmountDue, t.AmountPaid}

	labelCol := col.New(3)
	valueCol := col.New(3)
	for i := range labels {
		y := float64(i * 6)
		labelCol.Add(text.New(labels[i], props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: y,
		}))
		valueCol.Add(text.New(amountText(values[i], doc.Currency), props.Text{
			Size: 9, Align: align.Right, Right: 1, Top: y,
		}))
	}

	return row.New(26).Add(
		col.New(6), // espacio izquierdo
		labelCol,
		valueCol,
	)
}

// wordsRow: monto pagado en palabras.
func wordsRow(doc document.Document) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("AMOUNT PAID IN WORDS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.AmountPaidInWords, props.Text{
				Style: fontstyle.Italic, Size: 9, Top: 6,
			}),
		),
	)
}

// footerRow: QR con los datos de verificación + leyenda.
func footerRow(doc document.Document, issuer string) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(verificationData(doc), props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New(fmt.Sprintf("%s No. %s issued by %s.", doc.Title, doc.InvoiceNumber, nonEmpty(issuer, "—")), props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New("Thank you for your patronage. Goods sold in good condition are not returnable.", props.Text{
				Size: 7, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// amountText formatea con el código ISO: las fuentes base del PDF no traen "₦".
func amountText(a money.Amount, c currency.Currency) string {
	return c.Code + " " + currency.FormatPlain(a, c)
}

// verificationData contenido del QR: número|fecha|total|pagado.
func verificationData(doc document.Document) string {
	return fmt.Sprintf("%s|%s|%s|%s",
		doc.InvoiceNumber,
		doc.IssuedAt.Format("2006-01-02"),
		doc.Totals.Total.String(),
		doc.Totals.AmountPaid.String(),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
