package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/ventas-api/internal/infrastructure/postgres"
)

// productRow fila del CSV de inventario.
type productRow struct {
	ID             string
	Name           string
	Size           string
	PurchaseAmount decimal.Decimal
	SalesPrice     decimal.Decimal
	Serials        []string
	CreatedAt      time.Time // cero: now() de la base
}

func newID() string { return uuid.NewString() }

// parseProducts lee el CSV (con encabezado). Si el contenido no es UTF-8 válido
// se decodifica como ISO-8859-1.
func parseProducts(raw []byte) ([]productRow, error) {
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}
	r := csv.NewReader(src)
	r.FieldsPerRecord = 5
	r.TrimLeadingSpace = true

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("CSV vacío")
		}
		return nil, fmt.Errorf("encabezado: %w", err)
	}

	var rows []productRow
	seen := make(map[string]int) // nombre|talla|serial → línea
	for line := 2; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		for _, s := range row.Serials {
			key := row.Name + "|" + row.Size + "|" + s
			if prev, ok := seen[key]; ok {
				return nil, fmt.Errorf("línea %d: serial %q repetido (línea %d)", line, s, prev)
			}
			seen[key] = line
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(rec []string) (productRow, error) {
	row := productRow{Name: strings.TrimSpace(rec[0]), Size: strings.TrimSpace(rec[1])}
	if row.Name == "" {
		return row, errors.New("product_name vacío")
	}
	var err error
	if row.PurchaseAmount, err = parseAmount(rec[2]); err != nil {
		return row, fmt.Errorf("purchase_amount: %w", err)
	}
	if row.SalesPrice, err = parseAmount(rec[3]); err != nil {
		return row, fmt.Errorf("sales_price: %w", err)
	}
	for _, s := range strings.Split(rec[4], "|") {
		if s = strings.TrimSpace(s); s != "" {
			row.Serials = append(row.Serials, s)
		}
	}
	return row, nil
}

// parseAmount acepta "12,050.50" o "12050.5"; no admite negativos.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("monto negativo %s", s)
	}
	return d.Round(2), nil
}

// assignIDs asigna un UUID a cada producto.
func assignIDs(rows []productRow, id func() string) {
	for i := range rows {
		rows[i].ID = id()
	}
}

// writeSQL escribe el esquema seguido de los INSERT de productos y seriales.
// Los productos deben tener ID (assignIDs).
func writeSQL(w io.Writer, rows []productRow) error {
	var b strings.Builder
	b.WriteString("-- Inventario inicial generado por cmd/seed\n\n")
	b.WriteString(postgres.Schema())
	b.WriteString("\n-- Productos y pool de seriales\n")
	for _, r := range rows {
		pid := r.ID
		createdAt := "now()"
		if !r.CreatedAt.IsZero() {
			createdAt = "'" + r.CreatedAt.UTC().Format(time.RFC3339) + "'"
		}
		fmt.Fprintf(&b, "INSERT INTO products (id, product_name, size, purchase_amount, sales_price, created_at)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', %s, %s, %s);\n",
			pid, escapeSQL(r.Name), escapeSQL(r.Size), r.PurchaseAmount.StringFixed(2), r.SalesPrice.StringFixed(2), createdAt)
		if len(r.Serials) == 0 {
			continue
		}
		b.WriteString("INSERT INTO product_serials (product_id, serial_number) VALUES\n")
		for i, s := range r.Serials {
			sep := ",\n"
			if i == len(r.Serials)-1 {
				sep = "\n"
			}
			fmt.Fprintf(&b, "  ('%s', '%s')%s", pid, escapeSQL(s), sep)
		}
		b.WriteString("ON CONFLICT DO NOTHING;\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
