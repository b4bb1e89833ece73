package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// GetByID obtiene la cabecera de una venta.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	const query = `
		SELECT id, invoice_number, customer_id, date, status, total_amount, total_paid, sold_by
		FROM sales WHERE id = $1`
	var (
		s           entity.Sale
		status      string
		total, paid decimal.Decimal
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.InvoiceNumber, &s.CustomerID, &s.Date, &status, &total, &paid, &s.SoldBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.Status = entity.SaleStatus(status)
	s.TotalAmount = amount(total)
	s.TotalPaid = amount(paid)
	return &s, nil
}

const lineColumns = `l.id, l.sale_id, l.product_id, l.serial_number, l.amount, l.amount_paid,
		       COALESCE(l.description, ''), l.created_at`

// GetLines obtiene las líneas de una venta en orden de creación.
func (r *SaleRepo) GetLines(ctx context.Context, saleID string) ([]entity.SaleLine, error) {
	query := `SELECT ` + lineColumns + `
		FROM sale_lines l WHERE l.sale_id = $1
		ORDER BY l.created_at, l.id`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()

	var out []entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := scanLine(rows, &l); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// GetLine obtiene una línea de la venta indicada.
func (r *SaleRepo) GetLine(ctx context.Context, saleID, lineID string) (*entity.SaleLine, error) {
	query := `SELECT ` + lineColumns + `
		FROM sale_lines l WHERE l.sale_id = $1 AND l.id = $2`
	var l entity.SaleLine
	if err := scanLine(r.q.QueryRow(ctx, query, saleID, lineID), &l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale line: %w", err)
	}
	return &l, nil
}

// ListLineViews une líneas, venta y producto para los reportes.
// Extremos nil dejan el rango abierto.
func (r *SaleRepo) ListLineViews(ctx context.Context, from, to *time.Time) ([]entity.SaleLineView, error) {
	query := `
		SELECT ` + lineColumns + `,
		       s.date, s.status, s.invoice_number, p.product_name, p.purchase_amount
		FROM sale_lines l
		JOIN sales    s ON s.id = l.sale_id
		JOIN products p ON p.id = l.product_id
		WHERE ($1::timestamptz IS NULL OR s.date >= $1)
		  AND ($2::timestamptz IS NULL OR s.date <= $2)
		ORDER BY s.date, l.created_at, l.id`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sale line views: %w", err)
	}
	defer rows.Close()

	var out []entity.SaleLineView
	for rows.Next() {
		var (
			v                   entity.SaleLineView
			amt, paid, purchase decimal.Decimal
			status              string
		)
		err := rows.Scan(
			&v.ID, &v.SaleID, &v.ProductID, &v.SerialNumber, &amt, &paid, &v.Description, &v.CreatedAt,
			&v.SaleDate, &status, &v.InvoiceNumber, &v.ProductName, &purchase,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sale line view: %w", err)
		}
		v.Amount = amount(amt)
		v.AmountPaid = amount(paid)
		v.PurchaseAmount = amount(purchase)
		v.SaleStatus = entity.SaleStatus(status)
		out = append(out, v)
	}
	return out, rows.Err()
}

// UpdateLine persiste la línea y los totales de su venta. Usar dentro de una tx.
func (r *SaleRepo) UpdateLine(ctx context.Context, line *entity.SaleLine, sale *entity.Sale) error {
	const updLine = `
		UPDATE sale_lines
		SET serial_number = $3, amount = $4, amount_paid = $5, description = $6
		WHERE id = $1 AND sale_id = $2`
	tag, err := r.q.Exec(ctx, updLine,
		line.ID, sale.ID, line.SerialNumber,
		line.Amount.Decimal(), line.AmountPaid.Decimal(), nullIfEmpty(line.Description),
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidAmount, err)
		}
		return fmt.Errorf("update sale line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	const updSale = `UPDATE sales SET total_amount = $2, total_paid = $3 WHERE id = $1`
	if _, err := r.q.Exec(ctx, updSale, sale.ID, sale.TotalAmount.Decimal(), sale.TotalPaid.Decimal()); err != nil {
		return fmt.Errorf("update sale totals: %w", err)
	}
	return nil
}

func scanLine(row pgx.Row, l *entity.SaleLine) error {
	var amt, paid decimal.Decimal
	if err := row.Scan(
		&l.ID, &l.SaleID, &l.ProductID, &l.SerialNumber, &amt, &paid, &l.Description, &l.CreatedAt,
	); err != nil {
		return err
	}
	l.Amount = amount(amt)
	l.AmountPaid = amount(paid)
	return nil
}
