package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
// El pool de seriales disponibles vive en product_serials.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.product_name, p.size, p.purchase_amount, p.sales_price,
	       COALESCE(p.category_id::text, ''), COALESCE(p.sub_category_id::text, ''),
	       COALESCE(p.vendor_id::text, ''), p.created_at,
	       COALESCE(array_agg(ps.serial_number ORDER BY ps.serial_number)
	                FILTER (WHERE ps.serial_number IS NOT NULL), '{}')
	FROM products p
	LEFT JOIN product_serials ps ON ps.product_id = p.id`

// GetByID obtiene un producto con sus seriales disponibles.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := productSelect + `
	WHERE p.id = $1
	GROUP BY p.id`
	var p entity.Product
	if err := scanProduct(r.q.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List devuelve todos los productos con sus seriales, ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	query := productSelect + `
	GROUP BY p.id
	ORDER BY p.product_name, p.size, p.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ReplaceSerial retira taken del pool y devuelve released. Usar dentro de una tx.
//   - taken ausente del pool → domain.ErrSerialUnavailable.
//   - released ya presente en el pool → domain.ErrConflict.
func (r *ProductRepo) ReplaceSerial(ctx context.Context, productID, released, taken string) error {
	tag, err := r.q.Exec(ctx,
		`DELETE FROM product_serials WHERE product_id = $1 AND serial_number = $2`,
		productID, taken,
	)
	if err != nil {
		return fmt.Errorf("take serial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %q", domain.ErrSerialUnavailable, taken)
	}
	if released == "" {
		return nil
	}
	_, err = r.q.Exec(ctx,
		`INSERT INTO product_serials (product_id, serial_number) VALUES ($1, $2)`,
		productID, released,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: serial %q ya está en el pool", domain.ErrConflict, released)
		}
		return fmt.Errorf("release serial: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	var purchase, price decimal.Decimal
	if err := row.Scan(
		&p.ID, &p.ProductName, &p.Size, &purchase, &price,
		&p.CategoryID, &p.SubCategoryID, &p.VendorID, &p.CreatedAt,
		&p.SerialNumbers,
	); err != nil {
		return err
	}
	p.PurchaseAmount = amount(purchase)
	p.SalesPrice = amount(price)
	return nil
}
