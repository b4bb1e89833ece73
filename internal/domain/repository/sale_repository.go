package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type SaleRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	GetLines(ctx context.Context, saleID string) ([]entity.SaleLine, error)
	GetLine(ctx context.Context, saleID, lineID string) (*entity.SaleLine, error)

	// ListLineViews devuelve las líneas (con venta y producto) cuya venta cae en [from, to].
	// Un puntero nil deja ese extremo abierto.
	ListLineViews(ctx context.Context, from, to *time.Time) ([]entity.SaleLineView, error)

	// UpdateLine persiste los cambios de una línea y los totales recalculados de su venta.
	UpdateLine(ctx context.Context, line *entity.SaleLine, sale *entity.Sale) error
}
