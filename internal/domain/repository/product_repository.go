package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product y su pool de seriales.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve todos los productos con sus seriales disponibles.
	List(ctx context.Context) ([]entity.Product, error)
	// ReplaceSerial devuelve released al pool del producto y retira taken.
	// Se usa al enmendar el serial de una línea de venta; released vacío no devuelve nada.
	ReplaceSerial(ctx context.Context, productID, released, taken string) error
}
