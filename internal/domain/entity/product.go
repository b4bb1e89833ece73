package entity

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/money"
)

// Product representa un producto serializado del inventario.
// SerialNumbers es el pool disponible: un serial vendido se retira del pool.
type Product struct {
	ID             string
	ProductName    string
	Size           string       // talla/presentación; el stock se agrupa por (ProductName, Size)
	PurchaseAmount money.Amount // costo
	SalesPrice     money.Amount
	SerialNumbers  []string // únicos dentro del producto
	CategoryID     string
	SubCategoryID  string
	VendorID       string
	CreatedAt      time.Time
}

// HasSerial true si el serial está en el pool del producto.
func (p Product) HasSerial(serial string) bool {
	for _, s := range p.SerialNumbers {
		if s == serial {
			return true
		}
	}
	return false
}

// DuplicateSerials devuelve los seriales repetidos dentro del producto (vacío si no hay).
func (p Product) DuplicateSerials() []string {
	seen := make(map[string]bool, len(p.SerialNumbers))
	var dups []string
	for _, s := range p.SerialNumbers {
		if seen[s] {
			dups = append(dups, s)
			continue
		}
		seen[s] = true
	}
	return dups
}
