package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// StockMode tipo de snapshot de stock.
type StockMode string

// Modos de snapshot.
const (
	StockOpening StockMode = "opening" // stock al inicio del día
	StockClosing StockMode = "closing" // stock sin vender al corte de la tarde
)

// ClosingGate hora local a partir de la cual el stock de cierre está disponible.
type ClosingGate struct {
	Hour   int
	Minute int
}

// DefaultClosingGate 18:00 (6 PM).
var DefaultClosingGate = ClosingGate{Hour: 18}

// AvailableFrom instante del día de t en que abre la compuerta.
func (g ClosingGate) AvailableFrom(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, g.Hour, g.Minute, 0, 0, t.Location())
}

// Check devuelve *domain.UnavailableYetError si t es anterior a la compuerta de su día.
func (g ClosingGate) Check(t time.Time) error {
	from := g.AvailableFrom(t)
	if t.Before(from) {
		return &domain.UnavailableYetError{RequestedAt: t, AvailableFrom: from}
	}
	return nil
}

// StockSnapshot cantidad de seriales en stock de un grupo (producto, talla).
type StockSnapshot struct {
	ProductName        string
	Size               string
	TotalSerialNumbers int
	AsOf               time.Time
}

// BuildSnapshot agrupa los seriales en stock por (ProductName, Size).
//
// products trae el pool disponible actual de cada producto (los seriales
// vendidos ya no están). sold son las líneas vendidas; solo cuentan las de
// ventas completadas o pendientes. Con ambos se reconstruye el stock en el
// instante del snapshot: un serial vendido después de ese instante seguía en
// stock, uno vendido antes ya no.
//
//   - StockOpening: instante = inicio del día de cutoff; solo productos creados antes.
//   - StockClosing: instante = cutoff, que debe ser posterior a la compuerta
//     (si no, *domain.UnavailableYetError sin datos parciales).
//
// Los grupos que quedan en cero se incluyen; el orden es por nombre y talla.
func BuildSnapshot(
	products []entity.Product,
	sold []entity.SaleLineView,
	cutoff time.Time,
	mode StockMode,
	gate ClosingGate,
) ([]StockSnapshot, error) {
	var asOf time.Time
	switch mode {
	case StockOpening:
		y, m, d := cutoff.Date()
		asOf = time.Date(y, m, d, 0, 0, 0, 0, cutoff.Location())
	case StockClosing:
		if err := gate.Check(cutoff); err != nil {
			return nil, err
		}
		asOf = cutoff
	default:
		return nil, fmt.Errorf("%w: modo de stock %q", domain.ErrInvalidInput, mode)
	}

	// existed: el producto ya estaba registrado en el instante del snapshot.
	existed := func(p entity.Product) bool {
		if mode == StockOpening {
			return p.CreatedAt.Before(asOf)
		}
		return !p.CreatedAt.After(asOf)
	}
	// soldBefore: la venta ya había retirado el serial en el instante del snapshot.
	soldBefore := func(t time.Time) bool {
		if mode == StockOpening {
			return t.Before(asOf)
		}
		return !t.After(asOf)
	}

	released := make(map[string]map[string]bool) // vendidos después: vuelven al conteo
	removed := make(map[string]map[string]bool)  // vendidos antes: fuera del conteo
	for _, l := range sold {
		if !l.SaleStatus.ConsumesStock() || l.SerialNumber == "" {
			continue
		}
		target := released
		if soldBefore(l.SaleDate) {
			target = removed
		}
		if target[l.ProductID] == nil {
			target[l.ProductID] = make(map[string]bool)
		}
		target[l.ProductID][l.SerialNumber] = true
	}

	type groupKey struct{ name, size string }
	counts := make(map[groupKey]int)
	for _, p := range products {
		key := groupKey{p.ProductName, p.Size}
		if _, ok := counts[key]; !ok {
			counts[key] = 0
		}
		if !existed(p) {
			continue
		}
		serials := make(map[string]bool, len(p.SerialNumbers))
		for _, s := range p.SerialNumbers {
			serials[s] = true
		}
		for s := range released[p.ID] {
			serials[s] = true
		}
		for s := range serials {
			if !removed[p.ID][s] {
				counts[key]++
			}
		}
	}

	out := make([]StockSnapshot, 0, len(counts))
	for k, n := range counts {
		out = append(out, StockSnapshot{
			ProductName:        k.name,
			Size:               k.size,
			TotalSerialNumbers: n,
			AsOf:               asOf,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductName != out[j].ProductName {
			return out[i].ProductName < out[j].ProductName
		}
		return out[i].Size < out[j].Size
	})
	return out, nil
}
