package report

import (
	"sort"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/money"
)

// PendingLine línea con saldo por pagar.
type PendingLine struct {
	Line    entity.SaleLineView
	Pending money.Amount // Amount - AmountPaid, siempre > 0
}

// PendingFor devuelve las líneas con saldo pendiente positivo, en el orden de entrada.
func PendingFor(lines []entity.SaleLineView) []PendingLine {
	out := make([]PendingLine, 0)
	for _, l := range lines {
		if p := l.Pending(); p.IsPositive() {
			out = append(out, PendingLine{Line: l, Pending: p})
		}
	}
	return out
}

// TotalPending suma los saldos pendientes.
func TotalPending(pending []PendingLine) money.Amount {
	var total money.Amount
	for _, p := range pending {
		total += p.Pending
	}
	return total
}

// SortByDateDesc devuelve una copia ordenada por fecha de venta descendente
// (más recientes primero). Ante empate conserva el orden de entrada.
func SortByDateDesc(lines []entity.SaleLineView) []entity.SaleLineView {
	out := make([]entity.SaleLineView, len(lines))
	copy(out, lines)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SaleDate.After(out[j].SaleDate)
	})
	return out
}
