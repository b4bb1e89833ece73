package entity

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/money"
)

// Expense representa un gasto operativo.
type Expense struct {
	ID      string
	SpentOn string // descripción
	Amount  money.Amount
	Date    time.Time
	AddedBy string
}
