package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de lectura para Expense.
type ExpenseRepository interface {
	// ListBetween devuelve los gastos con fecha en [from, to], ordenados por fecha.
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.Expense, error)
}
