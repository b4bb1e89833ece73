package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación de ExpenseRepository.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// ListBetween devuelve los gastos con fecha en [from, to], ordenados por fecha.
func (r *ExpenseRepo) ListBetween(ctx context.Context, from, to time.Time) ([]entity.Expense, error) {
	const query = `
		SELECT id, spent_on, amount, date, added_by
		FROM expenses
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, id`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []entity.Expense
	for rows.Next() {
		var (
			e   entity.Expense
			amt decimal.Decimal
		)
		if err := rows.Scan(&e.ID, &e.SpentOn, &amt, &e.Date, &e.AddedBy); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Amount = amount(amt)
		out = append(out, e)
	}
	return out, rows.Err()
}
