package report_test

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/money"
)

// line construye una SaleLineView con montos en naira enteros.
func line(id string, date time.Time, amount, paid, cost int64) entity.SaleLineView {
	return entity.SaleLineView{
		SaleLine: entity.SaleLine{
			ID:         id,
			SaleID:     "sale-" + id,
			ProductID:  "prod-1",
			Amount:     money.FromMajor(amount),
			AmountPaid: money.FromMajor(paid),
		},
		SaleDate:       date,
		SaleStatus:     entity.SaleStatusCompleted,
		PurchaseAmount: money.FromMajor(cost),
	}
}
