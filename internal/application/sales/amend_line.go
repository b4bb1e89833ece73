// Package sales contiene los casos de uso de edición de ventas.
package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/money"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// AmendLineUseCase enmienda una línea de venta: serial, monto, monto pagado o descripción.
//
// Todo ocurre en una sola transacción:
//  1. Se cargan la venta y la línea (ErrNotFound si no existen).
//  2. Se aplican los cambios y se valida la línea (AmountPaid > Amount → *InvalidAmountError).
//  3. Si cambia el serial, el nuevo debe estar en el pool del producto
//     (ErrSerialUnavailable). Solo en ventas que consumen stock se retira el
//     nuevo y el anterior vuelve al pool; en devoluciones y préstamos el pool
//     no se toca.
//  4. Se recalculan TotalAmount y TotalPaid de la venta y se persisten.
type AmendLineUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewAmendLineUseCase construye el caso de uso. log nil descarta.
func NewAmendLineUseCase(tx TxRunner, log *logger.Logger) *AmendLineUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AmendLineUseCase{tx: tx, log: log.Component("sales")}
}

// Execute aplica la enmienda y devuelve la línea con los totales nuevos de la venta.
func (uc *AmendLineUseCase) Execute(
	ctx context.Context,
	saleID, lineID string,
	in dto.AmendLineRequest,
) (*dto.AmendLineResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: sin cambios", domain.ErrInvalidInput)
	}

	var (
		sale *entity.Sale
		line *entity.SaleLine
	)
	err := uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		var err error
		// ── 1. Cargar venta y línea ───────────────────────────────────────────
		sale, err = saleRepo.GetByID(ctx, saleID)
		if err != nil {
			return fmt.Errorf("sales: obtener venta: %w", err)
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		line, err = saleRepo.GetLine(ctx, saleID, lineID)
		if err != nil {
			return fmt.Errorf("sales: obtener línea: %w", err)
		}
		if line == nil {
			return domain.ErrNotFound
		}

		// ── 2. Aplicar cambios y validar ──────────────────────────────────────
		previousSerial := line.SerialNumber
		if in.SerialNumber != nil {
			line.SerialNumber = strings.TrimSpace(*in.SerialNumber)
		}
		if in.Amount != nil {
			line.Amount = money.FromDecimal(*in.Amount)
		}
		if in.AmountPaid != nil {
			line.AmountPaid = money.FromDecimal(*in.AmountPaid)
		}
		if in.Description != nil {
			line.Description = *in.Description
		}
		if err := line.Validate(); err != nil {
			return err
		}

		// ── 3. Cambio de serial contra el pool del producto ───────────────────
		if line.SerialNumber != previousSerial {
			product, err := productRepo.GetByID(ctx, line.ProductID)
			if err != nil {
				return fmt.Errorf("sales: obtener producto: %w", err)
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if !product.HasSerial(line.SerialNumber) {
				return fmt.Errorf("%w: %q", domain.ErrSerialUnavailable, line.SerialNumber)
			}
			// Devoluciones y préstamos no retiran stock: el serial anterior ya
			// está en el pool y el nuevo se queda en él.
			if sale.Status.ConsumesStock() {
				if err := productRepo.ReplaceSerial(ctx, product.ID, previousSerial, line.SerialNumber); err != nil {
					return fmt.Errorf("sales: reemplazar serial: %w", err)
				}
			}
		}

		// ── 4. Recalcular totales de la venta ─────────────────────────────────
		lines, err := saleRepo.GetLines(ctx, saleID)
		if err != nil {
			return fmt.Errorf("sales: obtener líneas: %w", err)
		}
		for i := range lines {
			if lines[i].ID == line.ID {
				lines[i] = *line
			}
		}
		sale.Recalculate(lines)

		if err := saleRepo.UpdateLine(ctx, line, sale); err != nil {
			return fmt.Errorf("sales: actualizar línea: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("line_id", line.ID).
		Str("total", sale.TotalAmount.String()).
		Str("paid", sale.TotalPaid.String()).
		Msg("línea de venta enmendada")

	return &dto.AmendLineResponse{
		SaleID:       sale.ID,
		LineID:       line.ID,
		SerialNumber: line.SerialNumber,
		Amount:       line.Amount.Decimal(),
		AmountPaid:   line.AmountPaid.Decimal(),
		Pending:      line.Pending().Decimal(),
		Description:  line.Description,
		SaleTotal:    sale.TotalAmount.Decimal(),
		SalePaid:     sale.TotalPaid.Decimal(),
	}, nil
}
