package domain

import (
	"errors"
	"fmt"
	"time"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrSerialUnavailable = errors.New("el número de serie no está disponible en stock")
	ErrInvalidRange      = errors.New("rango de fechas inválido")
	ErrUnavailableYet    = errors.New("reporte aún no disponible")
	ErrInvalidAmount     = errors.New("monto pagado mayor que el monto de la línea")
)

// InvalidRangeError se produce cuando un período personalizado empieza después de terminar.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s: inicio %s posterior a fin %s",
		ErrInvalidRange.Error(), e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// Is permite errors.Is(err, ErrInvalidRange).
func (e *InvalidRangeError) Is(target error) bool { return target == ErrInvalidRange }

// UnavailableYetError se produce al pedir el stock de cierre antes de la hora permitida.
type UnavailableYetError struct {
	RequestedAt   time.Time
	AvailableFrom time.Time
}

func (e *UnavailableYetError) Error() string {
	return fmt.Sprintf("%s: solicitado a las %s, disponible desde las %s",
		ErrUnavailableYet.Error(), e.RequestedAt.Format("15:04"), e.AvailableFrom.Format("15:04"))
}

// Is permite errors.Is(err, ErrUnavailableYet).
func (e *UnavailableYetError) Is(target error) bool { return target == ErrUnavailableYet }

// InvalidAmountError se produce cuando AmountPaid supera Amount en una línea de venta.
// Los montos van en unidades menores (kobo).
type InvalidAmountError struct {
	LineID     string
	Amount     int64
	AmountPaid int64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s: línea %q, monto %d, pagado %d",
		ErrInvalidAmount.Error(), e.LineID, e.Amount, e.AmountPaid)
}

// Is permite errors.Is(err, ErrInvalidAmount).
func (e *InvalidAmountError) Is(target error) bool { return target == ErrInvalidAmount }
