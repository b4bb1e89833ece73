// Package report contiene el motor de conciliación y reportes de ventas:
// resolución de períodos, agregados de ganancia y gastos, saldos pendientes y
// snapshots de stock. Todas las funciones son puras: no hacen I/O, no mutan sus
// entradas y se pueden llamar concurrentemente.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain"
)

// Token nombre corto de un período de reporte.
type Token string

// Tokens soportados.
const (
	TokenDay           Token = "day"
	TokenWeek          Token = "week"
	TokenMonth         Token = "month"
	TokenQuarter       Token = "quarter"
	TokenPreviousMonth Token = "previousMonth"
	TokenYear          Token = "year"
	TokenCustom        Token = "custom"
)

// ErrUnknownPeriod token de período no reconocido.
var ErrUnknownPeriod = fmt.Errorf("%w: período desconocido", domain.ErrInvalidInput)

// dateLayout formato de fechas en parámetros de consulta.
const dateLayout = "2006-01-02"

// PeriodWindow ventana de reporte [Start, End], ambos extremos inclusivos.
type PeriodWindow struct {
	Start time.Time
	End   time.Time
}

// Contains true si t cae dentro de la ventana (inclusivo en ambos extremos).
func (w PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Overlaps true si las dos ventanas comparten algún instante.
func (w PeriodWindow) Overlaps(o PeriodWindow) bool {
	return !w.End.Before(o.Start) && !o.End.Before(w.Start)
}

// ResolvePeriod calcula la ventana del token relativa a ref, en la zona horaria de ref.
// TokenCustom no se resuelve aquí (requiere fechas); usar CustomPeriod.
func ResolvePeriod(token Token, ref time.Time) (PeriodWindow, error) {
	loc := ref.Location()
	y, m, d := ref.Date()

	switch token {
	case TokenDay:
		start := time.Date(y, m, d, 0, 0, 0, 0, loc)
		return PeriodWindow{Start: start, End: endOf(start.AddDate(0, 0, 1))}, nil

	case TokenWeek:
		// Semana ISO: lunes a domingo.
		offset := (int(ref.Weekday()) + 6) % 7
		start := time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
		return PeriodWindow{Start: start, End: endOf(start.AddDate(0, 0, 7))}, nil

	case TokenMonth:
		start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return PeriodWindow{Start: start, End: endOf(start.AddDate(0, 1, 0))}, nil

	case TokenPreviousMonth:
		start := time.Date(y, m-1, 1, 0, 0, 0, 0, loc)
		return PeriodWindow{Start: start, End: endOf(start.AddDate(0, 1, 0))}, nil

	case TokenQuarter:
		first := time.Month((int(m)-1)/3*3 + 1)
		start := time.Date(y, first, 1, 0, 0, 0, 0, loc)
		return PeriodWindow{Start: start, End: endOf(start.AddDate(0, 3, 0))}, nil

	case TokenYear:
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		return PeriodWindow{Start: start, End: endOf(start.AddDate(1, 0, 0))}, nil

	case TokenCustom:
		return PeriodWindow{}, fmt.Errorf("%w: custom requiere start_date y end_date", domain.ErrInvalidInput)
	}
	return PeriodWindow{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, token)
}

// CustomPeriod devuelve exactamente [start, end] sin normalizar la hora del día.
// start posterior a end produce *domain.InvalidRangeError.
func CustomPeriod(start, end time.Time) (PeriodWindow, error) {
	if start.After(end) {
		return PeriodWindow{}, &domain.InvalidRangeError{Start: start, End: end}
	}
	return PeriodWindow{Start: start, End: end}, nil
}

// endOf devuelve el último instante representable antes de next.
func endOf(next time.Time) time.Time {
	return next.Add(-time.Nanosecond)
}

// ── Resolver ──────────────────────────────────────────────────────────────────

// PeriodRequest parámetros crudos de período, tal como llegan por query string.
type PeriodRequest struct {
	Period    string `query:"period"`     // day|week|month|quarter|previousMonth|year|custom
	StartDate string `query:"start_date"` // YYYY-MM-DD o RFC3339 (solo custom)
	EndDate   string `query:"end_date"`   // YYYY-MM-DD o RFC3339 (solo custom)
}

// Resolver resuelve períodos en la zona horaria del reporte.
// Now se consulta en cada llamada: las ventanas no se cachean y cambian solas
// al pasar la medianoche, el mes, el trimestre o el año.
type Resolver struct {
	Location *time.Location
	Now      func() time.Time
}

// NewResolver construye un Resolver con reloj real. loc nil usa time.Local.
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{Location: loc, Now: time.Now}
}

// Current devuelve "ahora" en la zona horaria del reporte.
func (r *Resolver) Current() time.Time {
	return r.Now().In(r.Location)
}

// ResolveToken resuelve un token de una palabra relativo a ahora.
func (r *Resolver) ResolveToken(token Token) (PeriodWindow, error) {
	return ResolvePeriod(token, r.Current())
}

// Resolve interpreta un PeriodRequest. Sin period se asume "month".
func (r *Resolver) Resolve(req PeriodRequest) (PeriodWindow, error) {
	token := Token(strings.TrimSpace(req.Period))
	if token == "" {
		token = TokenMonth
	}
	if token != TokenCustom {
		return r.ResolveToken(token)
	}
	if req.StartDate == "" || req.EndDate == "" {
		return PeriodWindow{}, fmt.Errorf("%w: custom requiere start_date y end_date", domain.ErrInvalidInput)
	}
	start, err := r.parseDate(req.StartDate)
	if err != nil {
		return PeriodWindow{}, fmt.Errorf("%w: start_date: %v", domain.ErrInvalidInput, err)
	}
	end, err := r.parseDate(req.EndDate)
	if err != nil {
		return PeriodWindow{}, fmt.Errorf("%w: end_date: %v", domain.ErrInvalidInput, err)
	}
	return CustomPeriod(start, end)
}

// parseDate acepta RFC3339 o YYYY-MM-DD (medianoche local). No se ajusta la hora:
// los límites del rango personalizado se usan tal como llegan.
func (r *Resolver) parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(r.Location), nil
	}
	t, err := time.ParseInLocation(dateLayout, s, r.Location)
	if err != nil {
		return time.Time{}, errors.New("formato esperado YYYY-MM-DD o RFC3339")
	}
	return t, nil
}
