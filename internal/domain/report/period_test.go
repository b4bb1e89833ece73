package report_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/report"
)

var lagos = time.FixedZone("WAT", 1*60*60)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, lagos)
}

func lastInstant(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 999999999, lagos)
}

func TestResolvePeriod_Tokens(t *testing.T) {
	ref := at(2026, time.May, 14, 15, 30) // jueves

	cases := []struct {
		token report.Token
		start time.Time
		end   time.Time
	}{
		{report.TokenDay, at(2026, time.May, 14, 0, 0), lastInstant(2026, time.May, 14)},
		{report.TokenWeek, at(2026, time.May, 11, 0, 0), lastInstant(2026, time.May, 17)},
		{report.TokenMonth, at(2026, time.May, 1, 0, 0), lastInstant(2026, time.May, 31)},
		{report.TokenQuarter, at(2026, time.April, 1, 0, 0), lastInstant(2026, time.June, 30)},
		{report.TokenPreviousMonth, at(2026, time.April, 1, 0, 0), lastInstant(2026, time.April, 30)},
		{report.TokenYear, at(2026, time.January, 1, 0, 0), lastInstant(2026, time.December, 31)},
	}
	for _, tc := range cases {
		t.Run(string(tc.token), func(t *testing.T) {
			w, err := report.ResolvePeriod(tc.token, ref)
			require.NoError(t, err)
			assert.True(t, tc.start.Equal(w.Start), "start: %s", w.Start)
			assert.True(t, tc.end.Equal(w.End), "end: %s", w.End)
		})
	}
}

func TestResolvePeriod_SemanaISODomingo(t *testing.T) {
	// El domingo pertenece a la semana que empezó el lunes anterior.
	w, err := report.ResolvePeriod(report.TokenWeek, at(2026, time.May, 17, 22, 0))
	require.NoError(t, err)
	assert.True(t, at(2026, time.May, 11, 0, 0).Equal(w.Start))
}

func TestResolvePeriod_MesAnteriorEnEnero(t *testing.T) {
	w, err := report.ResolvePeriod(report.TokenPreviousMonth, at(2026, time.January, 10, 9, 0))
	require.NoError(t, err)
	assert.True(t, at(2025, time.December, 1, 0, 0).Equal(w.Start))
	assert.True(t, lastInstant(2025, time.December, 31).Equal(w.End))
}

func TestResolvePeriod_TrimestreYBisiesto(t *testing.T) {
	w, err := report.ResolvePeriod(report.TokenQuarter, at(2028, time.February, 29, 12, 0))
	require.NoError(t, err)
	assert.True(t, at(2028, time.January, 1, 0, 0).Equal(w.Start))
	assert.True(t, lastInstant(2028, time.March, 31).Equal(w.End))
}

func TestResolvePeriod_MismoDiaMismaVentana(t *testing.T) {
	w1, err := report.ResolvePeriod(report.TokenDay, at(2026, time.May, 14, 0, 1))
	require.NoError(t, err)
	w2, err := report.ResolvePeriod(report.TokenDay, at(2026, time.May, 14, 23, 58))
	require.NoError(t, err)
	assert.Equal(t, w1, w2)

	next, err := report.ResolvePeriod(report.TokenDay, at(2026, time.May, 15, 0, 0))
	require.NoError(t, err)
	assert.False(t, w1.Overlaps(next), "días consecutivos deben ser disjuntos")
}

func TestResolvePeriod_TokenDesconocido(t *testing.T) {
	_, err := report.ResolvePeriod(report.Token("fortnight"), at(2026, time.May, 14, 0, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrUnknownPeriod)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomPeriod(t *testing.T) {
	start := at(2026, time.May, 1, 8, 15)
	end := at(2026, time.May, 3, 9, 45)

	w, err := report.CustomPeriod(start, end)
	require.NoError(t, err)
	// sin normalizar la hora del día
	assert.Equal(t, start, w.Start)
	assert.Equal(t, end, w.End)

	_, err = report.CustomPeriod(end, start)
	require.Error(t, err)
	var rangeErr *domain.InvalidRangeError
	assert.True(t, errors.As(err, &rangeErr))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	// start == end es válido
	_, err = report.CustomPeriod(start, start)
	assert.NoError(t, err)
}

func TestResolver_RecalculaEnCadaLlamada(t *testing.T) {
	now := at(2026, time.May, 31, 23, 59)
	r := &report.Resolver{Location: lagos, Now: func() time.Time { return now }}

	may, err := r.ResolveToken(report.TokenMonth)
	require.NoError(t, err)

	now = at(2026, time.June, 1, 0, 1)
	june, err := r.ResolveToken(report.TokenMonth)
	require.NoError(t, err)

	assert.Equal(t, time.May, may.Start.Month())
	assert.Equal(t, time.June, june.Start.Month())
}

func TestResolver_Resolve(t *testing.T) {
	r := &report.Resolver{Location: lagos, Now: func() time.Time { return at(2026, time.May, 14, 10, 0) }}

	w, err := r.Resolve(report.PeriodRequest{})
	require.NoError(t, err)
	assert.Equal(t, time.May, w.Start.Month(), "sin period se asume month")

	w, err = r.Resolve(report.PeriodRequest{Period: "custom", StartDate: "2026-05-01", EndDate: "2026-05-10"})
	require.NoError(t, err)
	assert.True(t, at(2026, time.May, 1, 0, 0).Equal(w.Start))
	assert.True(t, at(2026, time.May, 10, 0, 0).Equal(w.End))

	_, err = r.Resolve(report.PeriodRequest{Period: "custom", StartDate: "2026-05-10", EndDate: "2026-05-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = r.Resolve(report.PeriodRequest{Period: "custom", StartDate: "2026-05-10"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = r.Resolve(report.PeriodRequest{Period: "custom", StartDate: "10/05/2026", EndDate: "2026-05-11"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
