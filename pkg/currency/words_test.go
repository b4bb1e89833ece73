package currency_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventas-api/internal/domain/money"
	"github.com/jhoicas/ventas-api/pkg/currency"
)

func TestWords(t *testing.T) {
	cases := map[int64]string{
		0:             "Zero",
		7:             "Seven",
		13:            "Thirteen",
		20:            "Twenty",
		45:            "Forty Five",
		100:           "One Hundred",
		120:           "One Hundred Twenty",
		2000:          "Two Thousand",
		2050:          "Two Thousand Fifty",
		1_000_001:     "One Million One",
		12_345_678:    "Twelve Million Three Hundred Forty Five Thousand Six Hundred Seventy Eight",
		1_000_000_000: "One Billion",
		-7:            "Minus Seven",
	}
	for n, want := range cases {
		assert.Equal(t, want, currency.Words(n), "n=%d", n)
	}
}

func TestWords_Extremos(t *testing.T) {
	assert.Contains(t, currency.Words(math.MaxInt64), "Nine Quintillion")
	assert.Contains(t, currency.Words(math.MinInt64), "Minus Nine Quintillion")
}

// Escenario: 12050 kobo = 120 naira 50 kobo → frase de naira y de kobo.
func TestAmountInWords_ConKobo(t *testing.T) {
	got := currency.AmountInWords(money.Amount(12050), currency.NGN)
	assert.Equal(t, "One Hundred Twenty Naira, Fifty Kobo Only", got)
	assert.Contains(t, got, "Naira")
	assert.Contains(t, got, "Kobo")
}

// Escenario: parte fraccionaria cero → solo la frase de naira.
func TestAmountInWords_SinKobo(t *testing.T) {
	got := currency.AmountInWords(money.Amount(12000), currency.NGN)
	assert.Equal(t, "One Hundred Twenty Naira Only", got)
	assert.NotContains(t, got, "Kobo")
}

func TestAmountInWords_Casos(t *testing.T) {
	assert.Equal(t, "Two Thousand Naira, Fifty Kobo Only",
		currency.AmountInWords(money.New(2000, 50), currency.NGN))
	assert.Equal(t, "Zero Naira Only", currency.AmountInWords(money.Zero, currency.NGN))
	assert.Equal(t, "Zero Naira, Five Kobo Only", currency.AmountInWords(money.Amount(5), currency.NGN))
	assert.Equal(t, "Minus Three Naira Only", currency.AmountInWords(money.FromMajor(-3), currency.NGN))
	assert.Equal(t, "Ten Dollars, Ninety Nine Cents Only", currency.AmountInWords(money.New(10, 99), currency.USD))
}
