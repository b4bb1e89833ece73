// Package money representa montos monetarios como enteros en unidades menores
// (kobo para NGN, centavos para USD). Toda la aritmética de reportes se hace con
// Amount; decimal.Decimal solo aparece en el borde (DB, JSON).
package money

import (
	"github.com/shopspring/decimal"
)

// MinorPerMajor unidades menores por unidad mayor (100 kobo = 1 naira).
const MinorPerMajor = 100

var hundred = decimal.NewFromInt(MinorPerMajor)

// Amount monto en unidades menores.
type Amount int64

// Zero monto cero.
const Zero Amount = 0

// FromMajor construye un monto desde unidades mayores enteras (ej: 120 naira).
func FromMajor(major int64) Amount { return Amount(major * MinorPerMajor) }

// New construye un monto desde sus partes mayor y menor (ej: 120, 50 → 120.50).
func New(major, minor int64) Amount { return Amount(major*MinorPerMajor + minor) }

// FromDecimal convierte un valor decimal en unidades mayores (ej: 120.50) a Amount.
// Redondea a 2 decimales (half away from zero) antes de convertir.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount(d.Round(2).Mul(hundred).IntPart())
}

// Decimal devuelve el monto en unidades mayores con 2 decimales.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// Split separa el monto en parte entera (naira) y fraccionaria (kobo).
// Para montos negativos ambas partes llevan el signo.
func (a Amount) Split() (major, minor int64) {
	return int64(a) / MinorPerMajor, int64(a) % MinorPerMajor
}

// Major parte entera en unidades mayores.
func (a Amount) Major() int64 { m, _ := a.Split(); return m }

// Minor parte fraccionaria en unidades menores.
func (a Amount) Minor() int64 { _, m := a.Split(); return m }

// Add suma dos montos.
func (a Amount) Add(b Amount) Amount { return a + b }

// Sub resta b de a.
func (a Amount) Sub(b Amount) Amount { return a - b }

// IsPositive true si el monto es mayor que cero.
func (a Amount) IsPositive() bool { return a > 0 }

// IsZero true si el monto es cero.
func (a Amount) IsZero() bool { return a == 0 }

// Abs valor absoluto.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// String representación simple "120.50" (sin separadores ni símbolo).
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// Sum suma una lista de montos.
func Sum(amounts ...Amount) Amount {
	var total Amount
	for _, v := range amounts {
		total += v
	}
	return total
}
