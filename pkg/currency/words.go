package currency

import (
	"strings"

	"github.com/jhoicas/ventas-api/internal/domain/money"
)

var (
	ones = [...]string{
		"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tens = [...]string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
	// escalas cortas (10^3 en 10^3)
	scales = [...]string{
		"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion", "Quintillion",
	}
)

// Words convierte un entero a palabras en inglés con mayúscula inicial por palabra.
// Ej: 2050 → "Two Thousand Fifty", -7 → "Minus Seven".
func Words(n int64) string {
	if n == 0 {
		return ones[0]
	}
	// uint64 evita el overflow de -MinInt64
	var u uint64
	prefix := ""
	if n < 0 {
		prefix = "Minus "
		u = uint64(-(n + 1)) + 1
	} else {
		u = uint64(n)
	}

	var groups []string
	for scale := 0; u > 0; scale++ {
		chunk := u % 1000
		u /= 1000
		if chunk == 0 {
			continue
		}
		w := hundredsWords(chunk)
		if scales[scale] != "" {
			w += " " + scales[scale]
		}
		groups = append(groups, w)
	}
	// los grupos se acumulan de menor a mayor
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return prefix + strings.Join(groups, " ")
}

// hundredsWords convierte 1..999.
func hundredsWords(n uint64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, ones[n])
	default:
		parts = append(parts, tens[n/10])
		if n%10 != 0 {
			parts = append(parts, ones[n%10])
		}
	}
	return strings.Join(parts, " ")
}

// AmountInWords representa el monto como texto para documentos impresos.
// La frase de unidades menores se omite si la parte fraccionaria es cero:
//
//	12050 kobo → "One Hundred Twenty Naira, Fifty Kobo Only"
//	12000 kobo → "One Hundred Twenty Naira Only"
func AmountInWords(a money.Amount, c Currency) string {
	major, minor := SplitParts(a)
	var b strings.Builder
	if a < 0 {
		b.WriteString("Minus ")
	}
	b.WriteString(Words(major))
	b.WriteString(" ")
	b.WriteString(c.Major)
	if minor != 0 {
		b.WriteString(", ")
		b.WriteString(Words(minor))
		b.WriteString(" ")
		b.WriteString(c.Minor)
	}
	b.WriteString(" Only")
	return b.String()
}
