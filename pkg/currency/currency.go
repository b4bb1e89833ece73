// Package currency formatea montos (money.Amount) como texto para pantallas y
// documentos impresos: "₦12,050.50" y "One Hundred Twenty Naira, Fifty Kobo Only".
package currency

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Currency describe una moneda para formateo y conversión a palabras.
type Currency struct {
	Code   string       // ISO 4217
	Symbol string       // ej: "₦"
	Major  string       // nombre de la unidad mayor, ej: "Naira"
	Minor  string       // nombre de la unidad menor, ej: "Kobo"
	Locale language.Tag // agrupación de miles
}

// Monedas soportadas.
var (
	NGN = Currency{Code: "NGN", Symbol: "₦", Major: "Naira", Minor: "Kobo", Locale: language.English}
	GHS = Currency{Code: "GHS", Symbol: "GH₵", Major: "Cedis", Minor: "Pesewas", Locale: language.English}
	USD = Currency{Code: "USD", Symbol: "$", Major: "Dollars", Minor: "Cents", Locale: language.AmericanEnglish}
)

var byCode = map[string]Currency{
	NGN.Code: NGN,
	GHS.Code: GHS,
	USD.Code: USD,
}

// Lookup devuelve la moneda por su código ISO (sin distinguir mayúsculas).
func Lookup(code string) (Currency, error) {
	c, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Currency{}, fmt.Errorf("currency: código no soportado %q", code)
	}
	return c, nil
}
