package currency

import (
	"fmt"

	"golang.org/x/text/message"

	"github.com/jhoicas/ventas-api/internal/domain/money"
)

// Format devuelve el monto con símbolo, separador de miles según el locale y 2 decimales.
// Ej: 1205050 kobo → "₦12,050.50".
func Format(a money.Amount, c Currency) string {
	return formatWith(a, c, c.Symbol)
}

// FormatPlain igual que Format pero sin símbolo (para celdas de tablas y CSV).
func FormatPlain(a money.Amount, c Currency) string {
	return formatWith(a, c, "")
}

func formatWith(a money.Amount, c Currency, symbol string) string {
	sign := ""
	if a < 0 {
		sign = "-"
	}
	major, minor := a.Abs().Split()
	p := message.NewPrinter(c.Locale)
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, p.Sprintf("%d", major), minor)
}

// SplitParts separa el monto en la parte entera y la fraccionaria, ambas no negativas.
// Es el extractor que usan los documentos para "X Naira, Y Kobo".
func SplitParts(a money.Amount) (major, minor int64) {
	return a.Abs().Split()
}
