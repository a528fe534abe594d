package common

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a price in Brazilian real, e.g. 149.9 -> "R$ 149,90".
func FormatBRL(v float64) string {
	return brlPrinter.Sprintf("%v", currency.Symbol(currency.BRL.Amount(v)))
}
