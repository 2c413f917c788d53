// internal/moeda/moeda.go
package moeda

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Parse converte um valor monetário em texto pt-BR para float64.
// Remove tudo que não for dígito ou vírgula e trata a última vírgula
// como separador decimal: "R$ 1.234,56" -> 1234.56, "R$ 66" -> 66.
// Valores já gravados passam por aqui sempre que precisamos de aritmética.
func Parse(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}
	limpo := b.String()
	if limpo == "" {
		return 0
	}
	if i := strings.LastIndex(limpo, ","); i >= 0 {
		limpo = strings.ReplaceAll(limpo[:i], ",", "") + "." + limpo[i+1:]
	}
	v, err := strconv.ParseFloat(limpo, 64)
	if err != nil {
		return 0
	}
	return v
}

// Format devolve o valor com agrupamento pt-BR e duas casas decimais,
// ex.: 5000 -> "R$ 5.000,00".
func Format(v float64) string {
	return printer.Sprintf("R$ %v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
