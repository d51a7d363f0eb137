package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ClampPercent converte uma razão em percentual entre 0 e 100, truncado
func ClampPercent(ratio float64) float64 {
	return math.Trunc(math.Min(math.Max(ratio, 0), 1) * 100)
}

// FormatThousands formata com duas casas e separador de milhar (1,442,909.46)
func FormatThousands(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)

	return b.String()
}

// FormatCurrency formata um valor em reais no padrão do dashboard (R$ 1,442,909.46)
func FormatCurrency(d decimal.Decimal) string {
	return "R$ " + FormatThousands(d)
}
