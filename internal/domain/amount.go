package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount for display with thousands
// separators and one decimal place, e.g. 2073.77 -> "2,073.8". Journal
// records keep the exact amount; this is display-only rounding.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(1)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
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
