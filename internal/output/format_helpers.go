package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a dollar amount with thousands separators and
// cents, e.g. $206,000.00. Kept here so every formatter renders money
// identically and the grouping logic is unit tested in isolation.
func FormatCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	whole, cents, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}

// FormatPercent renders a percentage with one decimal, e.g. 14.0%.
func FormatPercent(pct float64) string {
	return decimal.NewFromFloat(pct).Round(1).StringFixed(1) + "%"
}

// FormatCount renders a whole count, e.g. 1680.
func FormatCount(n float64) string {
	return decimal.NewFromFloat(n).Round(0).StringFixed(0)
}

// ParseCurrencyInput accepts operator-typed currency ("$206,000", "1500.25")
// and returns its numeric value.
func ParseCurrencyInput(s string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, fmt.Errorf("empty currency value")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid currency value %q: %w", s, err)
	}
	return d.InexactFloat64(), nil
}
