package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney parses a CSV money cell into a float64 dollar amount.
// Tolerates a leading $, thousands separators, and surrounding whitespace.
// Empty or unparseable cells default to 0.
func ParseMoney(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// Round1 rounds to 1 decimal place, half away from zero.
func Round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// Round2 rounds to 2 decimal places, half away from zero.
// All monetary report values go through this.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
