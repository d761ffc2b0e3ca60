package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Currency symbols for the display currencies selectable in settings.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
}

// CurrencySymbol returns the display symbol for an ISO currency code,
// falling back to the code itself for anything unmapped.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[strings.ToUpper(code)]; ok {
		return sym
	}
	return code
}

// FormatAmount renders a monetary amount with thousands separators and two
// decimals, e.g. 10560 -> "10,560.00".
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatCount renders an integer metric value.
func FormatCount(n int) string {
	return strconv.Itoa(n)
}

// FormatPercent renders a percentage with one decimal, e.g. "12.5%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
