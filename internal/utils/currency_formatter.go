package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a decimal amount string. Anything unparsable counts as
// zero, matching how the keypad and the ledger totals treat bad input.
func ParseAmount(amountStr string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(amountStr))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders an amount with two fraction digits, e.g. "45.50".
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatRupees renders an amount for display, e.g. "₹45.50".
func FormatRupees(d decimal.Decimal) string {
	return fmt.Sprintf("₹%s", FormatAmount(d))
}

// FormatPlain renders a float preset or price without trailing zeros, e.g. 15 -> "15", 12.5 -> "12.5".
func FormatPlain(v float64) string {
	return decimal.NewFromFloat(v).String()
}
