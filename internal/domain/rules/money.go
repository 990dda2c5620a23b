package rules

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"eisen_qms/internal/domain"
)

var moneyReplacer = strings.NewReplacer("$", "", ",", "", " ", "", "USD", "", "usd", "")

// ParseMoney reads amounts written the way the dashboard stored them:
// "$1,600.00", "$40/hr", "1600", "USD 40".
func ParseMoney(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	if i := strings.Index(cleaned, "/"); i >= 0 {
		cleaned = cleaned[:i]
	}
	cleaned = moneyReplacer.Replace(cleaned)
	if cleaned == "" {
		return decimal.Zero, domain.NewValidationError("monto", "amount required")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, domain.NewValidationError("monto", fmt.Sprintf("invalid amount %q", s))
	}
	return d, nil
}

// MoneyOrZero is the lenient form of ParseMoney used when reading stored documents.
func MoneyOrZero(s string) decimal.Decimal {
	d, err := ParseMoney(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatMoney renders d as "$1,600.00".
func FormatMoney(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	whole, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	var b strings.Builder
	if d.IsNegative() {
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
	b.WriteString(frac)
	return b.String()
}

// FormatRate renders an hourly rate as "$40/hr".
func FormatRate(d decimal.Decimal) string {
	return "$" + d.String() + "/hr"
}

// PercentString renders a ratio as a two-decimal percentage, e.g. 0.0226 -> "2.26%".
func PercentString(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
