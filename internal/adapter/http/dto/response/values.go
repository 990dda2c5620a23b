package response

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// amount renders money as a JSON number with two decimals.
func amount(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func quantity(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
