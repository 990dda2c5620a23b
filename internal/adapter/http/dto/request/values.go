package request

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/rules"
)

var null = []byte("null")

// Money accepts a JSON number or a display string such as "$1,600.00" or "$40/hr".
type Money struct {
	Value decimal.Decimal
	Set   bool
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) {
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		v, err := rules.ParseMoney(raw)
		if err != nil {
			return err
		}
		m.Value, m.Set = v, true
		return nil
	}

	v, err := decimal.NewFromString(string(data))
	if err != nil {
		return domain.NewValidationError("monto", "invalid amount "+string(data))
	}
	m.Value, m.Set = v, true
	return nil
}

// Date is a calendar date sent as YYYY-MM-DD. Empty strings and null leave it zero.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.NewValidationError("fecha", "dates must be strings in YYYY-MM-DD form")
	}
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	t, err := rules.ParseDate(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
