package repository

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase/interfaces"
)

// The flex* types accept every shape a field has been stored in
// (numbers, formatted strings, booleans spelled as strings) and always write
// the canonical one.

var jsonNull = []byte("null")

// flexMoney reads 1600, "1600", "$1,600.00" or "$40/hr"; it writes a JSON number.
type flexMoney struct {
	decimal.Decimal
}

func (m *flexMoney) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) || len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		m.Decimal = rules.MoneyOrZero(s)
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return nil
	}
	m.Decimal = d
	return nil
}

func (m flexMoney) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.StringFixed(2)), nil
}

func money(d decimal.Decimal) flexMoney { return flexMoney{Decimal: d} }

// flexInt reads 9720, "9720" or "9,720".
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) || len(b) == 0 {
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	}
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		*n = flexInt(v)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*n = flexInt(int(f))
	}
	return nil
}

// flexBool reads true/false, "true"/"false", numbers, and treats any other
// non-empty string as true (a stored PO number marks the PO as present).
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) || len(b) == 0 {
		return nil
	}
	switch b[0] {
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = flexBool(v)
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		*f = flexBool(s != "" && !strings.EqualFold(s, "false") && s != "0")
	default:
		*f = flexBool(string(b) != "0")
	}
	return nil
}

// flexDate reads "2026-02-10", an RFC 3339 timestamp or an exported Firestore
// timestamp object. Dates are written as "2006-01-02".
type flexDate struct {
	time.Time
}

func (d *flexDate) UnmarshalJSON(b []byte) error {
	t, err := parseStoredTime(b)
	if err != nil {
		return err
	}
	d.Time = rules.DateOf(t)
	return nil
}

func (d flexDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(rules.FormatDate(d.Time))
}

func dateOf(t time.Time) flexDate { return flexDate{Time: t} }

// flexTime is flexDate keeping the clock; it is written as RFC 3339.
type flexTime struct {
	time.Time
}

func (d *flexTime) UnmarshalJSON(b []byte) error {
	t, err := parseStoredTime(b)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d flexTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.UTC().Format(time.RFC3339))
}

func timeOf(t time.Time) flexTime { return flexTime{Time: t} }

type storedTimestamp struct {
	Seconds  *int64 `json:"seconds"`
	USeconds *int64 `json:"_seconds"`
}

func parseStoredTime(b []byte) (time.Time, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) || len(b) == 0 {
		return time.Time{}, nil
	}
	switch b[0] {
	case '{':
		var ts storedTimestamp
		if err := json.Unmarshal(b, &ts); err != nil {
			return time.Time{}, err
		}
		switch {
		case ts.Seconds != nil:
			return time.Unix(*ts.Seconds, 0).UTC(), nil
		case ts.USeconds != nil:
			return time.Unix(*ts.USeconds, 0).UTC(), nil
		}
		return time.Time{}, nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return time.Time{}, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, nil
		}
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t.UTC(), nil
		}
		if t, err := rules.ParseDate(s); err == nil {
			return t, nil
		}
	}
	// unreadable dates are treated as absent
	return time.Time{}, nil
}

// decodeDocument converts a stored document into its typed form.
func decodeDocument(doc interfaces.Document, out any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// encodeDocument converts a typed document into the map handed to the store.
// Numbers stay json.Number so no precision is lost on the way.
func encodeDocument(in any) (interfaces.Document, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc interfaces.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
