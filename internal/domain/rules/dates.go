package rules

import (
	"fmt"
	"strings"
	"time"

	"eisen_qms/internal/domain"
)

const DateLayout = "2006-01-02"

// ParseDate reads a calendar date. Full RFC 3339 timestamps are accepted and
// truncated to their date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.NewValidationError("fecha", "date required")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return time.Time{}, domain.NewValidationError("fecha", fmt.Sprintf("invalid date %q, want YYYY-MM-DD", s))
}

// FormatDate renders t as YYYY-MM-DD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DateOf drops the clock part of t, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func AddDays(t time.Time, days int) time.Time {
	d := DateOf(t)
	return time.Date(d.Year(), d.Month(), d.Day()+days, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the calendar-day delta to - from. It works on Unix seconds
// since a time.Duration cannot span more than about 292 years.
func DaysBetween(from, to time.Time) int {
	return int((DateOf(to).Unix() - DateOf(from).Unix()) / secondsPerDay)
}
