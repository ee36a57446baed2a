package core

import (
	"bytes"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date. The zero Date marks a missing or unparseable
// value; monthly filters never match it.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate converts a YYYY-MM-DD string to a Date. Invalid input yields
// the zero Date.
func ParseDate(s string) Date {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}
	}
	return Date{t}
}

// String renders the date as YYYY-MM-DD, or empty for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format(dateLayout)
}

// SameMonth reports whether the date falls in the calendar month and year
// of t. The zero Date matches nothing.
func (d Date) SameMonth(t time.Time) bool {
	if d.IsZero() {
		return false
	}
	return d.Time.Year() == t.Year() && d.Time.Month() == t.Month()
}

// MarshalJSON emits the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON accepts a "YYYY-MM-DD" string. Null, empty, or malformed
// input decodes as the zero Date rather than failing the whole blob.
func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		d.Time = time.Time{}
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		d.Time = time.Time{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}
