// Package core holds the domain model of the ledger: record types, the
// lenient value types they are built from, and the derived aggregations
// the dashboard renders.
//
// This file contains the Amount value type. Amounts keep full precision in
// storage; rounding to two places happens only for display.
package core

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a decimal value used for monetary fields and quantities.
//
// Parsing is deliberately lenient: anything that does not parse as a number
// becomes zero instead of an error. Downstream aggregation treats bad input
// as a zero contribution rather than rejecting the record.
type Amount struct {
	decimal.Decimal
}

// NewAmount builds an Amount from an int64.
func NewAmount(v int64) Amount {
	return Amount{decimal.NewFromInt(v)}
}

// ParseAmount converts a string to an Amount. Invalid input yields zero.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return Amount{d}
}

// MustAmount parses a decimal literal and panics on failure. Test helper.
func MustAmount(s string) Amount {
	return Amount{decimal.RequireFromString(s)}
}

func (a Amount) Add(b Amount) Amount { return Amount{a.Decimal.Add(b.Decimal)} }
func (a Amount) Sub(b Amount) Amount { return Amount{a.Decimal.Sub(b.Decimal)} }

// LessThan reports a < b.
func (a Amount) LessThan(b Amount) bool { return a.Decimal.Cmp(b.Decimal) < 0 }

// GreaterThan reports a > b.
func (a Amount) GreaterThan(b Amount) bool { return a.Decimal.Cmp(b.Decimal) > 0 }

// IsNegative reports a < 0.
func (a Amount) IsNegative() bool { return a.Decimal.Sign() < 0 }

// Round2 rounds half away from zero to two decimal places.
func (a Amount) Round2() Amount {
	return Amount{a.Decimal.Round(2)}
}

// Format renders the amount with exactly two decimal places for display.
func (a Amount) Format() string {
	return a.Decimal.StringFixed(2)
}

// MarshalJSON emits a bare JSON number, matching the stored document shape.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, or null. Anything
// else decodes as zero. Blobs written by earlier versions of the app may
// carry null where a numeric parse failed at entry time.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		a.Decimal = decimal.Decimal{}
		return nil
	}
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		a.Decimal = decimal.Decimal{}
		return nil
	}
	a.Decimal = d
	return nil
}
