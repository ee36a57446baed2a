package core

import (
	"encoding/json"
	"testing"
)

func TestParseAmountLenient(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain decimal", "12.34", "12.34"},
		{"integer", "500", "500.00"},
		{"whitespace", "  7.5  ", "7.50"},
		{"negative passes through", "-3", "-3.00"},
		{"empty is zero", "", "0.00"},
		{"garbage is zero", "abc", "0.00"},
		{"partial garbage is zero", "12abc", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input).Format()
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestAmountJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"number", `12.34`, "12.34"},
		{"numeric string", `"56.78"`, "56.78"},
		{"null is zero", `null`, "0.00"},
		{"garbage string is zero", `"oops"`, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tt.input), &a); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.input, err)
			}
			if got := a.Format(); got != tt.want {
				t.Errorf("unmarshal %q = %s, want %s", tt.input, got, tt.want)
			}
		})
	}

	// Marshals back as a bare number with full precision.
	out, err := json.Marshal(MustAmount("10.125"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "10.125" {
		t.Errorf("marshal = %s, want 10.125", out)
	}
}

func TestAmountRound2(t *testing.T) {
	if got := MustAmount("10.125").Round2().String(); got != "10.13" {
		t.Errorf("Round2(10.125) = %s, want 10.13", got)
	}
	if got := MustAmount("10.124").Round2().String(); got != "10.12" {
		t.Errorf("Round2(10.124) = %s, want 10.12", got)
	}
}

func TestAmountComparisons(t *testing.T) {
	a, b := MustAmount("40"), MustAmount("100")
	if !a.LessThan(b) {
		t.Error("40 should be less than 100")
	}
	if a.GreaterThan(b) {
		t.Error("40 should not be greater than 100")
	}
	if !MustAmount("-1").IsNegative() {
		t.Error("-1 should be negative")
	}
	if (Amount{}).IsNegative() {
		t.Error("zero should not be negative")
	}
}
