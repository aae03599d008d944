package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{1234.567, "$1234.57"},
		{-3.2, "-$3.20"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-09-01"); got != "Mon, Sep 1" {
		t.Fatalf("FormatDate = %q, want \"Mon, Sep 1\"", got)
	}
	if got := FormatDate("garbage"); got != "garbage" {
		t.Fatalf("FormatDate on bad input = %q, want passthrough", got)
	}
}
