package utils

import "testing"

func TestFormatUGX(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "UGX 0"},
		{950, "UGX 950"},
		{50_000, "UGX 50,000"},
		{1_234_567, "UGX 1,234,567"},
		{-50_000, "-UGX 50,000"},
	}
	for _, tc := range cases {
		if got := FormatUGX(tc.in); got != tc.want {
			t.Fatalf("FormatUGX(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	if got := FormatUSD(13.513513); got != "$13.51" {
		t.Fatalf("FormatUSD rounded wrong: %q", got)
	}
	if got := FormatUSD(0); got != "$0.00" {
		t.Fatalf("FormatUSD zero wrong: %q", got)
	}
}
