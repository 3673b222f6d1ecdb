package cli

import "testing"

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		price float64
		want  string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1,000"},
		{250000, "250,000"},
		{4500000, "4,500,000"},
		{12850000, "12,850,000"},
		{1234567890, "1,234,567,890"},
		{999.5, "999.50"},
		{1500000.25, "1,500,000.25"},
	}

	for _, tc := range cases {
		if got := formatPrice(tc.price); got != tc.want {
			t.Errorf("formatPrice(%v) = %q, want %q", tc.price, got, tc.want)
		}
	}
}
