package payments

import "testing"

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{amount: 10, want: 1000},
		{amount: 0.01, want: 1},
		{amount: 10.004, want: 1000},
		{amount: 10.005, want: 1001}, // half rounds up, applied once
		{amount: 10.006, want: 1001},
		{amount: 19.99, want: 1999},
		{amount: 123456.78, want: 12345678},
	}
	for _, tc := range cases {
		if got := MinorUnits(tc.amount); got != tc.want {
			t.Fatalf("MinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}
