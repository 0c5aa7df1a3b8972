package service

import "testing"

func TestAccuracyPercent(t *testing.T) {
	cases := []struct {
		correct, total int64
		want           int
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{5, 5, 100},
	}
	for _, tc := range cases {
		if got := AccuracyPercent(tc.correct, tc.total); got != tc.want {
			t.Errorf("AccuracyPercent(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}
}
