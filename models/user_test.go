package models

import (
	"testing"
)

func TestApplyDebit(t *testing.T) {
	tests := []struct {
		balance int
		amount  int
		want    int
		wantOK  bool
	}{
		{25, PointsPerView, 5, true},
		{15, PointsPerView, 15, false},
		{20, PointsPerView, 0, true},
		{0, PointsPerView, 0, false},
		{300, PointsPerSave, 290, true},
	}

	for _, tc := range tests {
		got, ok := ApplyDebit(tc.balance, tc.amount)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ApplyDebit(%d, %d) = (%d, %v), want (%d, %v)",
				tc.balance, tc.amount, got, ok, tc.want, tc.wantOK)
		}
	}
}
