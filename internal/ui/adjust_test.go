package ui

import (
	"testing"

	"feudal-map/internal/core"
)

func TestAdjust(t *testing.T) {
	ctrl := core.ParameterControl{Key: "islet_count", Step: 2, Min: 0, Max: 5, HasMin: true, HasMax: true}
	cases := []struct {
		value, dir int
		want       int
		ok         bool
	}{
		{value: 2, dir: 1, want: 4, ok: true},
		{value: 4, dir: 1, want: 5, ok: true},
		{value: 5, dir: 1, want: 5, ok: false},
		{value: 1, dir: -1, want: 0, ok: true},
		{value: 0, dir: -1, want: 0, ok: false},
	}
	for _, tc := range cases {
		got, ok := adjust(ctrl, tc.value, tc.dir)
		if got != tc.want || ok != tc.ok {
			t.Errorf("adjust(%d, %d) = %d, %v; want %d, %v", tc.value, tc.dir, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAdjustUnbounded(t *testing.T) {
	got, ok := adjust(core.ParameterControl{Key: "seed"}, -3, -1)
	if !ok || got != -4 {
		t.Fatalf("adjust = %d, %v; want -4, true", got, ok)
	}
}
