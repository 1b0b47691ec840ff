package ui

import (
	"testing"

	"gol3d/internal/core"
)

func TestAdjustedInt(t *testing.T) {
	ctrl := core.ParameterControl{
		Key:    "interval_ms",
		Type:   core.ParamTypeInt,
		Step:   50,
		Min:    0,
		Max:    200,
		HasMin: true,
		HasMax: true,
	}

	cases := []struct {
		name      string
		value     int
		direction int
		want      int
		wantOK    bool
	}{
		{"step up", 100, 1, 150, true},
		{"step down", 100, -1, 50, true},
		{"clamp at max", 180, 1, 200, true},
		{"clamp at min", 20, -1, 0, true},
		{"already at max", 200, 1, 200, false},
		{"already at min", 0, -1, 0, false},
	}
	for _, tc := range cases {
		got, ok := adjustedInt(ctrl, tc.value, tc.direction)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("%s: adjustedInt(%d, %d) = %d, %v; want %d, %v", tc.name, tc.value, tc.direction, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestAdjustedIntDefaultsStep(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeInt}
	if got, ok := adjustedInt(ctrl, 7, 1); got != 8 || !ok {
		t.Fatalf("expected unit step without bounds, got %d, %v", got, ok)
	}
	if got, _ := adjustedInt(ctrl, 7, -1); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
}
