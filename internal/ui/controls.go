package ui

import (
	"math"

	"gol3d/internal/core"
)

// adjustedInt steps value in direction and clamps it to the control bounds.
// ok is false when value already sits on the bound being moved towards.
func adjustedInt(ctrl core.ParameterControl, value, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if ctrl.HasMin {
		lo := int(math.Round(ctrl.Min))
		if target < lo {
			target = lo
		}
	}
	if ctrl.HasMax {
		hi := int(math.Round(ctrl.Max))
		if target > hi {
			target = hi
		}
	}
	return target, target != value
}
