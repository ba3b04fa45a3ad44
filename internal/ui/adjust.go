package ui

import "feudal-map/internal/core"

// adjust applies one +/- step to value, honouring the control's bounds. It
// reports false when the value is already pinned at the bound in that
// direction.
func adjust(ctrl core.ParameterControl, value, direction int) (int, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if ctrl.HasMin && target < ctrl.Min {
		if direction < 0 && value <= ctrl.Min {
			return value, false
		}
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		if direction > 0 && value >= ctrl.Max {
			return value, false
		}
		target = ctrl.Max
	}
	return target, true
}
