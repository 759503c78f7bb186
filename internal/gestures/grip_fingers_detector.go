package gestures

import (
	"github.com/rs/zerolog"

	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

// GripFingersDetector maps grip activity to the middle, ring and pinky
// fingers. Hardware with per-finger axes (slots 2-4) reports each finger
// individually; plain grip axes or the grip button curl all three at once.
type GripFingersDetector struct {
	Logger zerolog.Logger
}

var gripFingerNames = []string{FingerMiddle, FingerRing, FingerPinky}

func (d *GripFingersDetector) Name() string {
	return "grip"
}

func (d *GripFingersDetector) Fingers(state openvr.ControllerState, thr settings.Thresholds) []string {
	var fingers []string
	for i, name := range gripFingerNames {
		if axisX(state, axisGrip+i) >= thr.Grip {
			fingers = append(fingers, name)
		}
	}
	if len(fingers) > 0 {
		return fingers
	}

	if axisX(state, axisGrip) >= thr.Grip || state.PressedButton(openvr.ButtonGrip) {
		d.Logger.Trace().Msg("whole-hand grip detected")
		return append([]string(nil), gripFingerNames...)
	}
	return nil
}

func (d *GripFingersDetector) Description() string {
	return "Per-finger grip axes, else the grip axis/button curling all three."
}
