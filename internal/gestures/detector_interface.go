package gestures

import (
	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

// Finger display names, as shown in the hand overlay.
const (
	FingerThumb  = "Thumb"
	FingerIndex  = "Index Finger"
	FingerMiddle = "Middle Finger"
	FingerRing   = "Ring Finger"
	FingerPinky  = "Pinky Finger"
)

// Controller axis slots as SteamVR wands report them: 0 touchpad, 1 trigger,
// 2-4 grip/finger axes where the hardware has them.
const (
	axisTouchpad = 0
	axisTrigger  = 1
	axisGrip     = 2
)

// Detector infers which fingers a controller's input state implies.
type Detector interface {
	// Name identifies the detector (e.g. "thumb").
	Name() string
	// Fingers returns the finger names the state implies under the given
	// thresholds.
	Fingers(state openvr.ControllerState, thr settings.Thresholds) []string
	// Description says what the heuristic keys on.
	Description() string
}

// axisX reads the X deflection of an axis slot.
func axisX(state openvr.ControllerState, slot int) float64 {
	if slot < 0 || slot >= len(state.Axes) {
		return 0
	}
	return float64(state.Axes[slot].X)
}
