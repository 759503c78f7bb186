package gestures

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

// ThumbDetector maps touchpad contact to the thumb.
type ThumbDetector struct {
	Logger zerolog.Logger
}

func (d *ThumbDetector) Name() string {
	return "thumb"
}

func (d *ThumbDetector) Fingers(state openvr.ControllerState, thr settings.Thresholds) []string {
	touched := state.TouchedButton(openvr.ButtonTouchpad)
	if !touched {
		// Some wands report contact only as pad deflection.
		touched = math.Abs(axisX(state, axisTouchpad)) > thr.ThumbTouch
	}
	if touched {
		d.Logger.Trace().Msg("thumb detected")
		return []string{FingerThumb}
	}
	return nil
}

func (d *ThumbDetector) Description() string {
	return "Touchpad touch or pad deflection implies the thumb."
}
