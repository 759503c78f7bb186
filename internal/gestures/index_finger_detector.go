package gestures

import (
	"github.com/rs/zerolog"

	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

// IndexFingerDetector maps trigger activity to the index finger.
type IndexFingerDetector struct {
	Logger zerolog.Logger
}

func (d *IndexFingerDetector) Name() string {
	return "index"
}

func (d *IndexFingerDetector) Fingers(state openvr.ControllerState, thr settings.Thresholds) []string {
	pull := axisX(state, axisTrigger)
	if pull >= thr.Trigger ||
		state.PressedButton(openvr.ButtonTrigger) ||
		state.TouchedButton(openvr.ButtonTrigger) {
		d.Logger.Trace().Float64("trigger", pull).Msg("index finger detected")
		return []string{FingerIndex}
	}
	return nil
}

func (d *IndexFingerDetector) Description() string {
	return "Trigger pull, press or touch implies the index finger."
}
