package gestures

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/internal/utils"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

var testThresholds = settings.Thresholds{
	Trigger:    0.30,
	Grip:       0.30,
	ThumbTouch: 0.01,
}

func stateWithAxes(axes ...openvr.ControllerAxis) openvr.ControllerState {
	var state openvr.ControllerState
	copy(state.Axes[:], axes)
	return state
}

func TestIndexFingerDetector(t *testing.T) {
	d := &IndexFingerDetector{Logger: zerolog.Nop()}

	tests := []struct {
		name     string
		state    openvr.ControllerState
		expected []string
	}{
		{
			name:     "idle trigger",
			state:    stateWithAxes(openvr.ControllerAxis{}, openvr.ControllerAxis{X: 0.1}),
			expected: nil,
		},
		{
			name:     "trigger past threshold",
			state:    stateWithAxes(openvr.ControllerAxis{}, openvr.ControllerAxis{X: 0.5}),
			expected: []string{FingerIndex},
		},
		{
			name: "trigger pressed without axis",
			state: openvr.ControllerState{
				Pressed: openvr.ButtonTrigger.Mask(),
			},
			expected: []string{FingerIndex},
		},
		{
			name: "trigger touched without axis",
			state: openvr.ControllerState{
				Touched: openvr.ButtonTrigger.Mask(),
			},
			expected: []string{FingerIndex},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.Fingers(tt.state, testThresholds))
		})
	}
}

func TestThumbDetector(t *testing.T) {
	d := &ThumbDetector{Logger: zerolog.Nop()}

	idle := openvr.ControllerState{}
	assert.Nil(t, d.Fingers(idle, testThresholds))

	touched := openvr.ControllerState{Touched: openvr.ButtonTouchpad.Mask()}
	assert.Equal(t, []string{FingerThumb}, d.Fingers(touched, testThresholds))

	// Pad deflection alone also counts, in either direction.
	deflected := stateWithAxes(openvr.ControllerAxis{X: -0.2})
	assert.Equal(t, []string{FingerThumb}, d.Fingers(deflected, testThresholds))
}

func TestGripFingersDetector_PerFingerAxes(t *testing.T) {
	d := &GripFingersDetector{Logger: zerolog.Nop()}

	// Middle (axis 2) and pinky (axis 4) curled, ring idle.
	state := stateWithAxes(
		openvr.ControllerAxis{},
		openvr.ControllerAxis{},
		openvr.ControllerAxis{X: 0.8},
		openvr.ControllerAxis{X: 0.05},
		openvr.ControllerAxis{X: 0.6},
	)
	assert.Equal(t, []string{FingerMiddle, FingerPinky}, d.Fingers(state, testThresholds))
}

func TestGripFingersDetector_WholeHandFallback(t *testing.T) {
	d := &GripFingersDetector{Logger: zerolog.Nop()}

	pressed := openvr.ControllerState{Pressed: openvr.ButtonGrip.Mask()}
	assert.Equal(t, []string{FingerMiddle, FingerRing, FingerPinky},
		d.Fingers(pressed, testThresholds))

	idle := openvr.ControllerState{}
	assert.Nil(t, d.Fingers(idle, testThresholds))
}

func TestRegistry_Evaluate(t *testing.T) {
	pool := utils.NewWorkerPool(2)
	defer pool.Shutdown()

	r := NewDefaultRegistry(pool, zerolog.Nop())
	assert.Len(t, r.Detectors(), 3)

	// Trigger pulled, touchpad touched and grip pressed: every finger fires.
	state := stateWithAxes(openvr.ControllerAxis{}, openvr.ControllerAxis{X: 0.9})
	state.Touched = openvr.ButtonTouchpad.Mask()
	state.Pressed = openvr.ButtonGrip.Mask()

	fingers := r.Evaluate(state, testThresholds)
	assert.Equal(t, []string{
		FingerIndex, FingerThumb, FingerMiddle, FingerRing, FingerPinky,
	}, fingers)

	// Idle state maps to no fingers.
	assert.Empty(t, r.Evaluate(openvr.ControllerState{}, testThresholds))
}
