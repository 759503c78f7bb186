package openvr

import (
	"math"
	"time"
)

// simRuntimeVersion is what the simulated backend reports for the
// runtime-version gate.
const simRuntimeVersion = "2.5.1"

// Simulated is a System backed by synthetic devices: a headset walking a
// circle, two controllers with pulsing input and two static base stations.
// It exists for demo mode and for tests that need deterministic poses.
type Simulated struct {
	// Now supplies the simulation time. Tests pin it for determinism.
	Now func() time.Time

	start  time.Time
	closed bool
}

var _ System = (*Simulated)(nil)

// NewSimulated returns a simulated system starting at the current time.
func NewSimulated() *Simulated {
	return &Simulated{Now: time.Now, start: time.Now()}
}

// simulated device slots
const (
	simHMD TrackedDeviceIndex = iota
	simLeftController
	simRightController
	simBaseStationA
	simBaseStationB

	simDeviceCount
)

// elapsed returns seconds since the simulation started.
func (s *Simulated) elapsed() float64 {
	return s.Now().Sub(s.start).Seconds()
}

// DevicePoses synthesizes the pose table.
func (s *Simulated) DevicePoses(origin TrackingUniverse) ([]TrackedDevicePose, error) {
	if s.closed {
		return nil, ErrNotInitialized
	}

	t := s.elapsed()
	poses := make([]TrackedDevicePose, MaxTrackedDeviceCount)

	// Headset walks a 0.5m circle at head height, facing along the path.
	heading := t * 0.4
	poses[simHMD] = simPose(0.5*math.Cos(heading), 1.72, 0.5*math.Sin(heading), heading)

	// Controllers swing on either side of the headset.
	poses[simLeftController] = simPose(
		0.8*math.Cos(heading)-0.25, 1.15+0.05*math.Sin(t*2.1), 0.8*math.Sin(heading), heading+0.3)
	poses[simRightController] = simPose(
		0.8*math.Cos(heading)+0.25, 1.15+0.05*math.Cos(t*1.7), 0.8*math.Sin(heading), heading-0.3)

	// Base stations sit in opposite corners of the play area.
	poses[simBaseStationA] = simPose(-1.8, 2.0, -1.8, math.Pi/4)
	poses[simBaseStationB] = simPose(1.8, 2.0, 1.8, -3*math.Pi/4)

	return poses, nil
}

// simPose builds a connected, valid pose at (x, y, z) with a yaw rotation.
func simPose(x, y, z, yaw float64) TrackedDevicePose {
	sin, cos := float32(math.Sin(yaw)), float32(math.Cos(yaw))
	return TrackedDevicePose{
		DeviceToAbsoluteTracking: HmdMatrix34{M: [3][4]float32{
			{cos, 0, sin, float32(x)},
			{0, 1, 0, float32(y)},
			{-sin, 0, cos, float32(z)},
		}},
		TrackingResult:    TrackingResultRunningOK,
		PoseIsValid:       1,
		DeviceIsConnected: 1,
	}
}

// DeviceClass reports the class of a simulated slot.
func (s *Simulated) DeviceClass(index TrackedDeviceIndex) DeviceClass {
	switch index {
	case simHMD:
		return DeviceClassHMD
	case simLeftController, simRightController:
		return DeviceClassController
	case simBaseStationA, simBaseStationB:
		return DeviceClassTrackingReference
	default:
		return DeviceClassInvalid
	}
}

// ControllerRole reports the hand of a simulated controller.
func (s *Simulated) ControllerRole(index TrackedDeviceIndex) ControllerRole {
	switch index {
	case simLeftController:
		return ControllerRoleLeftHand
	case simRightController:
		return ControllerRoleRightHand
	default:
		return ControllerRoleInvalid
	}
}

// ControllerState synthesizes pulsing trigger, grip and touchpad input so the
// gesture readout has something to show.
func (s *Simulated) ControllerState(index TrackedDeviceIndex) (ControllerState, bool) {
	if s.closed || (index != simLeftController && index != simRightController) {
		return ControllerState{}, false
	}

	t := s.elapsed()
	phase := 0.0
	if index == simRightController {
		phase = math.Pi
	}

	trigger := float32(math.Max(0, math.Sin(t*0.9+phase)))
	grip := float32(math.Max(0, math.Sin(t*0.5+phase+1.3)))
	thumbX := float32(0.4 * math.Sin(t*1.6+phase))

	state := ControllerState{
		PacketNum: uint32(t * 1000),
		Axes: [5]ControllerAxis{
			{X: thumbX, Y: 0},
			{X: trigger, Y: 0},
			{X: grip, Y: 0},
		},
	}
	if trigger > 0.9 {
		state.Pressed |= ButtonTrigger.Mask()
	}
	if trigger > 0.1 {
		state.Touched |= ButtonTrigger.Mask()
	}
	if math.Sin(t*1.6+phase) > 0 {
		state.Touched |= ButtonTouchpad.Mask()
	}
	return state, true
}

// StringProperty reports fixed identity strings for the simulated hardware.
func (s *Simulated) StringProperty(index TrackedDeviceIndex, prop DeviceProperty) (string, error) {
	switch prop {
	case PropManufacturerName:
		return "trackviz", nil
	case PropModelNumber:
		return "simulated-" + s.DeviceClass(index).String(), nil
	case PropSerialNumber:
		return "SIM-0000", nil
	default:
		return s.DeviceClass(index).String(), nil
	}
}

// RuntimeVersion reports the simulated runtime version.
func (s *Simulated) RuntimeVersion() string { return simRuntimeVersion }

// Close marks the simulation stopped.
func (s *Simulated) Close() error {
	s.closed = true
	return nil
}
