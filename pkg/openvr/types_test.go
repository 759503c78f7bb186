package openvr

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// TestTrackedDevicePoseLayout pins the Go struct to the C ABI the runtime
// writes into: sizeof(TrackedDevicePose_t) == 80 with the matrix first.
func TestTrackedDevicePoseLayout(t *testing.T) {
	var pose TrackedDevicePose

	assert.Equal(t, uintptr(80), unsafe.Sizeof(pose))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(pose.DeviceToAbsoluteTracking))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(pose.Velocity))
	assert.Equal(t, uintptr(60), unsafe.Offsetof(pose.AngularVelocity))
	assert.Equal(t, uintptr(72), unsafe.Offsetof(pose.TrackingResult))
	assert.Equal(t, uintptr(76), unsafe.Offsetof(pose.PoseIsValid))
	assert.Equal(t, uintptr(77), unsafe.Offsetof(pose.DeviceIsConnected))
}

func TestButtonMasks(t *testing.T) {
	assert.Equal(t, uint64(1)<<2, ButtonGrip.Mask())
	assert.Equal(t, uint64(1)<<32, ButtonTouchpad.Mask())
	assert.Equal(t, uint64(1)<<33, ButtonTrigger.Mask())

	state := ControllerState{
		Pressed: ButtonTrigger.Mask(),
		Touched: ButtonTouchpad.Mask() | ButtonGrip.Mask(),
	}
	assert.True(t, state.PressedButton(ButtonTrigger))
	assert.False(t, state.PressedButton(ButtonGrip))
	assert.True(t, state.TouchedButton(ButtonTouchpad))
	assert.True(t, state.TouchedButton(ButtonGrip))
}

func TestDeviceClassString(t *testing.T) {
	assert.Equal(t, "HMD", DeviceClassHMD.String())
	assert.Equal(t, "Controller", DeviceClassController.String())
	assert.Equal(t, "Tracker", DeviceClassGenericTracker.String())
	assert.Equal(t, "Base Station", DeviceClassTrackingReference.String())
	assert.Equal(t, "Device", DeviceClass(99).String())
}

func TestControllerRoleString(t *testing.T) {
	assert.Equal(t, "Left", ControllerRoleLeftHand.String())
	assert.Equal(t, "Right", ControllerRoleRightHand.String())
	assert.Equal(t, "", ControllerRoleInvalid.String())
}
