package openvr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pinnedSim returns a simulated system frozen at start+offset.
func pinnedSim(offset time.Duration) *Simulated {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Simulated{
		Now:   func() time.Time { return start.Add(offset) },
		start: start,
	}
}

func TestSimulated_DevicePoses(t *testing.T) {
	sim := pinnedSim(0)

	poses, err := sim.DevicePoses(TrackingUniverseStanding)
	require.NoError(t, err)
	require.Len(t, poses, MaxTrackedDeviceCount)

	// At t=0 the headset sits at (0.5, 1.72, 0) facing along the circle.
	hmd := poses[simHMD]
	assert.True(t, hmd.Connected())
	assert.True(t, hmd.Valid())
	assert.InDelta(t, 0.5, hmd.DeviceToAbsoluteTracking.M[0][3], 1e-6)
	assert.InDelta(t, 1.72, hmd.DeviceToAbsoluteTracking.M[1][3], 1e-6)
	assert.InDelta(t, 0, hmd.DeviceToAbsoluteTracking.M[2][3], 1e-6)

	// Base stations hold opposite corners.
	assert.InDelta(t, -1.8, poses[simBaseStationA].DeviceToAbsoluteTracking.M[0][3], 1e-6)
	assert.InDelta(t, 1.8, poses[simBaseStationB].DeviceToAbsoluteTracking.M[0][3], 1e-6)

	// Slots past the simulated devices stay empty.
	empty := poses[simDeviceCount]
	assert.False(t, empty.Connected())
	assert.False(t, empty.Valid())
}

func TestSimulated_DevicePosesMoveOverTime(t *testing.T) {
	at0 := pinnedSim(0)
	at2 := pinnedSim(2 * time.Second)

	poses0, err := at0.DevicePoses(TrackingUniverseStanding)
	require.NoError(t, err)
	poses2, err := at2.DevicePoses(TrackingUniverseStanding)
	require.NoError(t, err)

	assert.NotEqual(t,
		poses0[simHMD].DeviceToAbsoluteTracking,
		poses2[simHMD].DeviceToAbsoluteTracking,
		"headset must move between ticks")
}

func TestSimulated_DeviceClasses(t *testing.T) {
	sim := pinnedSim(0)

	assert.Equal(t, DeviceClassHMD, sim.DeviceClass(simHMD))
	assert.Equal(t, DeviceClassController, sim.DeviceClass(simLeftController))
	assert.Equal(t, DeviceClassController, sim.DeviceClass(simRightController))
	assert.Equal(t, DeviceClassTrackingReference, sim.DeviceClass(simBaseStationA))
	assert.Equal(t, DeviceClassTrackingReference, sim.DeviceClass(simBaseStationB))
	assert.Equal(t, DeviceClassInvalid, sim.DeviceClass(simDeviceCount))

	assert.Equal(t, ControllerRoleLeftHand, sim.ControllerRole(simLeftController))
	assert.Equal(t, ControllerRoleRightHand, sim.ControllerRole(simRightController))
	assert.Equal(t, ControllerRoleInvalid, sim.ControllerRole(simHMD))
}

func TestSimulated_ControllerState(t *testing.T) {
	// sin(1.8*0.9) ≈ 0.999: trigger pulled past both the press and touch
	// thresholds on the left controller.
	sim := pinnedSim(1800 * time.Millisecond)

	state, ok := sim.ControllerState(simLeftController)
	require.True(t, ok)
	assert.Greater(t, state.Axes[1].X, float32(0.9))
	assert.True(t, state.PressedButton(ButtonTrigger))
	assert.True(t, state.TouchedButton(ButtonTrigger))

	// Non-controller slots report no state.
	_, ok = sim.ControllerState(simHMD)
	assert.False(t, ok)
	_, ok = sim.ControllerState(simBaseStationA)
	assert.False(t, ok)
}

func TestSimulated_Close(t *testing.T) {
	sim := pinnedSim(0)
	require.NoError(t, sim.Close())

	_, err := sim.DevicePoses(TrackingUniverseStanding)
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, ok := sim.ControllerState(simLeftController)
	assert.False(t, ok)
}

func TestSimulated_Identity(t *testing.T) {
	sim := pinnedSim(0)

	assert.Equal(t, simRuntimeVersion, sim.RuntimeVersion())

	model, err := sim.StringProperty(simHMD, PropModelNumber)
	require.NoError(t, err)
	assert.Equal(t, "simulated-HMD", model)

	manufacturer, err := sim.StringProperty(simHMD, PropManufacturerName)
	require.NoError(t, err)
	assert.Equal(t, "trackviz", manufacturer)
}
