package store

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackedspace/trackviz/internal/models"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

func device(index uint32, class openvr.DeviceClass, x float64) models.TrackedDevice {
	return models.TrackedDevice{
		Index:    index,
		Class:    class,
		Position: mgl64.Vec3{x, 1.7, 0},
	}
}

func TestPoseStore_ReconcileAndSnapshot(t *testing.T) {
	s := NewPoseStore()

	s.Reconcile([]models.TrackedDevice{
		device(3, openvr.DeviceClassTrackingReference, 1.8),
		device(0, openvr.DeviceClassHMD, 0),
		device(1, openvr.DeviceClassController, -0.3),
	})
	assert.Equal(t, 3, s.Count())

	snap := s.Snapshot()
	require.Len(t, snap.Devices, 3)

	// Snapshot is ordered by device index regardless of insert order.
	assert.Equal(t, uint32(0), snap.Devices[0].Index)
	assert.Equal(t, uint32(1), snap.Devices[1].Index)
	assert.Equal(t, uint32(3), snap.Devices[2].Index)

	// A device missing from the next tick is dropped.
	s.Reconcile([]models.TrackedDevice{
		device(0, openvr.DeviceClassHMD, 0.1),
	})
	assert.Equal(t, 1, s.Count())

	_, ok := s.Device(3)
	assert.False(t, ok)

	hmd, ok := s.Device(0)
	require.True(t, ok)
	assert.InDelta(t, 0.1, hmd.Position.X(), 1e-9)
}

func TestPoseStore_Hands(t *testing.T) {
	s := NewPoseStore()

	s.SetHand(models.HandGestures{Hand: "Left", Fingers: []string{"Thumb"}})
	s.SetHand(models.HandGestures{Hand: "Right"})

	snap := s.Snapshot()
	assert.Equal(t, []string{"Thumb"}, snap.LeftHand.Fingers)
	assert.Empty(t, snap.RightHand.Fingers)

	s.ClearHand("Left")
	snap = s.Snapshot()
	assert.Empty(t, snap.LeftHand.Fingers)
}

func TestPoseStore_Stats(t *testing.T) {
	s := NewPoseStore()
	assert.Nil(t, s.Snapshot().Stats)

	s.SetStats(models.RuntimeStats{CPUPercent: 12.5, Goroutines: 9, SampledAt: time.Now()})

	snap := s.Snapshot()
	require.NotNil(t, snap.Stats)
	assert.InDelta(t, 12.5, snap.Stats.CPUPercent, 1e-9)
	assert.Equal(t, 9, snap.Stats.Goroutines)
}
