// Package store holds the latest polled state shared between the tracking
// loop and the render loop.
package store

import (
	"sort"
	"strconv"
	"sync/atomic"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/trackedspace/trackviz/internal/models"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

// PoseStore keeps the most recent pose per device plus the per-hand gesture
// summaries and runtime stats. Writers are the polling services; the UI takes
// a snapshot every frame.
type PoseStore struct {
	devices cmap.ConcurrentMap[string, models.TrackedDevice]
	hands   cmap.ConcurrentMap[string, models.HandGestures]
	stats   atomic.Pointer[models.RuntimeStats]
}

// NewPoseStore returns an empty store.
func NewPoseStore() *PoseStore {
	return &PoseStore{
		devices: cmap.New[models.TrackedDevice](),
		hands:   cmap.New[models.HandGestures](),
	}
}

func deviceKey(index openvr.TrackedDeviceIndex) string {
	return strconv.FormatUint(uint64(index), 10)
}

// Reconcile replaces the device table with the given tick's devices: present
// devices are upserted, devices that vanished since the last tick are dropped.
func (s *PoseStore) Reconcile(devices []models.TrackedDevice) {
	present := make(map[string]struct{}, len(devices))
	for _, d := range devices {
		key := deviceKey(d.Index)
		present[key] = struct{}{}
		s.devices.Set(key, d)
	}
	for _, key := range s.devices.Keys() {
		if _, ok := present[key]; !ok {
			s.devices.Remove(key)
		}
	}
}

// Device returns the latest pose for a device index.
func (s *PoseStore) Device(index openvr.TrackedDeviceIndex) (models.TrackedDevice, bool) {
	return s.devices.Get(deviceKey(index))
}

// Count returns the number of currently tracked devices.
func (s *PoseStore) Count() int {
	return s.devices.Count()
}

// SetHand records the gesture summary for one hand.
func (s *PoseStore) SetHand(hand models.HandGestures) {
	s.hands.Set(hand.Hand, hand)
}

// ClearHand removes a hand's gesture summary, e.g. when its controller drops.
func (s *PoseStore) ClearHand(hand string) {
	s.hands.Remove(hand)
}

// SetStats records the latest runtime stats sample.
func (s *PoseStore) SetStats(stats models.RuntimeStats) {
	s.stats.Store(&stats)
}

// Snapshot returns a coherent copy for rendering, devices ordered by index.
func (s *PoseStore) Snapshot() models.Snapshot {
	items := s.devices.Items()
	devices := make([]models.TrackedDevice, 0, len(items))
	for _, d := range items {
		devices = append(devices, d)
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].Index < devices[j].Index })

	snap := models.Snapshot{Devices: devices}
	if left, ok := s.hands.Get("Left"); ok {
		snap.LeftHand = left
	}
	if right, ok := s.hands.Get("Right"); ok {
		snap.RightHand = right
	}
	snap.Stats = s.stats.Load()
	return snap
}
