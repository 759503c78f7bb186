package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/trackedspace/trackviz/internal/gestures"
	"github.com/trackedspace/trackviz/internal/models"
	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/internal/store"
	"github.com/trackedspace/trackviz/internal/utils"
	"github.com/trackedspace/trackviz/pkg/openvr"
	"github.com/trackedspace/trackviz/pkg/projection"
)

// TrackingService polls the VR runtime for device poses on a fixed cadence
// and reconciles the pose store with what it finds.
type TrackingService struct {
	// Configuration fields
	universe openvr.TrackingUniverse
	interval time.Duration

	// Dependencies
	system    openvr.System
	poseStore *store.PoseStore
	gestures  *gestures.Registry
	settings  *settings.Store
	clock     clock.Clock
	logger    zerolog.Logger

	// Internal state management
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	running    bool
	modelCache map[openvr.TrackedDeviceIndex]string
}

// NewTrackingService creates a new TrackingService instance.
func NewTrackingService(universe openvr.TrackingUniverse, interval time.Duration, system openvr.System,
	poseStore *store.PoseStore, gestureRegistry *gestures.Registry, settingsStore *settings.Store,
	clk clock.Clock, logger zerolog.Logger) *TrackingService {
	return &TrackingService{
		universe:   universe,
		interval:   interval,
		system:     system,
		poseStore:  poseStore,
		gestures:   gestureRegistry,
		settings:   settingsStore,
		clock:      clk,
		logger:     logger,
		modelCache: make(map[openvr.TrackedDeviceIndex]string),
	}
}

// Start launches the polling loop.
func (t *TrackingService) Start() error {
	if t.running {
		t.logger.Warn().Msg("TrackingService is already running")
		return errors.New("tracking service is already running")
	}

	t.ctx, t.cancel = context.WithCancel(context.Background())
	t.running = true

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		ticker := t.clock.Ticker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := t.pollOnce(); err != nil {
					t.logger.Error().Err(err).Msg("Failed to poll device poses")
				}
			case <-t.ctx.Done():
				t.logger.Info().Msg("TrackingService is stopping")
				return
			}
		}
	}()

	t.logger.Info().
		Dur("interval", t.interval).
		Int32("universe", int32(t.universe)).
		Msg("TrackingService started")
	return nil
}

// Stop gracefully stops the polling loop.
func (t *TrackingService) Stop() error {
	if !t.running {
		t.logger.Warn().Msg("TrackingService is not running")
		return errors.New("tracking service is not running")
	}

	t.cancel()
	t.wg.Wait()
	t.running = false

	t.logger.Info().Msg("TrackingService stopped")
	return nil
}

// pollOnce reads the full pose table and reconciles the store. On a read
// failure the previous snapshot stays in place and the next tick retries.
func (t *TrackingService) pollOnce() error {
	poses, err := t.system.DevicePoses(t.universe)
	if err != nil {
		return err
	}

	now := t.clock.Now()
	thresholds := t.settings.Current().Thresholds

	devices := make([]models.TrackedDevice, 0, 8)
	handsSeen := map[string]bool{}

	for i := range poses {
		pose := &poses[i]
		// The runtime flags slots as connected or with a valid pose
		// independently; either one means there is something to draw.
		if !pose.Connected() && !pose.Valid() {
			continue
		}

		index := openvr.TrackedDeviceIndex(i)
		class := t.system.DeviceClass(index)
		if class == openvr.DeviceClassInvalid {
			continue
		}

		m := pose.DeviceToAbsoluteTracking
		device := models.TrackedDevice{
			Index:     index,
			Class:     class,
			Model:     t.modelName(index),
			Position:  projection.Position(m),
			Forward:   projection.Forward(m),
			UpdatedAt: now,
		}

		if class == openvr.DeviceClassController {
			device.Role = t.system.ControllerRole(index)
			t.readController(&device, thresholds, now, handsSeen)
		}

		devices = append(devices, device)
	}

	t.poseStore.Reconcile(devices)
	t.pruneModelCache(devices)

	// Hands without a live controller read as empty this tick.
	for _, hand := range []string{"Left", "Right"} {
		if !handsSeen[hand] {
			t.poseStore.SetHand(models.HandGestures{Hand: hand, UpdatedAt: now})
		}
	}

	t.logger.Trace().Int("devices", len(devices)).Msg("Pose table reconciled")
	return nil
}

// modelName reads the device's reported model number, cached per slot so the
// runtime sees one property read per device, not one per tick.
func (t *TrackingService) modelName(index openvr.TrackedDeviceIndex) string {
	if name, ok := t.modelCache[index]; ok {
		return name
	}

	name, err := t.system.StringProperty(index, openvr.PropModelNumber)
	if err != nil {
		t.logger.Debug().Err(err).Uint32("device", index).Msg("Model number unavailable")
		name = ""
	}
	t.modelCache[index] = name
	return name
}

// pruneModelCache drops cached model numbers for slots that vanished this
// tick, so a reused slot re-reads the property.
func (t *TrackingService) pruneModelCache(devices []models.TrackedDevice) {
	indices := make([]openvr.TrackedDeviceIndex, 0, len(devices))
	for _, d := range devices {
		indices = append(indices, d.Index)
	}

	present := utils.SliceToSet(indices)
	for index := range t.modelCache {
		if _, ok := present[index]; !ok {
			delete(t.modelCache, index)
		}
	}
}

// readController attaches input state and inferred fingers to a controller
// device and records the per-hand gesture summary.
func (t *TrackingService) readController(device *models.TrackedDevice, thresholds settings.Thresholds,
	now time.Time, handsSeen map[string]bool) {
	state, ok := t.system.ControllerState(device.Index)
	if !ok {
		return
	}

	fingers := t.gestures.Evaluate(state, thresholds)
	device.Input = &models.ControllerInput{
		PacketNum: state.PacketNum,
		Pressed:   state.Pressed,
		Touched:   state.Touched,
		Axes:      state.Axes,
		Fingers:   fingers,
	}

	if hand := device.Role.String(); hand != "" {
		t.poseStore.SetHand(models.HandGestures{Hand: hand, Fingers: fingers, UpdatedAt: now})
		handsSeen[hand] = true
	}
}
