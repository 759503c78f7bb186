package models

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/trackedspace/trackviz/pkg/openvr"
)

// TrackedDevice is one device's latest polled pose, ready for rendering.
type TrackedDevice struct {
	Index     openvr.TrackedDeviceIndex `json:"index"`
	Class     openvr.DeviceClass        `json:"class"`
	Role      openvr.ControllerRole     `json:"role"`
	Model     string                    `json:"model,omitempty"`
	Position  mgl64.Vec3                `json:"position"`
	Forward   mgl64.Vec3                `json:"forward"`
	UpdatedAt time.Time                 `json:"updated_at"`

	// Input is populated for controllers only.
	Input *ControllerInput `json:"input,omitempty"`
}

// Label is the marker caption for the device.
func (d *TrackedDevice) Label() string {
	if d.Class == openvr.DeviceClassController {
		hand := d.Role.String()
		if hand == "" {
			hand = "??"
		}
		return "Controller (" + hand + ")"
	}
	return d.Class.String()
}

// ControllerInput is the raw controller state plus the fingers the gesture
// heuristics inferred from it.
type ControllerInput struct {
	PacketNum uint32                   `json:"packet_num"`
	Pressed   uint64                   `json:"pressed"`
	Touched   uint64                   `json:"touched"`
	Axes      [5]openvr.ControllerAxis `json:"axes"`
	Fingers   []string                 `json:"fingers,omitempty"`
}

// HandGestures is the per-hand finger summary shown in the overlay.
type HandGestures struct {
	Hand      string    `json:"hand"`
	Fingers   []string  `json:"fingers"`
	UpdatedAt time.Time `json:"updated_at"`
}
