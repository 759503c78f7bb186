package openvr

// MaxTrackedDeviceCount is the runtime's upper bound on simultaneously
// tracked devices (k_unMaxTrackedDeviceCount).
const MaxTrackedDeviceCount = 64

// HMDIndex is the tracked device index reserved for the headset
// (k_unTrackedDeviceIndex_Hmd).
const HMDIndex TrackedDeviceIndex = 0

// maxPropertyStringSize mirrors k_unMaxPropertyStringSize.
const maxPropertyStringSize = 32 * 1024

// TrackedDeviceIndex identifies a slot in the runtime's device table.
type TrackedDeviceIndex = uint32

// ApplicationType mirrors EVRApplicationType.
type ApplicationType int32

const (
	ApplicationOther ApplicationType = iota
	ApplicationScene
	ApplicationOverlay
	ApplicationBackground
	ApplicationUtility
)

// TrackingUniverse mirrors ETrackingUniverseOrigin.
type TrackingUniverse int32

const (
	TrackingUniverseSeated TrackingUniverse = iota
	TrackingUniverseStanding
	TrackingUniverseRaw
)

// DeviceClass mirrors ETrackedDeviceClass.
type DeviceClass int32

const (
	DeviceClassInvalid DeviceClass = iota
	DeviceClassHMD
	DeviceClassController
	DeviceClassGenericTracker
	DeviceClassTrackingReference
	DeviceClassDisplayRedirect
)

// String returns a human readable name for the device class.
func (c DeviceClass) String() string {
	switch c {
	case DeviceClassHMD:
		return "HMD"
	case DeviceClassController:
		return "Controller"
	case DeviceClassGenericTracker:
		return "Tracker"
	case DeviceClassTrackingReference:
		return "Base Station"
	case DeviceClassDisplayRedirect:
		return "Display Redirect"
	default:
		return "Device"
	}
}

// ControllerRole mirrors ETrackedControllerRole.
type ControllerRole int32

const (
	ControllerRoleInvalid ControllerRole = iota
	ControllerRoleLeftHand
	ControllerRoleRightHand
	ControllerRoleOptOut
	ControllerRoleTreadmill
	ControllerRoleStylus
)

// String returns the hand name for controller roles, empty otherwise.
func (r ControllerRole) String() string {
	switch r {
	case ControllerRoleLeftHand:
		return "Left"
	case ControllerRoleRightHand:
		return "Right"
	default:
		return ""
	}
}

// DeviceProperty mirrors ETrackedDeviceProperty for the string properties
// the visualizer reads.
type DeviceProperty int32

const (
	PropTrackingSystemName DeviceProperty = 1000
	PropModelNumber        DeviceProperty = 1001
	PropSerialNumber       DeviceProperty = 1002
	PropManufacturerName   DeviceProperty = 1005
)

// ButtonID mirrors EVRButtonId for the buttons the gesture heuristics use.
type ButtonID uint64

const (
	ButtonSystem          ButtonID = 0
	ButtonApplicationMenu ButtonID = 1
	ButtonGrip            ButtonID = 2
	ButtonAxis0           ButtonID = 32
	ButtonAxis1           ButtonID = 33
	ButtonAxis2           ButtonID = 34

	// SteamVR aliases.
	ButtonTouchpad = ButtonAxis0
	ButtonTrigger  = ButtonAxis1
)

// Mask returns the bit for the button in the pressed/touched masks.
func (b ButtonID) Mask() uint64 { return 1 << b }

// TrackingResult mirrors ETrackingResult.
type TrackingResult int32

const (
	TrackingResultUninitialized         TrackingResult = 1
	TrackingResultCalibratingInProgress TrackingResult = 100
	TrackingResultCalibratingOutOfRange TrackingResult = 101
	TrackingResultRunningOK             TrackingResult = 200
	TrackingResultRunningOutOfRange     TrackingResult = 201
)

// HmdMatrix34 is the runtime's row-major 3x4 rigid transform
// (HmdMatrix34_t). The fourth column is the translation.
type HmdMatrix34 struct {
	M [3][4]float32
}

// HmdVector3 mirrors HmdVector3_t.
type HmdVector3 struct {
	V [3]float32
}

// TrackedDevicePose mirrors TrackedDevicePose_t. Field order and sizes must
// stay in sync with the C struct; the runtime writes these in place.
type TrackedDevicePose struct {
	DeviceToAbsoluteTracking HmdMatrix34
	Velocity                 HmdVector3
	AngularVelocity          HmdVector3
	TrackingResult           TrackingResult
	PoseIsValid              uint8
	DeviceIsConnected        uint8
	_                        [2]byte
}

// Valid reports whether the runtime considers the pose usable.
func (p *TrackedDevicePose) Valid() bool { return p.PoseIsValid != 0 }

// Connected reports whether a device occupies the slot.
func (p *TrackedDevicePose) Connected() bool { return p.DeviceIsConnected != 0 }

// ControllerAxis is a single analog axis (VRControllerAxis_t).
type ControllerAxis struct {
	X float32
	Y float32
}

// ControllerState is the portable view of VRControllerState_t handed to the
// rest of the process. The wire layout differs between platforms and lives in
// the per-OS rawControllerState.
type ControllerState struct {
	PacketNum uint32
	Pressed   uint64
	Touched   uint64
	Axes      [5]ControllerAxis
}

// PressedButton reports whether the button bit is set in the pressed mask.
func (s *ControllerState) PressedButton(b ButtonID) bool { return s.Pressed&b.Mask() != 0 }

// TouchedButton reports whether the button bit is set in the touched mask.
func (s *ControllerState) TouchedButton(b ButtonID) bool { return s.Touched&b.Mask() != 0 }
