package openvr

import "errors"

// ErrRuntimeNotRunning indicates the OpenVR runtime could not be initialized,
// typically because SteamVR is not running.
var ErrRuntimeNotRunning = errors.New("vr runtime is not running")

// ErrNotInitialized indicates a call on a closed or never-initialized client.
var ErrNotInitialized = errors.New("vr system is not initialized")

// System is the surface of the VR runtime the visualizer consumes. The native
// client implements it over the OpenVR C API; Simulated implements it for demo
// mode and tests.
type System interface {
	// DevicePoses returns the pose table for every device slot, indexed by
	// TrackedDeviceIndex. Slots without a connected device have
	// Connected() == false.
	DevicePoses(origin TrackingUniverse) ([]TrackedDevicePose, error)

	// DeviceClass reports the class of the device in the given slot.
	DeviceClass(index TrackedDeviceIndex) DeviceClass

	// ControllerRole reports which hand a controller is assigned to.
	ControllerRole(index TrackedDeviceIndex) ControllerRole

	// ControllerState reads the latest input state of a controller. The
	// second return is false when the device is gone or is not a controller.
	ControllerState(index TrackedDeviceIndex) (ControllerState, bool)

	// StringProperty reads a string device property such as the model number.
	StringProperty(index TrackedDeviceIndex, prop DeviceProperty) (string, error)

	// RuntimeVersion returns the runtime's version string, empty if unknown.
	RuntimeVersion() string

	// Close shuts the runtime connection down.
	Close() error
}
