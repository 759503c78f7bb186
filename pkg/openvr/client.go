package openvr

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ivrSystemVersion is the IVRSystem interface revision this client binds to.
const ivrSystemVersion = "IVRSystem_022"

// Indices into the FnTable:IVRSystem_022 function-pointer table, in the order
// openvr_capi.h declares them.
const (
	fnGetRecommendedRenderTargetSize = iota
	fnGetProjectionMatrix
	fnGetProjectionRaw
	fnComputeDistortion
	fnGetEyeToHeadTransform
	fnGetTimeSinceLastVsync
	fnGetD3D9AdapterIndex
	fnGetDXGIOutputInfo
	fnGetOutputDevice
	fnIsDisplayOnDesktop
	fnSetDisplayVisibility
	fnGetDeviceToAbsoluteTrackingPose
	fnGetSeatedZeroPoseToStandingAbsoluteTrackingPose
	fnGetRawZeroPoseToStandingAbsoluteTrackingPose
	fnGetSortedTrackedDeviceIndicesOfClass
	fnGetTrackedDeviceActivityLevel
	fnApplyTransform
	fnGetTrackedDeviceIndexForControllerRole
	fnGetControllerRoleForTrackedDeviceIndex
	fnGetTrackedDeviceClass
	fnIsTrackedDeviceConnected
	fnGetBoolTrackedDeviceProperty
	fnGetFloatTrackedDeviceProperty
	fnGetInt32TrackedDeviceProperty
	fnGetUint64TrackedDeviceProperty
	fnGetMatrix34TrackedDeviceProperty
	fnGetArrayTrackedDeviceProperty
	fnGetStringTrackedDeviceProperty
	fnGetPropErrorNameFromEnum
	fnPollNextEvent
	fnPollNextEventWithPose
	fnGetEventTypeNameFromEnum
	fnGetHiddenAreaMesh
	fnGetControllerState
	fnGetControllerStateWithPose
	fnTriggerHapticPulse
	fnGetButtonIdNameFromEnum
	fnGetControllerAxisTypeNameFromEnum
	fnIsInputAvailable
	fnIsSteamVRDrawingControllers
	fnShouldApplicationPause
	fnShouldApplicationReduceRenderingWork
	fnPerformFirmwareUpdate
	fnAcknowledgeQuitExiting
	fnGetAppContainerFilePaths
	fnGetRuntimeVersion

	fnTableLen
)

// ClientConfig configures the native runtime client.
type ClientConfig struct {
	// LibraryPath locates the openvr_api shared library. Empty uses the
	// platform default name resolved through the loader's search path.
	LibraryPath string

	// Application is the EVRApplicationType to initialize as. The zero
	// value is treated as ApplicationScene.
	Application ApplicationType
}

// exports are the plain C functions the runtime library exports.
type exports struct {
	initInternal            func(initError *int32, applicationType int32) uintptr
	shutdownInternal        func()
	isInterfaceVersionValid func(version string) bool
	getGenericInterface     func(version string, initError *int32) uintptr
	isHmdPresent            func() bool
	isRuntimeInstalled      func() bool
	initErrorAsEnglish      func(code int32) string
}

// ivrSystem holds the IVRSystem fn-table entries the client calls.
type ivrSystem struct {
	getDeviceToAbsoluteTrackingPose func(origin int32, predictedSeconds float32, poses *TrackedDevicePose, count uint32)
	getControllerRole               func(index uint32) int32
	getDeviceClass                  func(index uint32) int32
	isDeviceConnected               func(index uint32) bool
	getStringProperty               func(index uint32, prop int32, value *byte, size uint32, propError *int32) uint32
	getControllerState              func(index uint32, state *rawControllerState, size uint32) bool
	getRuntimeVersion               func() string
}

// Client talks to a running OpenVR runtime through its C API.
type Client struct {
	lib     uintptr
	exports exports
	sys     ivrSystem

	mu     sync.Mutex
	poses  [MaxTrackedDeviceCount]TrackedDevicePose
	closed bool
}

// compile-time interface check
var _ System = (*Client)(nil)

// NewClient loads the runtime library, initializes the runtime and resolves
// the IVRSystem interface. A failure to reach a running runtime is reported
// as ErrRuntimeNotRunning.
func NewClient(cfg ClientConfig) (*Client, error) {
	path := cfg.LibraryPath
	if path == "" {
		path = defaultLibraryName()
	}

	lib, err := loadLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRuntimeNotRunning, err)
	}

	c := &Client{lib: lib}
	c.registerExports()

	app := cfg.Application
	if app == ApplicationOther {
		app = ApplicationScene
	}

	var initErr int32
	c.exports.initInternal(&initErr, int32(app))
	if initErr != 0 {
		return nil, fmt.Errorf("%w: %s", ErrRuntimeNotRunning, c.exports.initErrorAsEnglish(initErr))
	}

	if !c.exports.isInterfaceVersionValid(ivrSystemVersion) {
		c.exports.shutdownInternal()
		return nil, fmt.Errorf("runtime does not provide %s", ivrSystemVersion)
	}

	table := c.exports.getGenericInterface("FnTable:"+ivrSystemVersion, &initErr)
	if table == 0 || initErr != 0 {
		c.exports.shutdownInternal()
		return nil, fmt.Errorf("failed to resolve %s: %s", ivrSystemVersion, c.exports.initErrorAsEnglish(initErr))
	}
	c.registerSystem(table)

	return c, nil
}

func (c *Client) registerExports() {
	purego.RegisterLibFunc(&c.exports.initInternal, c.lib, "VR_InitInternal")
	purego.RegisterLibFunc(&c.exports.shutdownInternal, c.lib, "VR_ShutdownInternal")
	purego.RegisterLibFunc(&c.exports.isInterfaceVersionValid, c.lib, "VR_IsInterfaceVersionValid")
	purego.RegisterLibFunc(&c.exports.getGenericInterface, c.lib, "VR_GetGenericInterface")
	purego.RegisterLibFunc(&c.exports.isHmdPresent, c.lib, "VR_IsHmdPresent")
	purego.RegisterLibFunc(&c.exports.isRuntimeInstalled, c.lib, "VR_IsRuntimeInstalled")
	purego.RegisterLibFunc(&c.exports.initErrorAsEnglish, c.lib, "VR_GetVRInitErrorAsEnglishDescription")
}

// registerSystem binds the fn-table entries. The table is an array of C
// function pointers laid out per openvr_capi.h.
func (c *Client) registerSystem(table uintptr) {
	fns := unsafe.Slice((*uintptr)(unsafe.Pointer(table)), fnTableLen)
	purego.RegisterFunc(&c.sys.getDeviceToAbsoluteTrackingPose, fns[fnGetDeviceToAbsoluteTrackingPose])
	purego.RegisterFunc(&c.sys.getControllerRole, fns[fnGetControllerRoleForTrackedDeviceIndex])
	purego.RegisterFunc(&c.sys.getDeviceClass, fns[fnGetTrackedDeviceClass])
	purego.RegisterFunc(&c.sys.isDeviceConnected, fns[fnIsTrackedDeviceConnected])
	purego.RegisterFunc(&c.sys.getStringProperty, fns[fnGetStringTrackedDeviceProperty])
	purego.RegisterFunc(&c.sys.getControllerState, fns[fnGetControllerState])
	purego.RegisterFunc(&c.sys.getRuntimeVersion, fns[fnGetRuntimeVersion])
}

// DevicePoses reads the full device pose table from the runtime.
func (c *Client) DevicePoses(origin TrackingUniverse) ([]TrackedDevicePose, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrNotInitialized
	}

	c.sys.getDeviceToAbsoluteTrackingPose(int32(origin), 0, &c.poses[0], MaxTrackedDeviceCount)

	out := make([]TrackedDevicePose, MaxTrackedDeviceCount)
	copy(out, c.poses[:])
	return out, nil
}

// DeviceClass reports the class of the device in the given slot.
func (c *Client) DeviceClass(index TrackedDeviceIndex) DeviceClass {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return DeviceClassInvalid
	}
	return DeviceClass(c.sys.getDeviceClass(index))
}

// ControllerRole reports which hand the controller in the slot is bound to.
func (c *Client) ControllerRole(index TrackedDeviceIndex) ControllerRole {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ControllerRoleInvalid
	}
	return ControllerRole(c.sys.getControllerRole(index))
}

// ControllerState reads the controller's current input state.
func (c *Client) ControllerState(index TrackedDeviceIndex) (ControllerState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ControllerState{}, false
	}

	var raw rawControllerState
	if !c.sys.getControllerState(index, &raw, uint32(unsafe.Sizeof(raw))) {
		return ControllerState{}, false
	}
	return raw.portable(), true
}

// StringProperty reads a string device property.
func (c *Client) StringProperty(index TrackedDeviceIndex, prop DeviceProperty) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return "", ErrNotInitialized
	}

	buf := make([]byte, maxPropertyStringSize)
	var propErr int32
	n := c.sys.getStringProperty(index, int32(prop), &buf[0], uint32(len(buf)), &propErr)
	if propErr != 0 || n == 0 {
		return "", fmt.Errorf("property %d unavailable on device %d (error %d)", prop, index, propErr)
	}
	// n includes the trailing NUL.
	return string(buf[:n-1]), nil
}

// RuntimeVersion returns the runtime's reported version string.
func (c *Client) RuntimeVersion() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ""
	}
	return c.sys.getRuntimeVersion()
}

// HMDPresent reports whether a headset is attached.
func (c *Client) HMDPresent() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	return c.exports.isHmdPresent()
}

// Close shuts the runtime connection down. Safe to call once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.exports.shutdownInternal()
	c.closed = true
	return nil
}
