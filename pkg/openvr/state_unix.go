//go:build linux || darwin

package openvr

// rawControllerState is VRControllerState_t as the Linux/macOS runtime lays
// it out (#pragma pack(4)): the 64-bit button masks sit at offsets 4 and 12,
// so they are carried as 32-bit halves here.
type rawControllerState struct {
	PacketNum uint32
	PressedLo uint32
	PressedHi uint32
	TouchedLo uint32
	TouchedHi uint32
	Axes      [5]ControllerAxis
}

func (r *rawControllerState) portable() ControllerState {
	return ControllerState{
		PacketNum: r.PacketNum,
		Pressed:   uint64(r.PressedLo) | uint64(r.PressedHi)<<32,
		Touched:   uint64(r.TouchedLo) | uint64(r.TouchedHi)<<32,
		Axes:      r.Axes,
	}
}
