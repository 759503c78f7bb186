//go:build windows

package openvr

// rawControllerState is VRControllerState_t as the Windows runtime lays it
// out (#pragma pack(8)): the button masks are naturally aligned 64-bit fields.
type rawControllerState struct {
	PacketNum uint32
	_         uint32
	Pressed   uint64
	Touched   uint64
	Axes      [5]ControllerAxis
}

func (r *rawControllerState) portable() ControllerState {
	return ControllerState{
		PacketNum: r.PacketNum,
		Pressed:   r.Pressed,
		Touched:   r.Touched,
		Axes:      r.Axes,
	}
}
