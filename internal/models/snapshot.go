package models

// Snapshot is one coherent view of everything the UI draws in a frame.
type Snapshot struct {
	// Devices is ordered by device index.
	Devices   []TrackedDevice
	LeftHand  HandGestures
	RightHand HandGestures
	Stats     *RuntimeStats
}
