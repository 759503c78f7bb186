// Package settings holds the live-adjustable view and gesture parameters.
// The UI's hotkeys and the config watcher both write here; the render and
// tracking loops read a consistent snapshot per pass.
package settings

import "sync/atomic"

// View are the overlay toggles, mirroring the original's view menu.
type View struct {
	Grid    bool
	Labels  bool
	Height  bool
	Fingers bool
	Arrows  bool
	Debug   bool
}

// Thresholds tune the finger heuristics.
type Thresholds struct {
	Trigger    float64
	Grip       float64
	ThumbTouch float64
}

// Settings is one immutable snapshot of everything tunable at runtime.
type Settings struct {
	View              View
	Thresholds        Thresholds
	MetersToPixels    float64
	ArrowLengthMeters float64
	GridSpacing       int
}

// Store publishes Settings snapshots atomically.
type Store struct {
	current atomic.Pointer[Settings]
}

// NewStore returns a store seeded with the initial settings.
func NewStore(initial Settings) *Store {
	s := &Store{}
	s.current.Store(&initial)
	return s
}

// Current returns the latest snapshot.
func (s *Store) Current() Settings {
	return *s.current.Load()
}

// Update applies fn to a copy of the current snapshot and publishes it.
func (s *Store) Update(fn func(*Settings)) {
	for {
		old := s.current.Load()
		next := *old
		fn(&next)
		if s.current.CompareAndSwap(old, &next) {
			return
		}
	}
}
