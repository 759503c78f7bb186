package gestures

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/internal/utils"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

// Registry manages the gesture detectors and evaluates them against a
// controller state. Registration order fixes the display order of fingers.
type Registry struct {
	detectors []Detector
	pool      *utils.WorkerPool
}

// NewRegistry creates a registry that evaluates detectors on the given pool.
func NewRegistry(pool *utils.WorkerPool) *Registry {
	return &Registry{pool: pool}
}

// NewDefaultRegistry registers the standard finger detectors.
func NewDefaultRegistry(pool *utils.WorkerPool, logger zerolog.Logger) *Registry {
	r := NewRegistry(pool)
	r.Register(&IndexFingerDetector{Logger: logger})
	r.Register(&ThumbDetector{Logger: logger})
	r.Register(&GripFingersDetector{Logger: logger})
	return r
}

// Register appends a detector to the evaluation order.
func (r *Registry) Register(d Detector) {
	r.detectors = append(r.detectors, d)
}

// Detectors returns the registered detectors in evaluation order.
func (r *Registry) Detectors() []Detector {
	return r.detectors
}

// Evaluate runs every detector against the state and returns the implied
// fingers, deduplicated, in registration order.
func (r *Registry) Evaluate(state openvr.ControllerState, thr settings.Thresholds) []string {
	results := make([][]string, len(r.detectors))

	var wg sync.WaitGroup
	for i, det := range r.detectors {
		i, det := i, det
		wg.Add(1)
		r.pool.Submit(func() {
			defer wg.Done()
			results[i] = det.Fingers(state, thr)
		})
	}
	wg.Wait()

	var fingers []string
	for _, res := range results {
		fingers = append(fingers, res...)
	}
	return utils.Dedupe(fingers)
}
