package models

import "time"

// RuntimeStats is the process-level sample shown in the debug overlay.
type RuntimeStats struct {
	CPUPercent  float64   `json:"cpu_percent"`
	MemoryBytes uint64    `json:"memory_bytes"`
	Goroutines  int       `json:"goroutines"`
	SampledAt   time.Time `json:"sampled_at"`
}
