package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/pkg/file"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

func loadTestConfig(t *testing.T, yaml string) (*Config, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	return LoadConfig(path, file.NewFileService())
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := loadTestConfig(t, "logging: {}\n")
	require.NoError(t, err)

	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "openvr", config.Runtime.Backend)
	assert.Equal(t, 30*time.Millisecond, config.Runtime.PollInterval)
	assert.Equal(t, "standing", config.Runtime.Universe)
	assert.Equal(t, "trackviz", config.UI.Title)
	assert.Equal(t, 1000, config.UI.Width)
	assert.Equal(t, 720, config.UI.Height)
	assert.Equal(t, 100.0, config.UI.MetersToPixels)
	assert.Equal(t, 0.30, config.UI.ArrowLengthM)
	assert.Equal(t, 50, config.UI.GridSpacing)
	assert.Equal(t, 0.30, config.Gestures.TriggerThreshold)
	assert.Equal(t, 0.30, config.Gestures.GripThreshold)
	assert.Equal(t, 0.01, config.Gestures.ThumbTouchThreshold)
	assert.Equal(t, 4, config.Gestures.Workers)
	assert.Equal(t, 2*time.Second, config.Stats.Interval)
}

func TestLoadConfig_Overrides(t *testing.T) {
	config, err := loadTestConfig(t, `
logging:
  level: debug
  pretty: true
runtime:
  backend: simulated
  poll_interval: 50ms
  universe: seated
  min_version: "1.16.8"
ui:
  width: 1280
  height: 800
  meters_to_pixels: 120
  show:
    grid: true
    fingers: true
gestures:
  trigger_threshold: 0.5
  workers: 2
stats:
  enabled: true
  interval: 5s
watch:
  enabled: true
`)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Logging.Level)
	assert.True(t, config.Logging.Pretty)
	assert.Equal(t, "simulated", config.Runtime.Backend)
	assert.Equal(t, 50*time.Millisecond, config.Runtime.PollInterval)
	assert.Equal(t, "1.16.8", config.Runtime.MinVersion)
	assert.Equal(t, 1280, config.UI.Width)
	assert.Equal(t, 0.5, config.Gestures.TriggerThreshold)
	assert.Equal(t, 2, config.Gestures.Workers)
	assert.True(t, config.Stats.Enabled)
	assert.Equal(t, 5*time.Second, config.Stats.Interval)
	assert.True(t, config.Watch.Enabled)
}

func TestLoadConfig_RejectsUnknownBackend(t *testing.T) {
	_, err := loadTestConfig(t, "runtime:\n  backend: carrier-pigeon\n")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown runtime backend")
}

func TestLoadConfig_RejectsUnknownUniverse(t *testing.T) {
	_, err := loadTestConfig(t, "runtime:\n  universe: orbital\n")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tracking universe")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), file.NewFileService())
	assert.Error(t, err)
}

func TestConfig_TrackingUniverse(t *testing.T) {
	tests := []struct {
		name     string
		expected openvr.TrackingUniverse
	}{
		{"standing", openvr.TrackingUniverseStanding},
		{"seated", openvr.TrackingUniverseSeated},
		{"raw", openvr.TrackingUniverseRaw},
	}

	for _, tt := range tests {
		var config Config
		config.Runtime.Universe = tt.name

		universe, err := config.TrackingUniverse()
		require.NoError(t, err)
		assert.Equal(t, tt.expected, universe)
	}
}

func TestSaveViewToggles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	fileClient := file.NewFileService()

	require.NoError(t, os.WriteFile(path, []byte(`
runtime:
  backend: simulated
  poll_interval: 50ms
ui:
  width: 1280
  show:
    grid: false
`), 0644))

	view := settings.View{Grid: true, Labels: true, Debug: true}
	require.NoError(t, SaveViewToggles(path, fileClient, view))

	config, err := LoadConfig(path, fileClient)
	require.NoError(t, err)
	assert.True(t, config.UI.Show.Grid)
	assert.True(t, config.UI.Show.Labels)
	assert.True(t, config.UI.Show.Debug)
	assert.False(t, config.UI.Show.Fingers)

	// Everything outside ui.show survives the rewrite.
	assert.Equal(t, "simulated", config.Runtime.Backend)
	assert.Equal(t, 50*time.Millisecond, config.Runtime.PollInterval)
	assert.Equal(t, 1280, config.UI.Width)
}

func TestSaveViewToggles_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	fileClient := file.NewFileService()

	require.NoError(t, SaveViewToggles(path, fileClient, settings.View{Arrows: true}))

	config, err := LoadConfig(path, fileClient)
	require.NoError(t, err)
	assert.True(t, config.UI.Show.Arrows)
	assert.False(t, config.UI.Show.Grid)
}

func TestConfig_InitialSettings(t *testing.T) {
	config, err := loadTestConfig(t, `
ui:
  meters_to_pixels: 150
  show:
    grid: true
    labels: true
    arrows: true
gestures:
  trigger_threshold: 0.4
`)
	require.NoError(t, err)

	s := config.InitialSettings()
	assert.True(t, s.View.Grid)
	assert.True(t, s.View.Labels)
	assert.True(t, s.View.Arrows)
	assert.False(t, s.View.Debug)
	assert.Equal(t, 150.0, s.MetersToPixels)
	assert.Equal(t, 0.4, s.Thresholds.Trigger)
	assert.Equal(t, 0.01, s.Thresholds.ThumbTouch)
}
