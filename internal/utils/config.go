package utils

import (
	"fmt"
	"time"

	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/pkg/file"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

// Config represents the structure of the configuration file.
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`  // zerolog level: trace..error
		Pretty bool   `yaml:"pretty"` // Console writer instead of JSON
	} `yaml:"logging"`

	Runtime struct {
		Backend      string        `yaml:"backend"`       // "openvr" or "simulated"
		LibraryPath  string        `yaml:"library_path"`  // Path to the openvr_api shared library
		PollInterval time.Duration `yaml:"poll_interval"` // Pose polling cadence
		Universe     string        `yaml:"universe"`      // "standing", "seated" or "raw"
		MinVersion   string        `yaml:"min_version"`   // Oldest runtime version known to work
	} `yaml:"runtime"`

	UI struct {
		Title          string  `yaml:"title"`            // Window title
		Width          int     `yaml:"width"`            // Initial window width in pixels
		Height         int     `yaml:"height"`           // Initial window height in pixels
		MetersToPixels float64 `yaml:"meters_to_pixels"` // Top-down map scale
		ArrowLengthM   float64 `yaml:"arrow_length_m"`   // Facing arrow length in meters
		GridSpacing    int     `yaml:"grid_spacing"`     // Grid cell size in pixels

		Show struct {
			Grid    bool `yaml:"grid"`
			Labels  bool `yaml:"labels"`
			Height  bool `yaml:"height"`
			Fingers bool `yaml:"fingers"`
			Arrows  bool `yaml:"arrows"`
			Debug   bool `yaml:"debug"`
		} `yaml:"show"`
	} `yaml:"ui"`

	Gestures struct {
		TriggerThreshold    float64 `yaml:"trigger_threshold"`     // Trigger pull implying the index finger
		GripThreshold       float64 `yaml:"grip_threshold"`        // Grip pull implying the outer fingers
		ThumbTouchThreshold float64 `yaml:"thumb_touch_threshold"` // Pad deflection implying the thumb
		Workers             int     `yaml:"workers"`               // Detector worker pool size
	} `yaml:"gestures"`

	Stats struct {
		Enabled  bool          `yaml:"enabled"`  // Enable/disable the runtime stats sampler
		Interval time.Duration `yaml:"interval"` // Sampling interval
	} `yaml:"stats"`

	Watch struct {
		Enabled bool `yaml:"enabled"` // Re-apply settings when the config file changes
	} `yaml:"watch"`
}

// LoadConfig loads the YAML configuration from the specified file and fills
// in defaults for anything left unset.
func LoadConfig(filename string, fileClient file.FileOperations) (*Config, error) {
	var config Config
	if err := fileClient.ReadYamlFile(filename, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Runtime.Backend == "" {
		c.Runtime.Backend = "openvr"
	}
	if c.Runtime.PollInterval <= 0 {
		c.Runtime.PollInterval = 30 * time.Millisecond
	}
	if c.Runtime.Universe == "" {
		c.Runtime.Universe = "standing"
	}
	if c.UI.Title == "" {
		c.UI.Title = "trackviz"
	}
	if c.UI.Width <= 0 {
		c.UI.Width = 1000
	}
	if c.UI.Height <= 0 {
		c.UI.Height = 720
	}
	if c.UI.MetersToPixels <= 0 {
		c.UI.MetersToPixels = 100
	}
	if c.UI.ArrowLengthM <= 0 {
		c.UI.ArrowLengthM = 0.30
	}
	if c.UI.GridSpacing <= 0 {
		c.UI.GridSpacing = 50
	}
	if c.Gestures.TriggerThreshold <= 0 {
		c.Gestures.TriggerThreshold = 0.30
	}
	if c.Gestures.GripThreshold <= 0 {
		c.Gestures.GripThreshold = 0.30
	}
	if c.Gestures.ThumbTouchThreshold <= 0 {
		c.Gestures.ThumbTouchThreshold = 0.01
	}
	if c.Gestures.Workers <= 0 {
		c.Gestures.Workers = 4
	}
	if c.Stats.Interval <= 0 {
		c.Stats.Interval = 2 * time.Second
	}
}

func (c *Config) validate() error {
	switch c.Runtime.Backend {
	case "openvr", "simulated":
	default:
		return fmt.Errorf("unknown runtime backend %q", c.Runtime.Backend)
	}
	if _, err := c.TrackingUniverse(); err != nil {
		return err
	}
	return nil
}

// TrackingUniverse maps the configured universe name to the runtime constant.
func (c *Config) TrackingUniverse() (openvr.TrackingUniverse, error) {
	switch c.Runtime.Universe {
	case "standing":
		return openvr.TrackingUniverseStanding, nil
	case "seated":
		return openvr.TrackingUniverseSeated, nil
	case "raw":
		return openvr.TrackingUniverseRaw, nil
	default:
		return 0, fmt.Errorf("unknown tracking universe %q", c.Runtime.Universe)
	}
}

// SaveViewToggles writes the view toggles back into the config file's ui.show
// section so they survive a restart. The file is edited as a generic YAML
// tree; everything outside ui.show stays exactly as the user wrote it.
func SaveViewToggles(filename string, fileClient file.FileOperations, view settings.View) error {
	raw := map[string]any{}
	exists, err := fileClient.IsFileExists(filename)
	if err != nil {
		return err
	}
	if exists {
		if err := fileClient.ReadYamlFile(filename, &raw); err != nil {
			return err
		}
	}

	uiSection, _ := raw["ui"].(map[string]any)
	if uiSection == nil {
		uiSection = map[string]any{}
		raw["ui"] = uiSection
	}
	uiSection["show"] = map[string]any{
		"grid":    view.Grid,
		"labels":  view.Labels,
		"height":  view.Height,
		"fingers": view.Fingers,
		"arrows":  view.Arrows,
		"debug":   view.Debug,
	}

	return fileClient.WriteYamlFile(filename, raw)
}

// InitialSettings converts the static config into the live settings snapshot.
func (c *Config) InitialSettings() settings.Settings {
	return settings.Settings{
		View: settings.View{
			Grid:    c.UI.Show.Grid,
			Labels:  c.UI.Show.Labels,
			Height:  c.UI.Show.Height,
			Fingers: c.UI.Show.Fingers,
			Arrows:  c.UI.Show.Arrows,
			Debug:   c.UI.Show.Debug,
		},
		Thresholds: settings.Thresholds{
			Trigger:    c.Gestures.TriggerThreshold,
			Grip:       c.Gestures.GripThreshold,
			ThumbTouch: c.Gestures.ThumbTouchThreshold,
		},
		MetersToPixels:    c.UI.MetersToPixels,
		ArrowLengthMeters: c.UI.ArrowLengthM,
		GridSpacing:       c.UI.GridSpacing,
	}
}
